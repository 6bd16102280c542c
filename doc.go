// Package parsica implements a minimalistic parser combinators library.
//
// A Parser[O] is a value wrapping a function from an Input to a
// ParseResult[O]. Primitives (Satisfy, Char, Token, the character-class
// parsers, ...) build the smallest parsers; combinators (Map, Bind, Or,
// Many, SepBy, Between, ...) compose them into larger ones. Parsers are
// immutable once built and safe to run concurrently from multiple
// goroutines — running one never mutates it.
//
// N.B: this package's shape is mostly inspired by oleiade/gomme, which
// in turn credits Jeff Hail's Benthos bloblang parser combinator code.
// Go's generics don't allow a method to introduce a type parameter the
// receiver doesn't have, so every combinator that changes the output
// type (Map, Bind, Sequence, Apply, ...) is a package-level function
// rather than a Parser method; same-type operations (Run, Label, Or)
// are real methods.
package parsica
