// Command parsicheck runs one of parsica's example grammars against an
// input string from the command line and reports whether it parsed.
//
// Usage:
//
//	parsicheck <grammar> <input>
//	parsicheck --help
//	parsicheck --version
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/trendoman/parsica/examples/csv"
	"github.com/trendoman/parsica/examples/expr"
	"github.com/trendoman/parsica/examples/hexcolor"
	"github.com/trendoman/parsica/examples/json"
)

var version = "v0.1.0"

var (
	greenColor = color.New(color.FgGreen)
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		showHelp()
		os.Exit(1)
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		cyanColor.Printf("parsicheck %s\n", version)
	default:
		if len(os.Args) != 3 {
			redColor.Fprintln(os.Stderr, "parsicheck: expected a grammar name and an input string")
			showHelp()
			os.Exit(1)
		}
		run(arg, os.Args[2])
	}
}

func showHelp() {
	cyanColor.Println("parsicheck - run a parsica example grammar against an input string")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  parsicheck <grammar> <input>")
	fmt.Println("  parsicheck --help")
	fmt.Println("  parsicheck --version")
	cyanColor.Println("")
	cyanColor.Println("GRAMMARS:")
	fmt.Println("  expr       arithmetic expressions, e.g. \"(1 + 2) * 3\"")
	fmt.Println("  csv        RFC4180-ish CSV rows, e.g. \"a,b\\r\\nc,d\\r\\n\"")
	fmt.Println("  hexcolor   #rrggbb colors, e.g. \"#336699\"")
	fmt.Println("  json       a single JSON value, e.g. \"{\\\"ok\\\": true}\"")
}

func run(grammar, input string) {
	var err error

	switch grammar {
	case "expr":
		var value float64
		value, err = expr.ParseExpr(input)
		if err == nil {
			greenColor.Printf("ok: %v\n", value)
		}
	case "csv":
		var rows [][]string
		rows, err = csv.ParseCSV(input)
		if err == nil {
			greenColor.Printf("ok: %v\n", rows)
		}
	case "hexcolor":
		var rgb hexcolor.RGBColor
		rgb, err = hexcolor.ParseRGBColor(input)
		if err == nil {
			greenColor.Printf("ok: %+v\n", rgb)
		}
	case "json":
		var value json.JSONValue
		value, err = json.ParseJSON(input)
		if err == nil {
			greenColor.Printf("ok: %+v\n", value)
		}
	default:
		redColor.Fprintf(os.Stderr, "parsicheck: unknown grammar %q\n", grammar)
		os.Exit(1)
	}

	if err != nil {
		redColor.Fprintf(os.Stderr, "fail: %v\n", err)
		os.Exit(1)
	}
}
