package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmerge <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Merge data rows into a template and export documents")
	fmt.Fprintln(w, "  inspect    Show the fields and issues of a data file")
	fmt.Fprintln(w, "  validate   Check a template and, optionally, its merge tags")
	fmt.Fprintln(w, "  template   Convert a Markdown template to JSON")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docmerge help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmerge generate --data <file> --template <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one document per data row. A single document is written as is,")
	fmt.Fprintln(w, "several are packed into a zip archive.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -d, --data <path>         CSV, JSON or XLSX data file")
	fmt.Fprintln(w, "  -t, --template <path>     Template: .json, or .md with {{field}} tags")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: .)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documents:")
	fmt.Fprintln(w, "  -f, --format <s>          Format: pdf, docx, html (default: pdf)")
	fmt.Fprintln(w, "  -p, --pattern <s>         File name pattern, e.g. Invoice_{{number}}")
	fmt.Fprintln(w, "      --bundle-name <s>     Zip name: literal, {date}, \"auto\", or \"auto:FORMAT\"")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets: iso, compact, stamp, european, us")
	fmt.Fprintln(w, "      --timeout <d>         PDF timeout per document (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rows:")
	fmt.Fprintln(w, "      --range <s>           all, selection, filtered (default: all)")
	fmt.Fprintln(w, "      --rows <list>         1-based rows, e.g. 1,3,5-7 (implies selection)")
	fmt.Fprintln(w, "      --filter <f:op:v>     Filter, op is eq, neq, gt, lt, contains (implies filtered)")
	fmt.Fprintln(w, "                            v is text; json:v compares a typed JSON value")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Document style: default, classic")
	fmt.Fprintln(w, "      --highlight <name>    Code highlight style (chroma), e.g. github, monokai")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  docmerge generate -d people.csv -t letter.md -f docx -p Letter_{{name}}")
	fmt.Fprintln(w, "  docmerge generate -d orders.xlsx -t invoice.json --filter total:gt:100")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmerge inspect [--data] <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show field keys, labels, inferred types and import issues.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --data <path>         CSV, JSON or XLSX data file")
	fmt.Fprintln(w, "      --query <s>           Only list fields matching label, key or type")
	fmt.Fprintln(w, "      --preview <n>         Print the first n rows")
	fmt.Fprintln(w, "      --yaml                Print the summary as YAML")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (import limits)")
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmerge validate [--template] <file> [--data <file>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a template loads and list its merge tags.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --template <path>     Template file (.json or .md)")
	fmt.Fprintln(w, "  -d, --data <path>         Warn about merge tags without a matching field")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
}

// printTemplateUsage prints usage for the template command.
func printTemplateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmerge template --from <file.md> [-o <file.json>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to a JSON template. {{field}} becomes a merge tag,")
	fmt.Fprintln(w, "{{field?}} is removed when empty and {{field | Label}} sets its label.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --from <path>         Markdown template")
	fmt.Fprintln(w, "  -o, --output <path>       JSON output file (default: stdout)")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, w io.Writer) {
	if len(args) == 0 {
		printUsage(w)
		return
	}
	switch args[0] {
	case "generate":
		printGenerateUsage(w)
	case "inspect":
		printInspectUsage(w)
	case "validate":
		printValidateUsage(w)
	case "template":
		printTemplateUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: docmerge version")
	default:
		fmt.Fprintf(w, "unknown command %q\n\n", args[0])
		printUsage(w)
	}
}
