package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func printReport(w io.Writer, rep report, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return printReportText(w, rep)
}

func printReportText(w io.Writer, rep report) error {
	var b strings.Builder
	for _, field := range rep.Fields {
		for _, f := range field.Findings {
			fmt.Fprintf(&b, "%s %s: %s\n", strings.ToUpper(string(f.Kind)), field.Field, f.Msg)
		}
	}

	switch {
	case rep.Errors == 0 && rep.Warnings == 0:
		b.WriteString("Valid!\n")
	case rep.Errors == 0:
		fmt.Fprintf(&b, "\nValid! (%d %s)\n", rep.Warnings, pluralize("warning", rep.Warnings))
	default:
		fmt.Fprintf(&b, "\n%d %s, %d %s\n",
			rep.Errors, pluralize("error", rep.Errors),
			rep.Warnings, pluralize("warning", rep.Warnings))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// pluralize returns the singular or plural form of a word based on count.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
