package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/kantanpro/kantanpro/internal/export"
)

var headerColor = color.New(color.Bold, color.FgCyan)

// printTable aligns t in columns. The header line is colored after
// alignment so escape codes do not count towards column widths.
func printTable(out io.Writer, t export.Table) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
	for _, record := range t.Records() {
		fmt.Fprintln(tw, strings.Join(record, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.SplitAfter(buf.String(), "\n")
	if len(lines) > 0 {
		lines[0] = headerColor.Sprint(strings.TrimRight(lines[0], "\n")) + "\n"
	}
	if _, err := io.WriteString(out, strings.Join(lines, "")); err != nil {
		return err
	}
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(out, color.YellowString("(no rows)"))
		return err
	}
	return nil
}
