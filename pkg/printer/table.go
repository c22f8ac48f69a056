// Package printer renders kubectl-style tables for CLI output.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// TablePrinter accumulates rows and renders them with aligned columns.
type TablePrinter struct {
	writer    *tabwriter.Writer
	headers   []string
	rows      [][]string
	noHeaders bool
}

// Option configures the TablePrinter.
type Option func(*TablePrinter)

// WithNoHeaders disables header output.
func WithNoHeaders() Option {
	return func(p *TablePrinter) {
		p.noHeaders = true
	}
}

// NewTablePrinter creates a table printer writing to out (stdout if nil).
func NewTablePrinter(out io.Writer, opts ...Option) *TablePrinter {
	if out == nil {
		out = os.Stdout
	}
	p := &TablePrinter{
		writer: tabwriter.NewWriter(out, 0, 0, 3, ' ', 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetHeaders sets the table headers.
func (p *TablePrinter) SetHeaders(headers ...string) {
	p.headers = headers
}

// AddRow appends a data row.
func (p *TablePrinter) AddRow(values ...any) {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprintf("%v", v)
	}
	p.rows = append(p.rows, row)
}

// Render flushes the accumulated table.
func (p *TablePrinter) Render() error {
	if len(p.rows) == 0 && len(p.headers) == 0 {
		return nil
	}
	if !p.noHeaders && len(p.headers) > 0 {
		_, _ = fmt.Fprintln(p.writer, strings.ToUpper(strings.Join(p.headers, "\t")))
	}
	for _, row := range p.rows {
		_, _ = fmt.Fprintln(p.writer, strings.Join(row, "\t"))
	}
	return p.writer.Flush()
}
