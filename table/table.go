// Package table renders rows of named values as an aligned, tab-separated
// text table.
//
//	fmt.Print(table.Columnize(rows, []string{"decade", "A", "B"}))
//	//          decade	A	B
//	// _____	______	_	_
//	// 0    	  1970	1
//	// 1    	  1980	2	1
//
// Any row type with a Get(field) (any, bool) method can be rendered,
// including every pivot.Record.
package table

import (
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cast"
)

// minIndexWidth is the narrowest the leading index column is rendered.
const minIndexWidth = 5

// Getter is the read access Columnize needs from a row.
type Getter interface {
	Get(field string) (any, bool)
}

type options struct {
	headers bool
	index   bool
}

// Option configures [Columnize].
type Option func(*options)

// WithoutHeaders replaces the header line with blanks and drops the
// underline.
func WithoutHeaders() Option { return func(o *options) { o.headers = false } }

// WithoutIndex renders the index column blank.
func WithoutIndex() Option { return func(o *options) { o.index = false } }

// Columnize renders rows under headers.
//
// The first column holds the row index, left aligned and at least five
// cells wide. Each header gets a right-aligned column as wide as its widest
// cell, measured in terminal display width. Missing values render empty.
// Every line, including the last, ends in a newline.
func Columnize[R Getter](rows []R, headers []string, opts ...Option) string {
	o := options{headers: true, index: true}
	for _, opt := range opts {
		opt(&o)
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, len(headers))
		for j, h := range headers {
			if v, ok := r.Get(h); ok {
				line[j] = cast.ToString(v)
			}
		}
		cells[i] = line
	}

	indexWidth := minIndexWidth
	if n := len(strconv.Itoa(len(rows) - 1)); n > indexWidth {
		indexWidth = n
	}
	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = uniseg.StringWidth(h)
		for _, line := range cells {
			if w := uniseg.StringWidth(line[j]); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	writeLine := func(index string, values []string) {
		b.WriteString(padRight(index, indexWidth))
		for j, v := range values {
			b.WriteByte('\t')
			b.WriteString(padLeft(v, widths[j]))
		}
		b.WriteByte('\n')
	}

	if o.headers {
		writeLine(" ", headers)
		under := make([]string, len(headers))
		for j := range headers {
			under[j] = strings.Repeat("_", widths[j])
		}
		writeLine(strings.Repeat("_", indexWidth), under)
	} else {
		blanks := make([]string, len(headers))
		for j := range blanks {
			blanks[j] = " "
		}
		writeLine(" ", blanks)
	}

	for i, line := range cells {
		index := " "
		if o.index {
			index = strconv.Itoa(i)
		}
		writeLine(index, line)
	}
	return b.String()
}

// Fprint writes the output of [Columnize] to w.
func Fprint[R Getter](w io.Writer, rows []R, headers []string, opts ...Option) error {
	_, err := io.WriteString(w, Columnize(rows, headers, opts...))
	return err
}

func padLeft(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
