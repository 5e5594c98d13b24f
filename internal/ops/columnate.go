package ops

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mako10k/t/internal/value"
)

// Columnate implements `c` and `C<delim>`: each row (itself expected to
// be an array of cells) is rendered as a single line of text with every
// column but the last padded, with spaces, to the display width of its
// widest cell across all rows. Display width (not byte or rune count)
// is used so East-Asian wide characters still line up. A row's own last
// cell is never padded, so trailing whitespace is never introduced. It
// needs every row before it can know a column's width.
type Columnate struct {
	fullInput
	Delimiter string
	HasDelim  bool
}

func NewColumnate(delim string, hasDelim bool) *Columnate {
	return &Columnate{Delimiter: delim, HasDelim: hasDelim}
}

func (c *Columnate) Apply(v value.Value) (value.Value, error) {
	arr, ok := v.AsArray()
	if !ok {
		return v, nil
	}

	rows := make([][]string, arr.Len())
	var widths []int
	for i, e := range arr.Elements {
		cells := cellsOf(e)
		row := make([]string, len(cells))
		for j, cell := range cells {
			row[j] = cell.String()
			w := runewidth.StringWidth(row[j])
			for len(widths) <= j {
				widths = append(widths, 0)
			}
			if w > widths[j] {
				widths[j] = w
			}
		}
		rows[i] = row
	}

	sep := " "
	if c.HasDelim {
		sep = c.Delimiter
	}

	out := make([]value.Value, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for j, cell := range row {
			if j > 0 {
				b.WriteString(sep)
			}
			b.WriteString(cell)
			if j < len(row)-1 {
				pad := widths[j] - runewidth.StringWidth(cell)
				if pad > 0 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = value.Text(b.String())
	}
	return value.NewArray(out, arr.Level), nil
}

func cellsOf(v value.Value) []value.Value {
	if arr, ok := v.AsArray(); ok {
		return arr.Elements
	}
	return []value.Value{v}
}
