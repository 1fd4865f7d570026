// Package present turns engine result sets into display-ready blocks.
package present

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/sqlquest/internal/engine"
)

// MaxRows is the most rows shown per result set.
const MaxRows = 200

// NoResults is shown when a query produced no result sets.
const NoResults = "No result sets to display."

// Block is one rendered result set.
type Block struct {
	Ordinal   int        `json:"ordinal"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"total_rows"`
	Truncated bool       `json:"truncated"`
}

// Label returns "Result set #N • C columns • R rows" using the total row count.
func (b Block) Label() string {
	return fmt.Sprintf("Result set #%d • %d columns • %d rows", b.Ordinal, len(b.Columns), b.TotalRows)
}

// Notice returns the truncation notice, or "" when every row is shown.
func (b Block) Notice() string {
	if !b.Truncated {
		return ""
	}
	return fmt.Sprintf("Showing first %d rows… refine your query to see more.", MaxRows)
}

// View is the presentation of one execution.
type View struct {
	Empty  bool    `json:"empty"`
	Blocks []Block `json:"blocks"`
}

// Present builds one block per result set in order.
func Present(sets []engine.ResultSet) View {
	if len(sets) == 0 {
		return View{Empty: true}
	}
	v := View{Blocks: make([]Block, 0, len(sets))}
	for i, set := range sets {
		shown := len(set.Rows)
		if shown > MaxRows {
			shown = MaxRows
		}
		rows := make([][]string, shown)
		for r := 0; r < shown; r++ {
			row := make([]string, len(set.Rows[r]))
			for c, val := range set.Rows[r] {
				row[c] = Cell(val)
			}
			rows[r] = row
		}
		v.Blocks = append(v.Blocks, Block{
			Ordinal:   i + 1,
			Columns:   append([]string(nil), set.Columns...),
			Rows:      rows,
			TotalRows: set.Count(),
			Truncated: set.Count() > MaxRows,
		})
	}
	return v
}

// Cell renders a single value.
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return x.Format(time.DateOnly)
	default:
		return fmt.Sprint(x)
	}
}

// Text renders a view as plain aligned text for non-interactive output.
func Text(v View) string {
	if v.Empty {
		return NoResults + "\n"
	}
	var b strings.Builder
	for i, blk := range v.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(blk.Label())
		b.WriteString("\n")
		writeTable(&b, blk)
		if n := blk.Notice(); n != "" {
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeTable(b *strings.Builder, blk Block) {
	widths := make([]int, len(blk.Columns))
	for i, c := range blk.Columns {
		widths[i] = len([]rune(c))
	}
	for _, row := range blk.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	line := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(cell))))
			}
		}
		b.WriteString("\n")
	}

	line(blk.Columns)
	total := 0
	for i, w := range widths {
		if i > 0 {
			total += 2
		}
		total += w
	}
	b.WriteString(strings.Repeat("─", total))
	b.WriteString("\n")
	for _, row := range blk.Rows {
		line(row)
	}
}
