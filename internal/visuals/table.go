package visuals

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/dm/balena-go/internal/model"
)

// ErrUnknownColumn is returned when a row cannot produce a requested column.
var ErrUnknownColumn = errors.New("unknown column")

// Row is anything that can format itself by column key.
type Row interface {
	Cell(key string) (string, bool)
}

// Horizontal renders rows as a borderless table with one header line and one
// line per row, columns in cols order. The whole table is built before it is
// returned, so a failing cell yields no output at all.
func Horizontal[T Row](r *lipgloss.Renderer, rows []T, cols []model.Column) (string, error) {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(cols))
		for j, c := range cols {
			v, ok := row.Cell(c.Key)
			if !ok {
				return "", fmt.Errorf("render row %d: %w %q", i, ErrUnknownColumn, c.Key)
			}
			cells[i][j] = sanitize(v)
		}
	}

	header := headerStyle(r)
	cell := r.NewStyle()
	last := len(cols) - 1
	t := ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(true).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == ltable.HeaderRow {
				s = header
			}
			if col < last {
				s = s.PaddingRight(1)
			}
			return s
		})

	return t.String(), nil
}

// sanitize removes ANSI escape sequences and control characters so values
// coming from the API cannot break the table layout or the terminal.
func sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
