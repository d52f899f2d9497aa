package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/LtttAZ/fus/internal/ado"
)

const absentCell = "—"

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable renders headers and rows with a leading "#" row-number
// column already present in rows.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}

			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// projectRows extracts one cell per field path from each record, with
// 1-based row numbers in the first column. Any unresolvable field aborts
// the whole render; no partial table is produced.
func projectRows(records []map[string]any, fields []string) ([][]string, error) {
	rows := make([][]string, 0, len(records))

	for i, record := range records {
		row := make([]string, 0, len(fields)+1)
		row = append(row, strconv.Itoa(i+1))

		for _, field := range fields {
			value, err := ado.GetField(record, field)
			if err != nil {
				return nil, err
			}

			row = append(row, formatCell(value))
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return absentCell
	case time.Time:
		if v.IsZero() {
			return absentCell
		}

		return v.Format("2006-01-02 15:04")
	default:
		return fmt.Sprintf("%v", v)
	}
}
