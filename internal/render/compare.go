// internal/render/compare.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/rollup-cost-profiler/internal/rollup"
)

// compareColumn describes one column of the comparison table
type compareColumn struct {
	header string
	width  int
	align  lipgloss.Position
	value  func(rollup.Result) string
}

var compareColumns = []compareColumn{
	{"Profile", 12, lipgloss.Left, func(r rollup.Result) string { return string(r.Profile) }},
	{"Batches", 9, lipgloss.Right, func(r rollup.Result) string { return fmt.Sprintf("%d", r.Batches) }},
	{"Total gas", 13, lipgloss.Right, func(r rollup.Result) string { return fmt.Sprintf("%d", r.TotalGas) }},
	{"Total fee (ETH)", 17, lipgloss.Right, func(r rollup.Result) string { return fmt.Sprintf(totalFeeFormat, r.TotalFeeEth) }},
	{"Per tx fee (ETH)", 18, lipgloss.Right, func(r rollup.Result) string { return fmt.Sprintf(perTxFeeFormat, r.PerTxFeeEth) }},
}

var (
	compareHeaderStyle = lipgloss.NewStyle().
				Foreground(Magenta).
				Bold(true).
				Padding(0, 1)

	compareRowStyle = lipgloss.NewStyle().
			Foreground(Base2).
			Padding(0, 1)

	compareBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Base01)
)

// WriteComparison renders one estimate per built-in profile as a table.
// Rows arrive pre-computed so the renderer stays free of estimation logic.
func WriteComparison(w io.Writer, txCount int64, results []rollup.Result) error {
	var lines []string

	var header []string
	for _, col := range compareColumns {
		header = append(header, compareHeaderStyle.Width(col.width).Align(col.align).Render(col.header))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, res := range results {
		var cells []string
		for _, col := range compareColumns {
			cells = append(cells, compareRowStyle.Width(col.width).Align(col.align).Render(col.value(res)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	table := compareBorderStyle.Render(strings.Join(lines, "\n"))

	title := TitleStyle.Render(fmt.Sprintf("Profile comparison for %d transactions", txCount))
	if _, err := fmt.Fprintf(w, "%s\n%s\n", title, table); err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}
	return nil
}
