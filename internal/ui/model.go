package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/rollup-cost-profiler/internal/render"
	"github.com/rovshanmuradov/rollup-cost-profiler/internal/rollup"
)

// Focusable fields, in tab order. The profile selector comes first; the
// numeric inputs follow in the order they are rendered.
const (
	fieldProfile = iota
	fieldTxCount
	fieldBatchSize
	fieldGasPrice
	fieldCount
)

var inputLabels = [...]string{"Transactions", "Batch size", "Gas price (gwei)"}

var resultBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(render.Base01).
	Padding(0, 1)

// Model is the single-screen estimate explorer
type Model struct {
	keys KeyMap
	help help.Model

	inputs     [3]textinput.Model
	focus      int
	profileIdx int
	catalog    []rollup.Profile

	result *rollup.Result
	err    error

	width  int
	height int
	log    *zap.Logger
}

// New creates the explorer model with the default aztec profile selected
func New(log *zap.Logger) Model {
	m := Model{
		keys:    DefaultKeyMap(),
		help:    help.New(),
		catalog: rollup.ListProfiles(),
		log:     log,
	}

	defaults := [...]string{"1000", "", ""}
	placeholders := [...]string{"required", "profile default", "profile default"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 20
		ti.Width = 22
		ti.SetValue(defaults[i])
		m.inputs[i] = ti
	}

	m.recompute()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Debug("Explorer quitting")
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextField):
			return m, m.setFocus((m.focus + 1) % fieldCount)

		case key.Matches(msg, m.keys.PrevField):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

		case key.Matches(msg, m.keys.PrevProfile) && m.focus == fieldProfile:
			m.profileIdx = (m.profileIdx + len(m.catalog) - 1) % len(m.catalog)
			m.recompute()
			return m, nil

		case key.Matches(msg, m.keys.NextProfile) && m.focus == fieldProfile:
			m.profileIdx = (m.profileIdx + 1) % len(m.catalog)
			m.recompute()
			return m, nil

		default:
			if m.focus != fieldProfile {
				idx := m.focus - 1
				var cmd tea.Cmd
				m.inputs[idx], cmd = m.inputs[idx].Update(msg)
				m.recompute()
				return m, cmd
			}
			return m, nil
		}
	}

	return m, nil
}

// setFocus moves focus to the given field and returns the blink command
// when a text input takes focus
func (m *Model) setFocus(field int) tea.Cmd {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if field == fieldProfile {
		return nil
	}
	return m.inputs[field-1].Focus()
}

// recompute re-runs the estimate from the current form state. Validation
// errors replace the result pane instead of quitting the program.
func (m *Model) recompute() {
	m.result = nil
	m.err = nil

	txRaw := strings.TrimSpace(m.inputs[fieldTxCount-1].Value())
	if txRaw == "" {
		m.err = fmt.Errorf("transaction count is required")
		return
	}
	txCount, err := strconv.ParseInt(txRaw, 10, 64)
	if err != nil {
		m.err = fmt.Errorf("transaction count %q is not an integer", txRaw)
		return
	}

	var ov rollup.Overrides
	if raw := strings.TrimSpace(m.inputs[fieldBatchSize-1].Value()); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			m.err = fmt.Errorf("batch size %q is not a positive integer", raw)
			return
		}
		ov.BatchSize = &val
	}
	if raw := strings.TrimSpace(m.inputs[fieldGasPrice-1].Value()); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil || val < 0 {
			m.err = fmt.Errorf("gas price %q is not a non-negative number", raw)
			return
		}
		ov.GasPriceGwei = &val
	}

	profile, err := rollup.Resolve(m.catalog[m.profileIdx].Key, ov)
	if err != nil {
		m.err = err
		return
	}

	res, err := rollup.Estimate(txCount, profile)
	if err != nil {
		m.err = err
		return
	}
	m.result = &res

	m.log.Debug("Estimate recomputed",
		zap.String("profile", string(res.Profile)),
		zap.Int64("tx_count", res.TxCount),
		zap.Uint64("total_gas", res.TotalGas),
	)
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(render.TitleStyle.Render("Rollup cost explorer"))
	b.WriteString("\n\n")

	b.WriteString(m.viewProfileSelector())
	b.WriteString("\n")

	for i, input := range m.inputs {
		label := render.LabelStyle.Render(fmt.Sprintf("%-17s", inputLabels[i]))
		b.WriteString(fmt.Sprintf("%s %s\n", label, input.View()))
	}
	b.WriteString("\n")

	b.WriteString(m.viewResult())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) viewProfileSelector() string {
	prof := m.catalog[m.profileIdx]

	name := fmt.Sprintf("◀ %s (%s) ▶", prof.Name, prof.Key)
	style := render.ValueStyle
	if m.focus == fieldProfile {
		style = render.TitleStyle
	}

	return fmt.Sprintf("%s %s\n%s\n",
		render.LabelStyle.Render(fmt.Sprintf("%-17s", "Profile")),
		style.Render(name),
		render.MutedStyle.Render(prof.Description),
	)
}

func (m Model) viewResult() string {
	if m.err != nil {
		return render.ErrorStyle.Render("✗ " + m.err.Error())
	}
	if m.result == nil {
		return ""
	}
	res := *m.result

	lines := []string{
		fmt.Sprintf("%s %d", render.LabelStyle.Render("Batches      :"), res.Batches),
		fmt.Sprintf("%s %d proof / %d overhead / %d calldata",
			render.LabelStyle.Render("Gas breakdown:"),
			res.TotalProofGas, res.TotalOverheadGas, res.TotalCalldataGas),
		fmt.Sprintf("%s %s", render.LabelStyle.Render("Total gas    :"),
			render.TotalStyle.Render(fmt.Sprintf("%d", res.TotalGas))),
		fmt.Sprintf("%s %s", render.LabelStyle.Render("Total fee    :"),
			render.TotalStyle.Render(fmt.Sprintf("%.6f ETH", res.TotalFeeEth))),
		fmt.Sprintf("%s %.8f ETH   %s %.2f gas",
			render.LabelStyle.Render("Per tx fee   :"), res.PerTxFeeEth,
			render.LabelStyle.Render("Per tx gas:"), res.PerTxGas),
	}

	return resultBoxStyle.Render(strings.Join(lines, "\n"))
}
