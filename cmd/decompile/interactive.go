package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gowasm/w2r/emit"
	"github.com/gowasm/w2r/module"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))
)

type browseModel struct {
	filename  string
	all       []*module.FuncDesc
	fns       []*module.FuncDesc
	selected  int
	viewing   bool
	filter    textinput.Model
	filtering bool
}

func newBrowseModel(filename string, ctx *module.Context) *browseModel {
	var fns []*module.FuncDesc
	for i := range ctx.Functions {
		if ctx.Functions[i].Kind == module.Defined {
			fns = append(fns, &ctx.Functions[i])
		}
	}
	sort.Slice(fns, func(i, j int) bool { return fns[i].DisplayName() < fns[j].DisplayName() })

	ti := textinput.New()
	ti.Placeholder = "filter by name"
	ti.Prompt = "/"
	ti.Width = 40

	return &browseModel{filename: filename, all: fns, fns: fns, filter: ti}
}

func (m *browseModel) applyFilter() {
	q := m.filter.Value()
	if q == "" {
		m.fns = m.all
		return
	}
	var out []*module.FuncDesc
	for _, fn := range m.all {
		if strings.Contains(fn.DisplayName(), q) {
			out = append(out, fn)
		}
	}
	m.fns = out
	if m.selected >= len(m.fns) {
		m.selected = 0
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch keyMsg.String() {
		case "esc", "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if !m.viewing && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if !m.viewing && m.selected < len(m.fns)-1 {
			m.selected++
		}

	case "enter":
		if !m.viewing && len(m.fns) > 0 {
			m.viewing = true
		}

	case "/":
		if !m.viewing {
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		}

	case "esc":
		m.viewing = false
	}
	return m, nil
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WASM Decompiler"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	} else if m.filter.Value() != "" {
		b.WriteString(helpStyle.Render("filter: " + m.filter.Value()))
		b.WriteString("\n\n")
	}

	if len(m.fns) == 0 {
		b.WriteString("No functions match.\n")
		b.WriteString(helpStyle.Render("/ change filter • q quit"))
		return b.String()
	}

	if m.viewing {
		fn := m.fns[m.selected]
		b.WriteString(fmt.Sprintf("Decompiled source for %s:\n\n", funcStyle.Render(fn.DisplayName())))
		for _, line := range emit.Function(fn) {
			b.WriteString(sourceStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
		return b.String()
	}

	b.WriteString("Select a function to view its decompiled source:\n\n")
	for i, fn := range m.fns {
		line := m.formatFunc(fn)
		cursor := "  "
		if i == m.selected {
			cursor = "> "
			b.WriteString(selectedStyle.Render(cursor + line))
		} else {
			b.WriteString(cursor + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter view source • / filter • q quit"))
	return b.String()
}

func (m *browseModel) formatFunc(fn *module.FuncDesc) string {
	var params []string
	for i, p := range fn.Sig.Params {
		params = append(params, fmt.Sprintf("p%d: %s", i, typeStyle.Render(p.String())))
	}
	result := ""
	if len(fn.Sig.Results) > 0 {
		result = " -> " + typeStyle.Render(fn.Sig.Results[0].String())
	}
	return funcStyle.Render(fn.DisplayName()) + "(" + strings.Join(params, ", ") + ")" + result
}

func runInteractive(filename string, ctx *module.Context) error {
	p := tea.NewProgram(newBrowseModel(filename, ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
