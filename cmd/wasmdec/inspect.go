package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-bytecode/engine"
	"github.com/wippyai/wasm-bytecode/wasm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	listStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("#444444"))
)

type inspectKeys struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Filter   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultInspectKeys() inspectKeys {
	return inspectKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "scroll detail up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "scroll detail down")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k inspectKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Help, k.Quit}
}

func (k inspectKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.PageUp, k.PageDown},
		{k.Filter, k.Help, k.Quit},
	}
}

// step is one top-level instruction and the bytes it was decoded from.
type step struct {
	in     wasm.Instruction
	offset int
	size   int
}

type inspectModel struct {
	err      error
	dec      *wasm.Decoder
	mnemonic func(string) string
	keys     inspectKeys
	help     help.Model
	filter   textinput.Model
	viewport viewport.Model
	filename string
	code     []byte
	steps    []step
	visible  []int
	selected int
	top      int
	width    int
	height   int
	loaded   bool
}

type loadedMsg struct {
	err   error
	steps []step
}

func newInspectModel(filename string, code []byte, dec *wasm.Decoder, mnemonic func(string) string) *inspectModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "mnemonic"
	ti.CharLimit = 64

	return &inspectModel{
		dec:      dec,
		mnemonic: mnemonic,
		keys:     defaultInspectKeys(),
		help:     help.New(),
		filter:   ti,
		viewport: viewport.New(80, 20),
		filename: filename,
		code:     code,
		width:    80,
		height:   24,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return m.load
}

// load steps through the whole body. Instructions decoded before a
// failure are kept so the failure can be inspected in context.
func (m *inspectModel) load() tea.Msg {
	ex, err := engine.New(m.code, &engine.Config{Decoder: m.dec})
	if err != nil {
		return loadedMsg{err: err}
	}
	var steps []step
	err = ex.Run(func(in wasm.Instruction, off int) error {
		steps = append(steps, step{in: in, offset: off, size: ex.Position() - off})
		return nil
	})
	return loadedMsg{steps: steps, err: err}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.steps = msg.steps
		m.err = msg.err
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.filter.Focused() {
			return m.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Top):
			m.move(-len(m.visible))
		case key.Matches(msg, m.keys.Bottom):
			m.move(len(m.visible))
		case key.Matches(msg, m.keys.Filter):
			m.filter.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *inspectModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filter.SetValue("")
		m.filter.Blur()
		m.applyFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *inspectModel) applyFilter() {
	want := strings.TrimSpace(m.filter.Value())
	m.visible = m.visible[:0]
	for i, s := range m.steps {
		if want == "" || stepMatches(s.in, want) {
			m.visible = append(m.visible, i)
		}
	}
	m.selected, m.top = 0, 0
	m.refresh()
}

// stepMatches reports whether the instruction or anything nested in it
// has a mnemonic containing want.
func stepMatches(in wasm.Instruction, want string) bool {
	found := false
	wasm.Walk([]wasm.Instruction{in}, func(n wasm.Instruction, _ int) bool {
		found = strings.Contains(n.Op.String(), want)
		return !found
	})
	return found
}

func (m *inspectModel) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.visible)-1)
	m.refresh()
}

func (m *inspectModel) listWidth() int {
	return max(m.width*2/5, 24)
}

func (m *inspectModel) bodyHeight() int {
	footer := 1
	if m.help.ShowAll {
		footer = 4
	}
	return max(m.height-2-footer, 1)
}

func (m *inspectModel) layout() {
	m.viewport.Width = max(m.width-m.listWidth()-2, 10)
	m.viewport.Height = m.bodyHeight()
	m.refresh()
}

// refresh keeps the selection on screen and redraws the detail pane.
func (m *inspectModel) refresh() {
	h := m.bodyHeight()
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+h {
		m.top = m.selected - h + 1
	}
	m.viewport.SetContent(m.detail())
	m.viewport.GotoTop()
}

func (m *inspectModel) current() (step, bool) {
	if m.selected >= len(m.visible) {
		return step{}, false
	}
	return m.steps[m.visible[m.selected]], true
}

func (m *inspectModel) detail() string {
	s, ok := m.current()
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "offset 0x%06x  size %d bytes  %d instructions\n",
		s.offset, s.size, wasm.Count([]wasm.Instruction{s.in}))

	raw := m.code[s.offset : s.offset+s.size]
	for i := 0; i < len(raw); i += 16 {
		line := raw[i:min(i+16, len(raw))]
		b.WriteString(bytesStyle.Render(fmt.Sprintf("% x", line)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	var tree bytes.Buffer
	p := &wasm.Printer{Mnemonic: m.mnemonic}
	_ = p.Fprint(&tree, []wasm.Instruction{s.in})
	b.Write(tree.Bytes())
	return b.String()
}

func (m *inspectModel) View() string {
	if !m.loaded {
		return "Decoding " + m.filename + "..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("wasmdec"))
	fmt.Fprintf(&b, " %s  %d instructions", m.filename, len(m.steps))
	if want := m.filter.Value(); want != "" {
		fmt.Fprintf(&b, "  filter %q: %d shown", want, len(m.visible))
	}
	b.WriteString("\n\n")

	w, h := m.listWidth(), m.bodyHeight()
	var rows []string
	for i := m.top; i < len(m.visible) && i < m.top+h; i++ {
		s := m.steps[m.visible[i]]
		row := truncate(fmt.Sprintf("%06x %s", s.offset, s.in.String()), w)
		if i == m.selected {
			rows = append(rows, selectedStyle.Render(row))
			continue
		}
		rows = append(rows, offsetStyle.Render(row[:6])+row[6:])
	}
	list := listStyle.Width(w).Height(h).Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", m.viewport.View()))
	b.WriteString("\n")

	switch {
	case m.filter.Focused():
		b.WriteString(m.filter.View())
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("  ")
		b.WriteString(m.help.View(m.keys))
	default:
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func truncate(s string, w int) string {
	if len(s) <= w {
		return s
	}
	if w <= 1 {
		return s[:w]
	}
	return s[:w-1] + "…"
}

type inspectCmd struct {
	root  *rootCommand
	input inputFlags
}

func (c *inspectCmd) run(cmd *cobra.Command, args []string) error {
	if args[0] == "-" {
		return fmt.Errorf("inspect reads keys from stdin; pass a file")
	}
	data, err := c.input.read(c.root, args[0])
	if err != nil {
		return err
	}
	m := newInspectModel(args[0], data, c.root.cfg.NewDecoder(), c.root.mnemonicFunc(cmd.OutOrStdout()))
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(c.root.gs.stdin),
		tea.WithOutput(cmd.OutOrStdout()))
	_, err = p.Run()
	return err
}

func getCmdInspect(root *rootCommand) *cobra.Command {
	c := &inspectCmd{root: root}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Browse a function body interactively",
		Long: `Open an interactive view listing the top-level instructions of a
function body next to the bytes and tree of the selected one.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}
	cmd.Flags().AddFlagSet(c.input.flagSet())
	return cmd
}
