// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a persistent program status bar and an input
// prompt at the bottom of the terminal. All application output is
// printed above the rendered area via Program.Println / Printf,
// ensuring concurrent writes never garble the display.
package display

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/simmer/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	runStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#86efac"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ── Output styles (soft palette) ──

	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// themeColors maps a program's opaque theme tag to its accent color.
// Unknown tags fall back to the primary text color.
var themeColors = map[string]lipgloss.Color{
	"strawberry-milk": lipgloss.Color("#f9a8d4"),
	"taro-milk-tea":   lipgloss.Color("#d8b4fe"),
	"sea-salt":        lipgloss.Color("#67e8f9"),
	"mango-pudding":   lipgloss.Color("#fdba74"),
	"matcha":          lipgloss.Color("#6ee7b7"),
	"peach":           lipgloss.Color("#fda4af"),
	"blueberry":       lipgloss.Color("#a5b4fc"),
}

// ThemeStyle returns a lipgloss style tinted for the given theme tag.
func ThemeStyle(theme string) lipgloss.Style {
	if c, ok := themeColors[theme]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return primaryStyle
}

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call [UI.Println], [UI.Printf], and read from [UI.InputChan] at any
// time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	store   domain.ProgramStore
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(store domain.ProgramStore) *UI {
	return &UI{
		store:   store,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
// The output is printed on its own line.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format, a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a conversational assistant line.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintHeader prints a section header like "Program 2/7 — Five Reds Soup".
func (u *UI) PrintHeader(text string) {
	u.Println(headerStyle.Render("  " + text))
}

// PrintLine prints primary body text.
func (u *UI) PrintLine(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an urgent/error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("simmer") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	ti.Prompt = "simmer> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		store:   u.store,
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	store    domain.ProgramStore
	input    textinput.Model
	inputCh  chan<- string
	readyCh  chan struct{}
	echoFn   func(string) // prints user input into scrollback
	programs []programInfo
	width    int
}

type programInfo struct {
	index  int // 1-based board position
	name   string
	theme  string
	clock  string
	status domain.Status
}

// Messages.
type refreshMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		refreshCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func refreshCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Echo via a Cmd so it runs outside Update and can't
				// deadlock on the message queue.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		const promptLen = 8 // "simmer> "
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen
		}
		return m, nil

	case refreshMsg:
		m.refreshPrograms()
		cmds := []tea.Cmd{refreshCmd()}
		if len(m.programs) > 0 {
			cmds = append(cmds, tea.SetWindowTitle(m.titleStr()))
		} else {
			cmds = append(cmds, tea.SetWindowTitle("Simmer"))
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// refreshPrograms snapshots the board. The store hands out clones, so
// this never races the tick loop.
func (m *model) refreshPrograms() {
	programs, err := m.store.List(context.Background())
	if err != nil {
		return
	}
	m.programs = m.programs[:0]
	for i, p := range programs {
		m.programs = append(m.programs, programInfo{
			index:  i + 1,
			name:   p.Name,
			theme:  p.Theme,
			clock:  FormatClock(p.TimeLeft),
			status: p.Status,
		})
	}
}

func (m model) titleStr() string {
	var parts []string
	for _, p := range m.programs {
		switch p.status {
		case domain.StatusRunning:
			parts = append(parts, fmt.Sprintf("%d:%s", p.index, p.clock))
		case domain.StatusWaiting:
			parts = append(parts, fmt.Sprintf("%d:ACT!", p.index))
		}
	}
	if len(parts) == 0 {
		return "Simmer"
	}
	return "Simmer — " + strings.Join(parts, " | ")
}

func (m model) View() string {
	var b strings.Builder

	if len(m.programs) > 0 {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	var parts []string
	for _, p := range m.programs {
		tag := fmt.Sprintf("%d ", p.index)
		switch p.status {
		case domain.StatusRunning:
			parts = append(parts, ThemeStyle(p.theme).Render(tag)+runStyle.Render(p.clock))
		case domain.StatusPaused:
			parts = append(parts, ThemeStyle(p.theme).Render(tag)+idleStyle.Render(p.clock+" ⏸"))
		case domain.StatusWaiting:
			parts = append(parts, ThemeStyle(p.theme).Render(tag)+waitingStyle.Render("ADD!"))
		case domain.StatusCompleted:
			parts = append(parts, ThemeStyle(p.theme).Render(tag)+doneStyle.Render("done"))
		default:
			parts = append(parts, ThemeStyle(p.theme).Render(tag)+idleStyle.Render(p.clock))
		}
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}

// ── Helpers ──────────────────────────────────────────────────────

// FormatClock renders whole seconds as h:mm:ss or m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
