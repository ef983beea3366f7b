// Package ui renders the synchronized tab strip and page deck with Bubble
// Tea. It is a rendering collaborator: all shared state lives in the
// controller, and this package only reads values and invokes operations.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davepk/tabdeck/internal/config"
	"github.com/davepk/tabdeck/internal/control"
	"github.com/davepk/tabdeck/internal/metrics"
	"github.com/davepk/tabdeck/internal/prefs"
)

// frameInterval is the animation frame cadence. The tick only runs while
// something moves; an idle deck costs nothing.
const frameInterval = time.Second / 30

// pulseFrames is how long the indicator flashes after a feedback event.
const pulseFrames = 4

// stripStep is how far one manual strip-scroll keypress travels, in cells.
const stripStep = 6

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    config.Config
	ThemeName string
	PrefsPath string

	// Logf receives controller warnings. Nil discards them.
	Logf func(format string, args ...any)
}

// effects holds per-frame visual state shared across Model copies.
type effects struct {
	pulse int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	opts   Options
	keys   keyMap
	theme  Theme
	styles Styles

	labels []string
	scale  float64

	ctrl *control.Controller
	fx   *effects

	width   int
	height  int
	ready   bool
	ticking bool

	showHelp bool
}

// New creates a new Bubble Tea model around a freshly constructed
// controller. Invalid configuration fails here, before the terminal is
// touched.
func New(opts Options) (Model, error) {
	cfg := opts.Config

	align := metrics.AlignLeft
	if cfg.Alignment == "center" {
		align = metrics.AlignCenter
	}

	ctrl, err := control.New(control.Config{
		Length:        len(cfg.Tabs),
		InitialIndex:  0,
		Duration:      time.Duration(cfg.AnimationMs) * time.Millisecond,
		Align:         align,
		FixedWidth:    cfg.FixedWidth,
		FixedFraction: cfg.FixedFraction,
		Spacing:       cfg.Spacing,
		Padding:       cfg.Padding,
		Logf:          opts.Logf,
	})
	if err != nil {
		return Model{}, err
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = cfg.Theme
	}
	theme := GetTheme(themeName)

	fx := &effects{}
	ctrl.OnFeedback(func() { fx.pulse = pulseFrames })

	return Model{
		opts:   opts,
		keys:   DefaultKeyMap(),
		theme:  theme,
		styles: theme.Styles(),
		labels: append([]string(nil), cfg.Tabs...),
		scale:  cfg.Scale,
		ctrl:   ctrl,
		fx:     fx,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ctrl.SetMeasure(metrics.DefaultMeasure(m.labels, m.scale))
		m.ctrl.Resize(float64(msg.Width))
		m.ctrl.SafePoint()
		return m.arm()

	case frameMsg:
		m.ticking = false
		m.ctrl.SafePoint()
		busy := m.ctrl.Advance(time.Time(msg))
		if m.fx.pulse > 0 {
			m.fx.pulse--
		}
		if busy || m.fx.pulse > 0 {
			return m.arm()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	if m.ctrl.Initialized() {
		mdl := m.ctrl.Metrics()
		row, kinds := layoutStrip(mdl, m.tabLabel, m.ctrl.SelectedIndex(), m.ctrl.StripOffset(), m.width)
		b.WriteString(stylize(row, kinds, m.styles))
		b.WriteString("\n")

		floored, frac := m.ctrl.Progress()
		ind := layoutIndicator(mdl, floored, frac, m.ctrl.IndicatorExtent(), m.ctrl.StripOffset(), m.width)
		style := m.styles.Indicator
		if m.fx.pulse > 0 {
			style = m.styles.IndicatorPulse
		}
		b.WriteString(style.Render(string(ind)))
		b.WriteString("\n")

		deckHeight := m.height - 3
		if deckHeight > 0 {
			render := defaultPageRenderer(func() []string { return m.labels })
			pages := renderDeck(render, m.ctrl.Length(), floored, frac, m.ctrl.SelectedIndex(), m.width, deckHeight)
			b.WriteString(m.styles.Page.Render(strings.Join(pages, "\n")))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		_ = m.ctrl.TapTab(m.ctrl.SelectedIndex() + 1)
		return m.arm()

	case key.Matches(msg, m.keys.PrevTab):
		_ = m.ctrl.TapTab(m.ctrl.SelectedIndex() - 1)
		return m.arm()

	case key.Matches(msg, m.keys.Digit):
		i := int(msg.String()[0] - '1')
		if i < m.ctrl.Length() {
			_ = m.ctrl.TapTab(i)
		}
		return m.arm()

	case key.Matches(msg, m.keys.Home):
		_ = m.ctrl.JumpToIndex(0)
		return m.arm()

	case key.Matches(msg, m.keys.DragLeft):
		m.ctrl.ScrollDeckBy(-0.25 * float64(m.width))
		return m.arm()

	case key.Matches(msg, m.keys.DragRight):
		m.ctrl.ScrollDeckBy(0.25 * float64(m.width))
		return m.arm()

	case key.Matches(msg, m.keys.StripLeft):
		m.ctrl.BeginStripScroll()
		m.ctrl.ScrollStripBy(-stripStep)
		m.ctrl.EndStripScroll()
		return m.arm()

	case key.Matches(msg, m.keys.StripRight):
		m.ctrl.BeginStripScroll()
		m.ctrl.ScrollStripBy(stripStep)
		m.ctrl.EndStripScroll()
		return m.arm()

	case key.Matches(msg, m.keys.ToggleAlign):
		next := metrics.AlignLeft
		if m.ctrl.Align() == metrics.AlignLeft {
			next = metrics.AlignCenter
		}
		if err := m.ctrl.SetAlignment(next); err != nil && m.opts.Logf != nil {
			m.opts.Logf("set alignment: %v", err)
		}
		m.savePrefs()
		return m.arm()

	case key.Matches(msg, m.keys.ToggleFixed):
		if err := m.ctrl.SetFixedWidth(!m.ctrl.FixedWidth(), 0); err != nil && m.opts.Logf != nil {
			m.opts.Logf("set fixed width: %v", err)
		}
		return m.arm()

	case key.Matches(msg, m.keys.AddTab):
		m.labels = append(m.labels, fmt.Sprintf("Tab %d", len(m.labels)+1))
		return m.applyLabels()

	case key.Matches(msg, m.keys.RemoveTab):
		if len(m.labels) > 1 {
			m.labels = m.labels[:len(m.labels)-1]
			return m.applyLabels()
		}
		return m, nil
	}

	return m, nil
}

// applyLabels pushes a changed label set into the controller: new
// measurement collaborator first, then the length change, which rebuilds
// metrics before any scroll movement.
func (m Model) applyLabels() (tea.Model, tea.Cmd) {
	m.ctrl.SetMeasure(metrics.DefaultMeasure(m.labels, m.scale))
	if err := m.ctrl.SetLength(len(m.labels), -1, false); err != nil && m.opts.Logf != nil {
		m.opts.Logf("set length: %v", err)
	}
	return m.arm()
}

// arm schedules the next animation frame unless one is already pending.
func (m Model) arm() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, frameCmd()
}

func (m Model) tabLabel(mod int, selected bool) string {
	return m.labels[mod]
}

func (m Model) renderStatus() string {
	return m.styles.Status.Render(fmt.Sprintf(
		" %s  •  %s  •  tab %d/%d  •  ? help",
		m.theme.Name,
		m.ctrl.Align(),
		m.ctrl.SelectedIndex()+1,
		m.ctrl.Length(),
	))
}

func (m Model) savePrefs() {
	if m.opts.PrefsPath == "" {
		return
	}
	_ = prefs.Save(m.opts.PrefsPath, prefs.Prefs{
		Theme:     m.theme.Name,
		Alignment: m.ctrl.Align().String(),
	})
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err = p.Run()
	return err
}
