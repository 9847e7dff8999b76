// Package tui provides the Bubble Tea integration: it hosts a field on a
// surface, turns terminal mouse clicks into page clicks and draws the
// surface into the terminal.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/clickfield/internal/config"
	"github.com/vovakirdan/clickfield/internal/core"
	"github.com/vovakirdan/clickfield/internal/export"
	"github.com/vovakirdan/clickfield/internal/field"
	"github.com/vovakirdan/clickfield/internal/interaction"
	"github.com/vovakirdan/clickfield/internal/random"
	"github.com/vovakirdan/clickfield/internal/storage"
	"github.com/vovakirdan/clickfield/internal/surface"
)

// FieldClass tags the element the field binds to.
const FieldClass = "js-game-field"

var headerStyle = lipgloss.NewStyle().Bold(true)

// Options configures a Model.
type Options struct {
	Config config.Config
	Store  *storage.Store // Optional; nil disables session statistics
	Logger *log.Logger    // Optional; nil discards log output
	Seed   int64          // 0 means use current time
	Width  int            // Terminal size in cells
	Height int
	User   string
}

// session tracks the statistics saved when the model finishes.
// It is shared by every copy of a Model.
type session struct {
	id      string
	user    string
	started time.Time
	saved   bool
}

// Model is the Bubble Tea model hosting one field.
type Model struct {
	cfg        config.Config
	viewport   Viewport
	glyph      rune
	tree       *surface.Tree
	field      *field.Field
	controller *interaction.Controller
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	session    *session
	keys       KeyMap
	help       help.Model
	lastClick  *core.Point
	lastColor  string
	lastErr    error
	quitting   bool
}

// NewModel builds the surface, binds a field to it and attaches a
// controller that spawns shapes on click.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vp := NewViewport(cfg.Display)
	fieldRows := core.Max(opts.Height-cfg.Field.HeaderRows-cfg.Field.FooterRows, 1)

	tree := surface.New()
	tree.NewElement(FieldClass, vp.CellRect(0, cfg.Field.HeaderRows, opts.Width, fieldRows), cfg.Field.ZIndex)

	f, err := field.New(tree.Query(FieldClass)...)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		viewport: vp,
		glyph:    []rune(cfg.Display.Glyph)[0],
		tree:     tree,
		field:    f,
		screen:   core.NewScreen(opts.Width, opts.Height),
		store:    opts.Store,
		logger:   logger,
		session: &session{
			id:      uuid.NewString(),
			user:    opts.User,
			started: time.Now(),
		},
		keys: DefaultKeyMap(),
		help: help.New(),
	}

	m.controller = interaction.New(random.New(opts.Seed), interaction.WithLogger(logger))
	m.controller.Attach(f)

	logger.Info("field ready",
		"session", m.session.id,
		"width", f.Width(),
		"height", f.Height(),
		"offset", f.Offset(),
	)
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// The field keeps the geometry it was created with
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Finish()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.field.Clear()
		m.logger.Debug("field cleared", "removed", m.field.Removed())

	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}

	case key.Matches(msg, m.keys.Export):
		path, err := m.exportPDF()
		if err != nil {
			m.logger.Warn("export failed", "error", err)
		} else {
			m.logger.Info("field exported", "path", path)
		}
	}

	return m, nil
}

// handleMouse forwards left clicks to the surface as page coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	px, py := m.viewport.CellCenter(msg.X, msg.Y)
	before := m.controller.Stats().Spawned

	m.lastErr = m.tree.Dispatch(px, py)
	if m.lastErr != nil {
		m.logger.Error("click failed", "x", px, "y", py, "error", m.lastErr)
		return m, nil
	}

	if m.controller.Stats().Spawned > before {
		p := m.field.PointFromEvent(core.NewPointerEvent(px, py))
		m.lastClick = &p
		if shapes := m.field.Shapes(); len(shapes) > 0 {
			m.lastColor = shapes[len(shapes)-1].Color()
		}
	}
	return m, nil
}

// Finish saves the session statistics once. It is safe to call from any
// copy of the model and more than once.
func (m Model) Finish() {
	if m.session.saved {
		return
	}
	m.session.saved = true

	stats := m.controller.Stats()
	m.logger.Info("session finished",
		"session", m.session.id,
		"spawned", stats.Spawned,
		"removed", m.field.Removed(),
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveSession(storage.Session{
		SessionID: m.session.id,
		User:      m.session.user,
		Spawned:   stats.Spawned,
		Squares:   stats.Squares,
		Rounds:    stats.Rounds,
		Removed:   m.field.Removed(),
		Duration:  int(time.Since(m.session.started).Seconds()),
	})
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// Field returns the hosted field.
func (m Model) Field() *field.Field {
	return m.field
}

// Stats returns the spawn counters of the session.
func (m Model) Stats() interaction.Stats {
	return m.controller.Stats()
}

// LastErr returns the error of the most recent click, if any.
func (m Model) LastErr() error {
	return m.lastErr
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() error {
	m.draw()

	dir, err := config.ExpandHome("~/.clickfield/screenshots")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("field_%s.txt", timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// exportPDF writes the shapes on the field to a PDF file.
func (m Model) exportPDF() (string, error) {
	dir, err := config.ExpandHome("~/.clickfield/exports")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("field_%s.pdf", timestamp))
	return path, export.PDF(path, m.field.Width(), m.field.Height(), m.field.Shapes())
}

// draw paints header and shapes into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()

	header := fmt.Sprintf("clickfield  shapes: %d  removed: %d",
		m.field.Len(), m.field.Removed())
	if m.lastClick != nil {
		header += "  last: " + m.lastClick.String()
	}
	if m.lastErr != nil {
		header += "  error: " + m.lastErr.Error()
	}
	m.screen.DrawText(0, 0, header)

	first := m.cfg.Field.HeaderRows
	last := m.screen.Height() - m.cfg.Field.FooterRows - 1
	Paint(m.screen, m.tree, m.viewport, m.glyph, first, last)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	out := RenderScreen(m.screen)

	lines := strings.Split(out, "\n")
	if len(lines) > 0 && m.cfg.Field.HeaderRows > 0 {
		lines[0] = headerStyle.Render(m.screen.Row(0))
		if m.lastColor != "" {
			lines[0] += " " + Swatch(m.lastColor)
		}
	}
	if m.cfg.Display.ShowHelp && m.cfg.Field.FooterRows > 0 && len(lines) > 1 {
		lines[len(lines)-1] = m.help.View(m.keys)
	}
	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks spawn and remove shapes
	)

	_, err = p.Run()
	model.Finish()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
