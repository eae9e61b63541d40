// Package tui implements the Waymark terminal user interface. It plays
// the role of the map host: the map panel owns the highlighted feature
// and the sequencer control is registered onto it as a widget.
package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/placeways/waymark/internal/bridge"
	"github.com/placeways/waymark/internal/dateline"
	"github.com/placeways/waymark/internal/gesture"
	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/sequencer"
	"github.com/placeways/waymark/internal/tui/components"
	"github.com/placeways/waymark/internal/tui/styles"
	"github.com/placeways/waymark/internal/waytable"
)

// Host implements the map side of the bridge contract. It records which
// feature is highlighted and which control is registered; the view reads
// both on every frame.
type Host struct {
	mu          sync.RWMutex
	highlighted string
	control     bridge.Control
	position    string
}

// NewHost creates an empty map host.
func NewHost() *Host {
	return &Host{}
}

// AddControl registers a control at a map corner position.
func (h *Host) AddControl(control bridge.Control, position string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.control = control
	h.position = position
}

// SetHighlight records the highlighted feature.
func (h *Host) SetHighlight(placeID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.highlighted = placeID
}

// Highlighted returns the highlighted feature, if any.
func (h *Host) Highlighted() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.highlighted
}

// Config carries the collaborators the TUI renders and drives.
type Config struct {
	Table    *waytable.Service
	Bridge   *bridge.Bridge
	Host     *Host
	Dateline *dateline.Dateline
	Theme    string
}

// Run launches the Waymark TUI program.
func Run(cfg Config) error {
	program := tea.NewProgram(initialModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int
	styles styles.Styles
	now    time.Time

	table *waytable.Service
	br    *bridge.Bridge
	host  *Host
	dl    *dateline.Dateline

	detector      *gesture.PressDetector
	pressedButton models.ButtonID

	overlay      bool
	overlayValue int

	searching   bool
	searchInput string
}

const (
	minWidth  = 60
	minHeight = 18

	mapWidth  = 56
	mapHeight = 12

	// transportRow is the terminal row of the transport bar, counted
	// from the top of the view. ButtonZones hit testing depends on the
	// View layout keeping the bar there.
	transportRow = 2
)

func initialModel(cfg Config) model {
	theme, ok := styles.Themes[cfg.Theme]
	if !ok {
		theme = styles.DefaultTheme
	}
	return model{
		styles:   styles.BuildStyles(theme),
		now:      time.Now(),
		table:    cfg.Table,
		br:       cfg.Bridge,
		host:     cfg.Host,
		dl:       cfg.Dateline,
		detector: gesture.NewPressDetector(gesture.DefaultHoldThreshold),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.now = time.Time(msg)
		// A press held past the threshold opens the settings overlay
		// without waiting for the release.
		if held, ok := m.detector.HeldFor(m.now); ok && held >= gesture.DefaultHoldThreshold {
			m.detector.Cancel()
			m.pressedButton = ""
			m = m.openOverlay()
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearchKey(msg)
	}
	if m.overlay {
		return m.updateOverlayKey(msg)
	}

	engine := m.br.Engine()
	switch msg.String() {
	case "q", "ctrl+c":
		engine.Stop()
		return m, tea.Quit
	case "t":
		m.br.Toggle()
	case "home", "g":
		m.br.Skip(models.ButtonSkipFirst)
	case "left", "h":
		m.br.Skip(models.ButtonSkipPrev)
	case "right", "l":
		m.br.Skip(models.ButtonSkipNext)
	case "end", "G":
		m.br.Skip(models.ButtonSkipLast)
	case " ":
		m.br.PlayPause()
	case "d":
		// Keyboard stand-in for the long press on play.
		m = m.openOverlay()
	case "s":
		m = m.cycleSort()
	case "S":
		column, descending := m.table.Sort()
		m.table.SetSort(column, !descending)
	case "/":
		m.searching = true
		m.searchInput = m.table.SearchFilter()
	case "n", "]":
		m.table.NextPage()
	case "p", "[":
		m.table.PrevPage()
	}
	return m, nil
}

func (m model) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
	case "esc":
		m.searching = false
		m.searchInput = ""
		m.table.ClearSearchFilter()
	case "backspace":
		if m.searchInput != "" {
			m.searchInput = m.searchInput[:len(m.searchInput)-1]
			m.table.SetSearchFilter(m.searchInput)
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.searchInput += string(msg.Runes)
			m.table.SetSearchFilter(m.searchInput)
		}
	}
	return m, nil
}

func (m model) updateOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := m.br.Engine()
	minDelay, maxDelay := engine.DelayRange()
	switch msg.String() {
	case "left", "h":
		if m.overlayValue > minDelay {
			m.overlayValue--
		}
	case "right", "l":
		if m.overlayValue < maxDelay {
			m.overlayValue++
		}
	case "enter":
		engine.SetStepDelay(m.overlayValue)
		m.overlay = false
	case "esc", "q":
		m.overlay = false
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.br.Engine().Visible() || m.overlay {
		return m, nil
	}

	zones := components.ButtonZones(0)
	switch msg.Action {
	case tea.MouseActionPress:
		// Some terminals omit the button on release, so only the press
		// is gated on the left button.
		if msg.Button != tea.MouseButtonLeft || msg.Y != transportRow {
			return m, nil
		}
		id, ok := components.ZoneAt(zones, msg.X)
		if !ok {
			return m, nil
		}
		m.pressedButton = id
		if id == models.ButtonPlay {
			m.detector.Press(time.Now())
		}
	case tea.MouseActionRelease:
		pressed := m.pressedButton
		m.pressedButton = ""
		switch pressed {
		case "":
		case models.ButtonPlay:
			switch m.detector.Release(time.Now()) {
			case gesture.ResultTap:
				m.br.PlayPause()
			case gesture.ResultHold:
				m = m.openOverlay()
			}
		default:
			m.br.Skip(pressed)
		}
	}
	return m, nil
}

func (m model) openOverlay() model {
	m.overlay = true
	m.overlayValue = m.br.Engine().State().StepDelaySeconds
	return m
}

func (m model) cycleSort() model {
	column, descending := m.table.Sort()
	for i, c := range waytable.SortColumns {
		if c == column {
			next := waytable.SortColumns[(i+1)%len(waytable.SortColumns)]
			m.table.SetSort(next, descending)
			break
		}
	}
	return m
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	engine := m.br.Engine()
	state := engine.State()
	visible := engine.Visible()
	highlighted := m.host.Highlighted()

	lines := []string{
		m.styles.Title.Render("Waymark"),
		"",
	}

	if visible {
		affordances := sequencer.Affordances(state)
		lines = append(lines, components.RenderTransportBar(m.styles, affordances, state.Playing))
		lines = append(lines, components.RenderTransportHints(m.styles, affordances))
	} else {
		lines = append(lines, m.styles.Muted.Render("sequencer hidden"))
		lines = append(lines, m.styles.Muted.Render("press t to show it"))
	}
	lines = append(lines, "")

	if m.overlay {
		minDelay, maxDelay := engine.DelayRange()
		overlay := components.DelayOverlay{Selected: m.overlayValue, Min: minDelay, Max: maxDelay}
		lines = append(lines, overlay.Render(m.styles), "")
	}

	panel := components.MapPanel{Width: mapWidth, Height: mapHeight}
	lines = append(lines, panel.Render(m.styles, m.table.SortOrder(), highlighted), "")

	if m.dl != nil {
		from, to := m.dl.Range()
		min, max := m.dl.Bounds()
		bar := components.DatelineBar{
			From:  int(from),
			To:    int(to),
			Min:   int(min),
			Max:   int(max),
			Width: mapWidth - 16,
		}
		lines = append(lines, bar.Render(m.styles), "")
	}

	rows, page, pages := m.table.VisibleRows()
	column, descending := m.table.Sort()
	tableView := components.WaypointTable{
		Rows:        rows,
		Highlighted: highlighted,
		Page:        page,
		Pages:       pages,
		Sort:        column,
		Descending:  descending,
		Filter:      m.table.SearchFilter(),
	}
	lines = append(lines, tableView.Render(m.styles))

	if m.searching {
		lines = append(lines, "", m.styles.Focus.Render(fmt.Sprintf("search: %s▏", m.searchInput)))
	}

	lines = append(lines, "", m.styles.Muted.Render(m.shortcutLine()))
	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) shortcutLine() string {
	if m.searching {
		return "type to filter | enter keep | esc clear"
	}
	if m.overlay {
		return "←/→ adjust delay | enter apply | esc close"
	}
	return "home/end first/last | ←/→ step | space play | d delay | s sort | / search | n/p page | t toggle | q quit"
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
