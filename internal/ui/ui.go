package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/gigs/internal/dates"
	"github.com/desertthunder/gigs/internal/formatter"
	"github.com/desertthunder/gigs/internal/models"
	"github.com/desertthunder/gigs/internal/shared"
	"github.com/desertthunder/gigs/internal/store"
	"github.com/desertthunder/gigs/internal/view"
)

// Mode represents what keystrokes currently drive.
type Mode int

const (
	BrowseMode Mode = iota
	SearchMode
	FormMode
	ConfirmMode
)

const statusTTL = 3 * time.Second

// Options configures a [Model].
type Options struct {
	Logger *log.Logger
	// Theme is used when no theme has been remembered yet.
	Theme string
	// Watcher is optional; without it the store is never reloaded.
	Watcher *Watcher
}

// Model represents the TUI application state.
type Model struct {
	store   *store.Store
	logger  *log.Logger
	watcher *Watcher

	filter  models.Filter
	options models.Options
	view    view.View

	mode    Mode
	table   table.Model
	search  textinput.Model
	editor  *editor
	pending *models.Concert

	theme     string
	styles    *Palette
	status    string
	statusSeq int
	err       error

	width  int
	height int
	help   help.Model
	keys   keyMap
}

// NewModel creates a TUI model over a loaded store.
func NewModel(st *store.Store, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	theme := st.Theme()
	if !validTheme(theme) {
		theme = opts.Theme
	}
	if !validTheme(theme) {
		theme = ThemeDark
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "cerca band"
	search.CharLimit = 80

	m := &Model{
		store:   st,
		logger:  shared.WithLogger(logger, "component", "ui"),
		watcher: opts.Watcher,
		filter:  models.DefaultFilter(),
		search:  search,
		theme:   theme,
		styles:  PaletteFor(theme),
		help:    help.New(),
		keys:    newKeyMap(),
		table: table.New(
			table.WithColumns(concertColumns()),
			table.WithFocused(true),
			table.WithHeight(12),
		),
	}
	m.table.SetStyles(m.styles.TableStyles())
	m.refresh()
	return m
}

// Init starts watching the database when a watcher is attached.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Next()
}

// Filter returns the active filter.
func (m *Model) Filter() models.Filter { return m.filter }

// View renders the UI based on the current mode.
func (m *Model) View() string {
	sections := []string{m.renderHeader(), m.renderStats(), m.renderFilters()}

	switch m.mode {
	case FormMode:
		sections = append(sections, m.editor.view(m.styles), m.help.ShortHelpView([]key.Binding{m.keys.next, m.keys.prev, m.keys.save, m.keys.back}))
	case ConfirmMode:
		sections = append(sections, m.renderConfirm())
	default:
		sections = append(sections, m.table.View(), m.renderDetail(), m.renderStatus(), m.renderHelp())
	}

	return m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetWidth(max(msg.Width-6, 40))
		m.table.SetHeight(max(msg.Height-18, 5))
		return m, nil

	case Msg:
		return m.handleMsg(msg)

	case tea.KeyMsg:
		switch m.mode {
		case SearchMode:
			return m.handleSearchKeys(msg)
		case FormMode:
			return m.handleFormKeys(msg)
		case ConfirmMode:
			return m.handleConfirmKeys(msg)
		default:
			return m.handleBrowseKeys(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case FormMode:
		cmd = m.editor.update(msg)
	case SearchMode:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgStoreChanged:
		m.logger.Debug("database changed, reloading")
		m.store.Reload()
		m.refresh()
		return m, m.Init()

	case MsgWatchFailed:
		err, _ := msg.data.(error)
		m.logger.Error("watcher failed", "error", err)
		return m, m.Init()

	case MsgStatusExpired:
		if seq, _ := msg.data.(int); seq == m.statusSeq {
			m.status = ""
			m.err = nil
		}
	}
	return m, nil
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.year):
		m.filter.Year = cycle(m.filter.Year, m.options.Years)
	case key.Matches(msg, m.keys.city):
		m.filter.City = cycle(m.filter.City, m.options.Cities)
	case key.Matches(msg, m.keys.event):
		m.filter.Event = cycle(m.filter.Event, m.options.Events)
	case key.Matches(msg, m.keys.artist):
		m.filter.Artist = cycle(m.filter.Artist, m.options.Artists)
	case key.Matches(msg, m.keys.sort):
		m.filter.Sort = m.filter.Sort.Next()
	case key.Matches(msg, m.keys.reset):
		m.filter = models.DefaultFilter()
		m.search.SetValue("")
	case key.Matches(msg, m.keys.search):
		m.mode = SearchMode
		m.table.Blur()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.add):
		m.editor = newEditor(nil)
		m.mode = FormMode
		return m, textinput.Blink
	case key.Matches(msg, m.keys.edit):
		if c, ok := m.selected(); ok {
			m.editor = newEditor(&c)
			m.mode = FormMode
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.delete):
		if c, ok := m.selected(); ok {
			m.pending = &c
			m.mode = ConfirmMode
		}
		return m, nil
	case key.Matches(msg, m.keys.theme):
		m.setTheme(otherTheme(m.theme))
		return m, nil
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.recompute()
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.leaveSearch()
		return m, nil
	case tea.KeyEsc:
		m.search.SetValue("")
		m.filter.Search = ""
		m.leaveSearch()
		m.recompute()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.Search = m.search.Value()
	m.recompute()
	return m, cmd
}

func (m *Model) leaveSearch() {
	m.search.Blur()
	m.table.Focus()
	m.mode = BrowseMode
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.closeEditor()
		return m, nil
	case key.Matches(msg, m.keys.next):
		return m, m.editor.move(1)
	case key.Matches(msg, m.keys.prev):
		return m, m.editor.move(-1)
	case key.Matches(msg, m.keys.save):
		return m, m.saveEditor()
	}
	return m, m.editor.update(msg)
}

func (m *Model) saveEditor() tea.Cmd {
	c, err := m.editor.submit()
	if err != nil {
		return nil
	}

	editing := m.editor.editing()
	if editing {
		_, err = m.store.Update(c)
	} else {
		_, err = m.store.Add(c)
	}
	if err != nil {
		m.editor.err = err
		return nil
	}

	m.closeEditor()
	m.refresh()
	if editing {
		m.logger.Info("concert updated", "id", c.ID)
		return m.flash("Concerto aggiornato")
	}
	m.logger.Info("concert added", "id", c.ID)
	m.selectID(c.ID)
	return m.flash("Concerto aggiunto")
}

func (m *Model) closeEditor() {
	m.editor = nil
	m.mode = BrowseMode
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.yes):
		id := m.pending.ID
		m.pending = nil
		m.mode = BrowseMode
		if err := m.store.Delete(id); err != nil {
			return m, m.fail(err)
		}
		m.logger.Info("concert deleted", "id", id)
		m.refresh()
		return m, m.flash("Concerto eliminato")
	case key.Matches(msg, m.keys.no):
		m.pending = nil
		m.mode = BrowseMode
	}
	return m, nil
}

func (m *Model) setTheme(theme string) {
	m.theme = theme
	m.styles = PaletteFor(theme)
	m.table.SetStyles(m.styles.TableStyles())
	m.store.SetTheme(theme)
}

// refresh recomputes the filter options and the view from the store.
func (m *Model) refresh() {
	m.options = view.Options(m.store.All())
	m.recompute()
}

// recompute reapplies the filter and keeps the cursor inside the table.
func (m *Model) recompute() {
	m.view = view.Compute(m.store.All(), m.filter)
	m.table.SetRows(concertRows(m.view.Concerts))

	switch n := len(m.view.Concerts); {
	case n == 0:
		m.table.SetCursor(0)
	case m.table.Cursor() >= n:
		m.table.SetCursor(n - 1)
	case m.table.Cursor() < 0:
		m.table.SetCursor(0)
	}
}

func (m *Model) selected() (models.Concert, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.view.Concerts) {
		return models.Concert{}, false
	}
	return m.view.Concerts[i], true
}

func (m *Model) selectID(id string) {
	for i, c := range m.view.Concerts {
		if c.ID == id {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m *Model) flash(status string) tea.Cmd {
	m.statusSeq++
	m.status = status
	m.err = nil
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusExpiredMsg(seq) })
}

func (m *Model) fail(err error) tea.Cmd {
	m.logger.Error("operation failed", "error", err)
	cmd := m.flash("")
	m.err = err
	return cmd
}

// cycle steps through All followed by each option, wrapping back to All.
// A current value that is no longer offered restarts at All.
func cycle(current string, opts []string) string {
	if current == models.All {
		if len(opts) == 0 {
			return models.All
		}
		return opts[0]
	}
	for i, o := range opts {
		if o == current && i+1 < len(opts) {
			return opts[i+1]
		}
	}
	return models.All
}

func (m *Model) renderHeader() string {
	title := m.styles.title.Render("🎸 Concerti")
	theme := m.styles.help.Render(fmt.Sprintf("tema: %s", m.theme))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", theme)
}

func (m *Model) renderStats() string {
	s := m.view.Stats

	lines := []string{
		fmt.Sprintf("%s %d   %s %s   %s %s",
			m.styles.label.Render("Concerti"), s.TotalConcerts,
			m.styles.label.Render("Spesa"), formatter.FormatCost(s.TotalSpent),
			m.styles.label.Render("Media"), formatter.FormatCost(s.AvgCost)),
		fmt.Sprintf("%s %d   %s %d",
			m.styles.label.Render("Artisti visti"), s.TotalArtists,
			m.styles.label.Render("Artisti unici"), s.UniqueArtists),
	}

	if len(s.TopBands) > 0 {
		top := make([]string, len(s.TopBands))
		for i, b := range s.TopBands {
			top[i] = fmt.Sprintf("%s (%d)", b.Name, b.Count)
		}
		lines = append(lines, fmt.Sprintf("%s %s", m.styles.label.Render("Più visti"), strings.Join(top, ", ")))
	}

	return m.styles.panel.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFilters() string {
	label := func(v string) string {
		switch v {
		case models.All:
			return "tutti"
		case "":
			return "(nessuno)"
		}
		return v
	}

	parts := []string{
		fmt.Sprintf("%s %s", m.styles.label.Render("anno"), label(m.filter.Year)),
		fmt.Sprintf("%s %s", m.styles.label.Render("città"), label(m.filter.City)),
		fmt.Sprintf("%s %s", m.styles.label.Render("evento"), label(m.filter.Event)),
		fmt.Sprintf("%s %s", m.styles.label.Render("artista"), label(m.filter.Artist)),
		fmt.Sprintf("%s %s", m.styles.label.Render("ordine"), m.filter.Sort.Label()),
	}
	line := strings.Join(parts, "  ")

	if m.mode == SearchMode || m.filter.Search != "" {
		line += "\n" + m.search.View()
	}
	return line
}

func (m *Model) renderDetail() string {
	c, ok := m.selected()
	if !ok {
		return m.styles.help.Render("Nessun concerto")
	}

	detail := fmt.Sprintf("%s, %s", dates.Describe(c.Date), c.City)
	if c.Event != "" {
		detail += fmt.Sprintf(" (%s)", c.Event)
	}
	return m.styles.warn.Render(detail)
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return m.styles.err.Render(fmt.Sprintf("Errore: %v", m.err))
	}
	if m.status != "" {
		return m.styles.ok.Render("✓ " + m.status)
	}
	return ""
}

func (m *Model) renderConfirm() string {
	c := m.pending
	question := m.styles.warn.Render(fmt.Sprintf("Eliminare %s del %s a %s?", c.Band, c.Date, c.City))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})
	return fmt.Sprintf("%s\n\n%s", question, helpView)
}

func (m *Model) renderHelp() string {
	return m.help.View(m.keys)
}
