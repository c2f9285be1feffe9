// Package dashboard implements the interactive DCA order browser: a
// bubbletea program that owns the filter, sort, tab, and pagination state
// and recomputes the query pipeline on every state change.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solflow/dcadash/internal/dashboard/components"
	"github.com/solflow/dcadash/internal/model"
	"github.com/solflow/dcadash/internal/query"
)

// focusTarget identifies which widget receives keystrokes.
type focusTarget int

const (
	focusTable focusTarget = iota
	focusSearch
	focusUser
)

// Model holds the dashboard state. The raw order set is owned by the latest
// fetch and replaced wholesale; everything below it is derived.
type Model struct {
	config        Config
	keymap        KeyMap
	lastErr       error
	orders        []model.Order // last-known-good fetched set
	visible       []model.Order // partitioned, filtered, sorted
	inputMints    []string
	outputMints   []string
	series        query.BucketSeries
	criteria      query.Criteria // committed; pending edits live in the inputs
	sortCfg       query.SortConfig
	window        query.Window
	searchInput   textinput.Model
	userInput     textinput.Model
	orderTable    components.OrderTableModel
	chart         components.VolumeChartModel
	pager         paginator.Model
	help          help.Model
	inputMintIdx  int // index into inputMints, -1 means any
	outputMintIdx int
	selectedCol   int
	fetchSeq      int // latest issued fetch
	debounceSeq   int // latest armed quiet period
	width         int
	height        int
	focus         focusTarget
	showHelp      bool
	ready         bool
	quitting      bool
}

// newModel creates a dashboard model from the given configuration.
func newModel(cfg Config) Model {
	cfg = cfg.withDefaults()

	searchInput := textinput.New()
	searchInput.Placeholder = "search user or mint..."
	searchInput.CharLimit = 50

	userInput := textinput.New()
	userInput.Placeholder = "user contains..."
	userInput.CharLimit = 50

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = cfg.PageSize

	chart := components.NewVolumeChart(cfg.Theme, cfg.ChartMint+" volume, last 24h")

	return Model{
		config:        cfg,
		keymap:        DefaultKeyMap(),
		searchInput:   searchInput,
		userInput:     userInput,
		orderTable:    components.NewOrderTable(cfg.Theme),
		chart:         chart,
		pager:         pager,
		help:          help.New(),
		inputMintIdx:  -1,
		outputMintIdx: -1,
		window:        query.WindowAll,
	}
}

// Init issues the initial fetch and starts the periodic refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.fetchOrders(m.fetchSeq),
		armRefresh(m.config.RefreshEvery),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case ordersLoadedMsg:
		return m.handleOrdersLoaded(msg), nil

	case debounceFiredMsg:
		if msg.seq == m.debounceSeq {
			m.commitCriteria()
		}
		return m, nil

	case refreshTickMsg:
		m.recomputeSeries()
		return m, armRefresh(m.config.RefreshEvery)
	}

	return m, nil
}

// handleOrdersLoaded applies a fetch completion. Results for superseded
// fetches are dropped; a failed fetch keeps the last-known-good order set
// and surfaces a non-fatal notice.
func (m Model) handleOrdersLoaded(msg ordersLoadedMsg) Model {
	if msg.seq != m.fetchSeq {
		return m
	}

	m.ready = true
	if msg.err != nil {
		m.lastErr = msg.err
		return m
	}

	m.lastErr = nil
	m.orders = msg.orders
	m.inputMints, m.outputMints = query.DistinctMints(m.orders)
	m.clampMintSelections()
	m.recompute()
	m.recomputeSeries()
	return m
}

// handleKey routes keystrokes to the focused widget.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.focus != focusTable {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keymap.Up):
		m.orderTable.MoveCursor(-1)

	case key.Matches(msg, m.keymap.Down):
		m.orderTable.MoveCursor(1)

	case key.Matches(msg, m.keymap.Left):
		m.selectedCol = (m.selectedCol + components.ColumnCount - 1) % components.ColumnCount
		m.orderTable.SetSelectedColumn(m.selectedCol)

	case key.Matches(msg, m.keymap.Right):
		m.selectedCol = (m.selectedCol + 1) % components.ColumnCount
		m.orderTable.SetSelectedColumn(m.selectedCol)

	case key.Matches(msg, m.keymap.Sort):
		m.applySort(components.ColumnField(m.selectedCol))

	case key.Matches(msg, m.keymap.NextPage):
		m.pager.NextPage()
		m.syncPage()

	case key.Matches(msg, m.keymap.PrevPage):
		m.pager.PrevPage()
		m.syncPage()

	case key.Matches(msg, m.keymap.CycleTab):
		m.setWindow((m.window + 1) % 3)

	case key.Matches(msg, m.keymap.TabAll):
		m.setWindow(query.WindowAll)

	case key.Matches(msg, m.keymap.TabHour):
		m.setWindow(query.WindowNextHour)

	case key.Matches(msg, m.keymap.TabDay):
		m.setWindow(query.WindowNextDay)

	case key.Matches(msg, m.keymap.Search):
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.UserFilter):
		m.focus = focusUser
		m.userInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.CycleInputMint):
		m.inputMintIdx = cycleIndex(m.inputMintIdx, len(m.inputMints))
		m.commitCriteria()

	case key.Matches(msg, m.keymap.CycleOutputMint):
		m.outputMintIdx = cycleIndex(m.outputMintIdx, len(m.outputMints))
		m.commitCriteria()

	case key.Matches(msg, m.keymap.ClearFilters):
		m.searchInput.SetValue("")
		m.userInput.SetValue("")
		m.inputMintIdx = -1
		m.outputMintIdx = -1
		m.commitCriteria()

	case key.Matches(msg, m.keymap.Refresh):
		m.fetchSeq++
		return m, m.fetchOrders(m.fetchSeq)
	}

	return m, nil
}

// handleInputKey feeds keystrokes to the focused filter input. Every edit
// re-arms the quiet period; only the newest timer commits.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.blurInputs()
		m.commitCriteria()
		return m, nil
	case "esc":
		m.blurInputs()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case focusUser:
		m.userInput, cmd = m.userInput.Update(msg)
	}

	m.debounceSeq++
	return m, tea.Batch(cmd, armDebounce(m.debounceSeq, m.config.Debounce))
}

func (m *Model) blurInputs() {
	m.focus = focusTable
	m.searchInput.Blur()
	m.userInput.Blur()
}

// commitCriteria replaces the committed criteria with the pending edits and
// re-runs the pipeline against the cached order set.
func (m *Model) commitCriteria() {
	m.criteria = query.Criteria{
		Search:     m.searchInput.Value(),
		User:       m.userInput.Value(),
		InputMint:  mintAt(m.inputMints, m.inputMintIdx),
		OutputMint: mintAt(m.outputMints, m.outputMintIdx),
	}
	m.recompute()
}

// setWindow switches tabs and re-partitions the cached set; no re-fetch.
func (m *Model) setWindow(w query.Window) {
	if m.window == w {
		return
	}
	m.window = w
	m.recompute()
}

// applySort updates the sort configuration per the toggle rule: a new field
// starts ascending, sorting an ascending field flips to descending, and a
// descending field returns to natural fetch order.
func (m *Model) applySort(field query.Field) {
	if field == "" {
		return
	}

	switch {
	case m.sortCfg.Field != field || m.sortCfg.Direction == query.DirectionNone:
		m.sortCfg = query.SortConfig{Field: field, Direction: query.DirectionAsc}
	case m.sortCfg.Direction == query.DirectionAsc:
		m.sortCfg.Direction = query.DirectionDesc
	default:
		m.sortCfg = query.SortConfig{}
	}

	m.orderTable.SetSort(m.sortCfg)
	m.recompute()
}

// recompute re-runs partition, filter, and sort over the cached order set
// and resets pagination to fit the result.
func (m *Model) recompute() {
	rows := query.Partition(m.orders, m.config.Now(), m.window)
	rows = query.Filter(rows, m.criteria)
	rows = query.Sort(rows, m.sortCfg)
	m.visible = rows

	m.pager.SetTotalPages(max(1, len(rows)))
	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}
	m.syncPage()
}

// recomputeSeries rebuilds the chart series over the full cached set.
func (m *Model) recomputeSeries() {
	now := m.config.Now()
	width := m.config.ChartSpan / time.Duration(m.config.ChartBuckets)
	mint := m.config.ChartMint
	m.series = query.Aggregate(m.orders, now.Add(-m.config.ChartSpan), width, m.config.ChartBuckets, func(o model.Order) bool {
		return o.InputMint == mint
	})
	m.chart.SetSeries(m.series)
}

// syncPage pushes the current page of rows into the table.
func (m *Model) syncPage() {
	start, end := m.pager.GetSliceBounds(len(m.visible))
	m.orderTable.SetPage(m.visible[start:end])
}

func (m *Model) clampMintSelections() {
	if m.inputMintIdx >= len(m.inputMints) {
		m.inputMintIdx = -1
	}
	if m.outputMintIdx >= len(m.outputMints) {
		m.outputMintIdx = -1
	}
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.help.Width = m.width
	if m.width > 110 {
		chartWidth := m.width / 3
		m.orderTable.Resize(m.width-chartWidth-6, m.height-10)
		m.chart.Resize(chartWidth, m.height-10)
	} else {
		m.orderTable.Resize(m.width-2, m.height-16)
		m.chart.Resize(m.width-2, 10)
	}
}

// cycleIndex advances a selector index through -1 (any) and 0..n-1.
func cycleIndex(idx, n int) int {
	if n == 0 {
		return -1
	}
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

// mintAt resolves a selector index to a mint, with -1 meaning no constraint.
func mintAt(mints []string, idx int) string {
	if idx < 0 || idx >= len(mints) {
		return ""
	}
	return mints[idx]
}
