package tui

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plucky/plucky/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailPaneBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	emptyTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Background(lipgloss.Color("235")).
			Padding(1, 4)

	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Sort column constants
const (
	SortDefault  = ""
	SortCategory = "category"
	SortPath     = "path"
	SortLine     = "line"
)

// Group mode constants
const (
	GroupNone       = "none"
	GroupByFile     = "file"
	GroupByCategory = "category"
)

// firstLine reduces a multi-line match (a PEM block, say) to its first
// line for single-row table display.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// Model is the state of the interactive match browser.
type Model struct {
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model

	matches         []types.Match
	filteredMatches []types.Match // nil when no filter is active
	filteredIndices []int

	quitting     bool
	ready        bool
	scanning     bool
	lastScanTime time.Time
	height       int
	width        int

	statusMessage string
	statusTimeout *time.Time
	rescanFunc    func() ([]types.Match, error)
	showEmpty     bool
	showHelp      bool

	searchMode  bool
	searchInput textinput.Model
	searchQuery string

	sortColumn  string
	sortReverse bool

	showExportMenu bool

	contextLines int

	groupMode      string
	expandedGroups map[string]bool
	groupedMatches []groupedItem
	pendingKey     string

	theme string // chroma style name
}

// groupedItem is either a group header or a match row in grouped view.
type groupedItem struct {
	isGroup bool
	key     string
	count   int
	match   *types.Match
}

// NewModel initializes the browser with scan results.
func NewModel(matches []types.Match, rescanFunc func() ([]types.Match, error)) Model {
	columns := []table.Column{
		{Title: "Category", Width: 22},
		{Title: "Path", Width: 30},
		{Title: "Line", Width: 6},
		{Title: "Text", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(matchRows(matches)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().
		Padding(0, 1)
	t.SetStyles(s)

	// Line spinner avoids Braille characters that render poorly on some terminals
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	ti := textinput.New()
	ti.Placeholder = "Search path, category, or text..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	prefs := LoadPrefs()

	m := Model{
		table:          t,
		spinner:        sp,
		matches:        matches,
		rescanFunc:     rescanFunc,
		showEmpty:      len(matches) == 0,
		lastScanTime:   time.Now(),
		searchInput:    ti,
		contextLines:   prefs.ContextLines,
		groupMode:      GroupNone,
		expandedGroups: make(map[string]bool),
		theme:          prefs.Theme,
	}

	if m.showEmpty {
		m.statusMessage = "q: quit | r: rescan"
	} else {
		m.statusMessage = "q: quit | ?: help | j/k: navigate | o: open | r: rescan | y: copy"
	}

	return m
}

func matchRows(matches []types.Match) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, mt := range matches {
		rows[i] = table.Row{
			mt.Category,
			mt.Path,
			fmt.Sprintf("%d", mt.Line),
			firstLine(mt.Text),
		}
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

type matchesMsg []types.Match

type statusMsg string

func (m *Model) rescan() tea.Cmd {
	return func() tea.Msg {
		if m.rescanFunc == nil {
			return statusMsg("Rescan not available")
		}
		fresh, err := m.rescanFunc()
		if err != nil {
			return statusMsg(fmt.Sprintf("Scan error: %v", err))
		}
		return matchesMsg(fresh)
	}
}

func (m *Model) applyFilters() {
	if m.searchQuery == "" {
		m.filteredMatches = nil
		m.filteredIndices = nil
		m.rebuildTableRows()
		return
	}

	var filtered []types.Match
	var indices []int
	query := strings.ToLower(m.searchQuery)

	for i, mt := range m.matches {
		pathHit := strings.Contains(strings.ToLower(mt.Path), query)
		catHit := strings.Contains(strings.ToLower(mt.Category), query)
		textHit := strings.Contains(strings.ToLower(mt.Text), query)
		if !pathHit && !catHit && !textHit {
			continue
		}
		filtered = append(filtered, mt)
		indices = append(indices, i)
	}

	m.filteredMatches = filtered
	m.filteredIndices = indices
	m.rebuildTableRows()
}

func (m *Model) clearFilters() {
	m.searchQuery = ""
	m.filteredMatches = nil
	m.filteredIndices = nil
	m.rebuildTableRows()
}

func (m *Model) rebuildTableRows() {
	if m.groupMode != GroupNone {
		m.buildGroupedMatches()
		rows := make([]table.Row, len(m.groupedMatches))
		for i, item := range m.groupedMatches {
			if item.isGroup {
				expandIcon := "+"
				if m.expandedGroups[item.key] {
					expandIcon = "-"
				}
				label := fmt.Sprintf("%s [%d]", item.key, item.count)
				rows[i] = table.Row{expandIcon, label, "", ""}
			} else {
				mt := item.match
				var col1, col3 string
				if m.groupMode == GroupByFile {
					col1 = "  " + mt.Category
					col3 = firstLine(mt.Text)
				} else {
					col1 = "  " + mt.Path
					col3 = firstLine(mt.Text)
				}
				rows[i] = table.Row{col1, "", fmt.Sprintf("%d", mt.Line), col3}
			}
		}
		m.table.SetRows(rows)
		if m.table.Cursor() >= len(m.groupedMatches) {
			m.table.SetCursor(0)
		}
		m.showEmpty = len(m.groupedMatches) == 0
		m.updateViewportContent()
		return
	}

	display := m.getDisplayMatches()
	m.table.SetRows(matchRows(display))
	if m.table.Cursor() >= len(display) {
		m.table.SetCursor(0)
	}
	m.showEmpty = len(display) == 0
	m.updateViewportContent()
}

func (m *Model) getDisplayMatches() []types.Match {
	if m.filteredMatches != nil {
		return m.filteredMatches
	}
	return m.matches
}

func (m *Model) cycleSortColumn() {
	switch m.sortColumn {
	case SortDefault:
		m.sortColumn = SortCategory
	case SortCategory:
		m.sortColumn = SortPath
	case SortPath:
		m.sortColumn = SortLine
	case SortLine:
		m.sortColumn = SortDefault
	}
	m.sortReverse = false
	m.sortMatches()
}

func (m *Model) toggleSortReverse() {
	m.sortReverse = !m.sortReverse
	m.sortMatches()
}

func (m *Model) sortMatches() {
	if m.sortColumn == SortDefault {
		m.rebuildTableRows()
		return
	}

	sort.SliceStable(m.matches, func(i, j int) bool {
		var less bool
		switch m.sortColumn {
		case SortCategory:
			less = m.matches[i].Category < m.matches[j].Category
		case SortPath:
			less = m.matches[i].Path < m.matches[j].Path
		case SortLine:
			less = m.matches[i].Line < m.matches[j].Line
		default:
			return false
		}
		if m.sortReverse {
			return !less
		}
		return less
	})

	m.applyFilters()
}

func (m *Model) getSortIndicator() string {
	if m.sortColumn == SortDefault {
		return ""
	}
	arrow := "^"
	if m.sortReverse {
		arrow = "v"
	}
	return fmt.Sprintf(" [%s %s]", m.sortColumn, arrow)
}

func (m *Model) setGroupMode(mode string) {
	if m.groupMode == mode {
		m.groupMode = GroupNone
		m.groupedMatches = nil
		m.expandedGroups = make(map[string]bool)
	} else {
		m.groupMode = mode
		m.expandedGroups = make(map[string]bool)
		m.buildGroupedMatches()
		for _, item := range m.groupedMatches {
			if item.isGroup {
				m.expandedGroups[item.key] = true
			}
		}
	}
	m.rebuildTableRows()
}

func (m *Model) buildGroupedMatches() {
	if m.groupMode == GroupNone {
		m.groupedMatches = nil
		return
	}

	display := m.getDisplayMatches()

	groups := make(map[string][]types.Match)
	var order []string
	for _, mt := range display {
		var key string
		switch m.groupMode {
		case GroupByFile:
			key = mt.Path
		case GroupByCategory:
			key = mt.Category
		default:
			continue
		}
		if _, exists := groups[key]; !exists {
			order = append(order, key)
		}
		groups[key] = append(groups[key], mt)
	}

	m.groupedMatches = nil
	for _, key := range order {
		members := groups[key]
		m.groupedMatches = append(m.groupedMatches, groupedItem{
			isGroup: true,
			key:     key,
			count:   len(members),
		})
		if m.expandedGroups[key] {
			for i := range members {
				m.groupedMatches = append(m.groupedMatches, groupedItem{
					key:   key,
					match: &members[i],
				})
			}
		}
	}
}

func (m *Model) toggleGroupExpansion() {
	if m.groupMode == GroupNone || len(m.groupedMatches) == 0 {
		return
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.groupedMatches) {
		return
	}
	key := m.groupedMatches[idx].key
	m.expandedGroups[key] = !m.expandedGroups[key]
	m.buildGroupedMatches()
	m.rebuildTableRows()
}

func (m *Model) expandContext() {
	if m.contextLines < 20 {
		m.contextLines += 2
		if m.contextLines > 20 {
			m.contextLines = 20
		}
		m.updateViewportContent()
		m.savePrefs()
	}
}

func (m *Model) contractContext() {
	if m.contextLines > 1 {
		m.contextLines -= 2
		if m.contextLines < 1 {
			m.contextLines = 1
		}
		m.updateViewportContent()
		m.savePrefs()
	}
}

func (m *Model) savePrefs() {
	_ = SavePrefs(Prefs{ContextLines: m.contextLines, Theme: m.theme})
}

func readFileContext(path string, targetLine int, contextLines int) ([]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	startLine := targetLine - contextLines
	if startLine < 1 {
		startLine = 1
	}
	endLine := targetLine + contextLines

	var lines []string
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines, startLine, scanner.Err()
}

func (m *Model) highlightLine(line string, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return line
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(m.theme)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

func (m *Model) getSelectedMatch() *types.Match {
	idx := m.table.Cursor()

	if m.groupMode != GroupNone && len(m.groupedMatches) > 0 {
		if idx >= 0 && idx < len(m.groupedMatches) {
			item := m.groupedMatches[idx]
			if item.isGroup {
				return nil
			}
			return item.match
		}
		return nil
	}

	display := m.getDisplayMatches()
	if idx >= 0 && idx < len(display) {
		return &display[idx]
	}
	return nil
}

func (m *Model) updateViewportContent() {
	if m.groupMode != GroupNone {
		if len(m.groupedMatches) == 0 || !m.ready {
			m.viewport.SetContent("")
			return
		}
		idx := m.table.Cursor()
		if idx >= 0 && idx < len(m.groupedMatches) {
			item := m.groupedMatches[idx]
			if item.isGroup {
				var b strings.Builder
				b.WriteString(fmt.Sprintf("%s\n\n", titleStyle.Render("Group Summary")))
				b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Group:"), item.key))
				b.WriteString(fmt.Sprintf("%s %d\n", keyStyle.Render("Matches:"), item.count))
				if m.expandedGroups[item.key] {
					b.WriteString("\n" + dimStyle.Render("Press Tab to collapse this group") + "\n")
				} else {
					b.WriteString("\n" + dimStyle.Render("Press Tab to expand this group") + "\n")
				}
				m.viewport.SetContent(b.String())
				return
			}
			if item.match == nil {
				m.viewport.SetContent("")
				return
			}
			m.updateViewportContentForMatch(*item.match)
			return
		}
		m.viewport.SetContent("")
		return
	}

	display := m.getDisplayMatches()
	if len(display) == 0 || !m.ready {
		m.viewport.SetContent("")
		return
	}

	idx := m.table.Cursor()
	if idx >= 0 && idx < len(display) {
		m.updateViewportContentForMatch(display[idx])
	}
}

func (m *Model) updateViewportContentForMatch(mt types.Match) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", titleStyle.Render("Match Details")))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Path:"), mt.Path))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Category:"), categoryStyle.Render(mt.Category)))
	b.WriteString(fmt.Sprintf("%s %d\n", keyStyle.Render("Line:"), mt.Line))
	b.WriteString(fmt.Sprintf("%s %d-%d (%d bytes)\n", keyStyle.Render("Offset:"), mt.Start, mt.End, mt.End-mt.Start))

	if strings.ContainsRune(mt.Text, '\n') {
		b.WriteString(fmt.Sprintf("%s\n%s\n", keyStyle.Render("Text:"), matchStyle.Render(mt.Text)))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Text:"), matchStyle.Render(mt.Text)))
	}

	contextHint := fmt.Sprintf(" (+/- to expand/contract, showing %d lines)", m.contextLines*2+1)
	b.WriteString(fmt.Sprintf("\n%s%s\n", keyStyle.Render("Context:"), dimStyle.Render(contextHint)))

	lines, startLine, err := readFileContext(mt.Path, mt.Line, m.contextLines)
	if err != nil || len(lines) == 0 {
		b.WriteString(dimStyle.Render("(file context unavailable)"))
		m.viewport.SetContent(b.String())
		return
	}

	lineNumStyle := dimStyle
	focusLineStyle := lipgloss.NewStyle().Background(lipgloss.Color("236"))
	matchFirst := firstLine(mt.Text)
	matchFirst = strings.TrimSuffix(matchFirst, " ...")

	for i, line := range lines {
		lineNum := startLine + i
		lineNumStr := lineNumStyle.Render(fmt.Sprintf("%4d ", lineNum))
		rendered := m.highlightLine(line, mt.Path)
		if lineNum == mt.Line {
			if matchFirst != "" {
				rendered = strings.ReplaceAll(rendered, matchFirst, matchStyle.Render(matchFirst))
			}
			b.WriteString(lineNumStr + focusLineStyle.Render(rendered) + "\n")
		} else {
			b.WriteString(lineNumStr + rendered + "\n")
		}
	}

	m.viewport.SetContent(b.String())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.showExportMenu {
			switch msg.String() {
			case "1", "j":
				m.showExportMenu = false
				return m, m.exportMatches("json")
			case "2", "c":
				m.showExportMenu = false
				return m, m.exportMatches("csv")
			case "esc", "q", "e":
				m.showExportMenu = false
			}
			return m, nil
		}

		if m.searchMode {
			switch msg.String() {
			case "enter":
				m.searchQuery = m.searchInput.Value()
				m.searchMode = false
				m.searchInput.Blur()
				return m, nil
			case "esc":
				m.searchMode = false
				m.searchInput.Blur()
				m.searchInput.SetValue(m.searchQuery)
				m.applyFilters()
				return m, nil
			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.searchQuery = m.searchInput.Value()
				m.applyFilters()
				return m, cmd
			}
		}

		if m.pendingKey == "g" {
			m.pendingKey = ""
			switch msg.String() {
			case "f":
				m.setGroupMode(GroupByFile)
				m.setStatus(3*time.Second, groupStatus(m.groupMode, "gf"))
				return m, nil
			case "c":
				m.setGroupMode(GroupByCategory)
				m.setStatus(3*time.Second, groupStatus(m.groupMode, "gc"))
				return m, nil
			case "g":
				if !m.showEmpty {
					m.table.GotoTop()
					m.updateViewportContent()
				}
				return m, nil
			default:
				return m, nil
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			if !m.showEmpty || len(m.matches) > 0 {
				m.searchMode = true
				m.searchInput.SetValue(m.searchQuery)
				m.searchInput.Focus()
				return m, textinput.Blink
			}
		case "esc":
			if m.searchQuery != "" {
				m.clearFilters()
				m.setStatus(3*time.Second, "Filter cleared")
				return m, nil
			}
		case "s":
			if len(m.matches) > 0 {
				m.cycleSortColumn()
				if m.sortColumn == SortDefault {
					m.setStatus(3*time.Second, "Sort: scan order")
				} else {
					m.setStatus(3*time.Second, fmt.Sprintf("Sort by %s (S to reverse)", m.sortColumn))
				}
				return m, nil
			}
		case "S":
			if len(m.matches) > 0 && m.sortColumn != SortDefault {
				m.toggleSortReverse()
				direction := "ascending"
				if m.sortReverse {
					direction = "descending"
				}
				m.setStatus(3*time.Second, fmt.Sprintf("Sort by %s (%s)", m.sortColumn, direction))
				return m, nil
			}
		case "o", "enter":
			if !m.showEmpty {
				return m, m.openEditor()
			}
		case "e":
			if len(m.getDisplayMatches()) > 0 {
				m.showExportMenu = true
				return m, nil
			}
		case "+", "=":
			if !m.showEmpty {
				m.expandContext()
				m.setStatus(2*time.Second, fmt.Sprintf("Context: %d lines", m.contextLines*2+1))
				return m, nil
			}
		case "-", "_":
			if !m.showEmpty {
				m.contractContext()
				m.setStatus(2*time.Second, fmt.Sprintf("Context: %d lines", m.contextLines*2+1))
				return m, nil
			}
		case "y":
			if !m.showEmpty {
				return m, m.copyTextToClipboard()
			}
		case "Y":
			if !m.showEmpty {
				return m, m.copyMatchToClipboard()
			}
		case "tab":
			if m.groupMode != GroupNone {
				m.toggleGroupExpansion()
				return m, nil
			}
		case "r":
			if m.rescanFunc == nil {
				m.setStatus(3*time.Second, "Rescan not available")
				return m, nil
			}
			if !m.scanning {
				m.scanning = true
				m.statusMessage = "Rescanning..."
				return m, m.rescan()
			}
		case "?", "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "down", "j", "up", "k":
			if !m.showEmpty {
				m.table, cmd = m.table.Update(msg)
				m.updateViewportContent()
				return m, cmd
			}
		case "ctrl+d":
			if !m.showEmpty {
				half := m.table.Height() / 2
				if half < 1 {
					half = 1
				}
				m.table.MoveDown(half)
				m.updateViewportContent()
				return m, nil
			}
		case "ctrl+u":
			if !m.showEmpty {
				half := m.table.Height() / 2
				if half < 1 {
					half = 1
				}
				m.table.MoveUp(half)
				m.updateViewportContent()
				return m, nil
			}
		case "ctrl+f", "pgdown":
			if !m.showEmpty {
				m.table.MoveDown(m.table.Height())
				m.updateViewportContent()
				return m, nil
			}
		case "ctrl+b", "pgup":
			if !m.showEmpty {
				m.table.MoveUp(m.table.Height())
				m.updateViewportContent()
				return m, nil
			}
		case "g":
			m.pendingKey = "g"
			return m, nil
		case "home":
			if !m.showEmpty {
				m.table.GotoTop()
				m.updateViewportContent()
				return m, nil
			}
		case "G", "end":
			if !m.showEmpty {
				m.table.GotoBottom()
				m.updateViewportContent()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		usableWidth := m.width - 10
		catWidth := 22
		lineWidth := 6
		remaining := usableWidth - catWidth - lineWidth
		pathWidth := int(float64(remaining) * 0.45)
		textWidth := remaining - pathWidth
		if pathWidth < 25 {
			pathWidth = 25
		}
		if textWidth < 25 {
			textWidth = 25
		}

		cols := m.table.Columns()
		cols[0].Width = catWidth
		cols[1].Width = pathWidth
		cols[2].Width = lineWidth
		cols[3].Width = textWidth
		m.table.SetColumns(cols)

		statsHeaderHeight := 1
		availableHeight := m.height - lipgloss.Height(statusStyle.Render("")) - statsHeaderHeight
		tableHeight := int(float64(availableHeight) * 0.45)
		viewportHeight := availableHeight - tableHeight - detailPaneBorderStyle.GetVerticalFrameSize() - 1

		m.table.SetWidth(m.width)
		m.table.SetHeight(tableHeight)

		if m.viewport.Height == 0 {
			m.viewport = viewport.New(m.width, viewportHeight)
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
		statusStyle = statusStyle.Width(m.width)

	case matchesMsg:
		m.matches = msg
		m.showEmpty = len(m.matches) == 0
		m.lastScanTime = time.Now()
		m.filteredMatches = nil
		m.filteredIndices = nil
		m.searchQuery = ""
		m.rebuildTableRows()
		if m.showEmpty {
			m.table.SetCursor(0)
		}

		m.scanning = false
		if m.showEmpty {
			m.setStatus(5*time.Second, "Rescan complete - no matches found")
		} else {
			m.setStatus(5*time.Second, fmt.Sprintf("Rescan complete - %d matches", len(m.matches)))
		}

	case statusMsg:
		m.setStatus(3*time.Second, string(msg))

	case spinner.TickMsg:
		var spinCmd tea.Cmd
		m.spinner, spinCmd = m.spinner.Update(msg)
		if m.statusTimeout != nil && time.Now().After(*m.statusTimeout) {
			m.statusTimeout = nil
			if m.showEmpty {
				m.statusMessage = "q: quit | r: rescan"
			} else {
				m.statusMessage = "q: quit | ?: help | j/k: navigate | o: open | r: rescan | y: copy"
			}
		}
		return m, spinCmd
	}

	if !m.quitting && !m.showEmpty {
		shouldUpdate := true
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			key := keyMsg.String()
			if key == "down" || key == "j" || key == "up" || key == "k" {
				shouldUpdate = false
			}
		}
		if shouldUpdate {
			m.table, cmd = m.table.Update(msg)
		}
	}

	m.updateViewportContent()
	return m, cmd
}

func (m *Model) setStatus(d time.Duration, text string) {
	timeout := time.Now().Add(d)
	m.statusTimeout = &timeout
	m.statusMessage = text
}

func groupStatus(mode, key string) string {
	if mode == GroupNone {
		return "Grouping disabled"
	}
	return fmt.Sprintf("Grouped by %s (Tab to expand/collapse, %s to ungroup)", mode, key)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	if m.scanning {
		msgContent := fmt.Sprintf("%s  Rescanning...\n\nPlease wait", m.spinner.View())
		popupBox := popupStyle.
			Width(55).
			Align(lipgloss.Center).
			Render(msgContent)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popupBox)
	}

	display := m.getDisplayMatches()

	categories := make(map[string]struct{})
	files := make(map[string]struct{})
	for _, mt := range display {
		categories[mt.Category] = struct{}{}
		files[mt.Path] = struct{}{}
	}

	var statsContent string
	if len(m.matches) == 0 {
		statsContent = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("[OK] No matches")
	} else {
		var filterInfo string
		if m.searchQuery != "" {
			filterInfo = fmt.Sprintf("  [FILTER: '%s']", m.searchQuery)
		}
		sortInfo := m.getSortIndicator()

		if m.filteredMatches != nil {
			statsContent = fmt.Sprintf(
				"Showing: %d/%d  |  Categories: %-3d  |  Files: %-3d%s%s",
				len(display), len(m.matches), len(categories), len(files), filterInfo, sortInfo,
			)
		} else {
			statsContent = fmt.Sprintf(
				"Matches: %-4d  |  Categories: %-3d  |  Files: %-3d%s",
				len(m.matches), len(categories), len(files), sortInfo,
			)
		}
	}

	statsHeader := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 2).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("237")).
		Render(statsContent)

	tableRender := tableBorderStyle.
		Width(m.width).
		Height(m.table.Height()).
		Render(m.table.View())

	var detailContent string
	if len(display) == 0 {
		var emptyMsg string
		if len(m.matches) == 0 {
			emptyMsg = "Nothing to review.\n\nPress 'r' to rescan\nPress '?' for help"
		} else {
			emptyMsg = "No matches for filter.\n\nPress 'Esc' to clear filter"
		}
		detailContent = lipgloss.Place(
			m.width,
			m.viewport.Height,
			lipgloss.Center,
			lipgloss.Center,
			emptyTextStyle.Render(emptyMsg),
		)
	} else {
		detailContent = m.viewport.View()
	}

	detailRender := detailPaneBorderStyle.
		Width(m.width).
		Height(m.viewport.Height).
		Render(detailContent)

	var timeInfo string
	if !m.lastScanTime.IsZero() {
		timeInfo = fmt.Sprintf("Scanned: %s ago", formatDuration(time.Since(m.lastScanTime)))
	}

	statusLeft := m.statusMessage
	statusRight := timeInfo
	leftWidth := lipgloss.Width(statusLeft)
	rightWidth := lipgloss.Width(statusRight)
	availWidth := m.width - 4
	spacer := availWidth - leftWidth - rightWidth
	if spacer < 1 {
		spacer = 1
	}

	var statusContent string
	if timeInfo != "" {
		statusContent = statusLeft + strings.Repeat(" ", spacer) + statusRight
	} else {
		statusContent = statusLeft
	}

	statusRender := statusStyle.
		Width(m.width).
		Padding(0, 2).
		Render(statusContent)

	var bottomBar string
	if m.searchMode {
		searchStatus := fmt.Sprintf(" (%d matches)", len(m.getDisplayMatches()))
		searchBarStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("15")).
			Width(m.width).
			Padding(0, 1)
		bottomBar = searchBarStyle.Render(m.searchInput.View() + searchStatus)
	} else {
		bottomBar = statusRender
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		statsHeader,
		tableRender,
		detailRender,
		bottomBar,
	)

	if m.showHelp {
		helpTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		keyColor := lipgloss.Color("10")
		descColor := lipgloss.Color("250")

		formatRow := func(key, desc string) string {
			keyStyled := lipgloss.NewStyle().Foreground(keyColor).Render(key)
			descStyled := lipgloss.NewStyle().Foreground(descColor).Render(desc)
			padding := 12 - len(key)
			if padding < 1 {
				padding = 1
			}
			return "  " + keyStyled + strings.Repeat(" ", padding) + descStyled
		}

		var lines []string
		lines = append(lines, helpTitle.Render("Keyboard Shortcuts"))
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("Navigation"))
		lines = append(lines, formatRow("j / k", "Move down / up"))
		lines = append(lines, formatRow("Ctrl+d/u", "Half-page down / up"))
		lines = append(lines, formatRow("Ctrl+f/b", "Full page down / up"))
		lines = append(lines, formatRow("g / G", "First / last row"))
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("Search & Sort"))
		lines = append(lines, formatRow("/", "Search matches"))
		lines = append(lines, formatRow("s / S", "Sort / reverse sort"))
		lines = append(lines, formatRow("Esc", "Clear filter"))
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("Export & Copy"))
		lines = append(lines, formatRow("e", "Export (JSON/CSV)"))
		lines = append(lines, formatRow("y / Y", "Copy text / full match"))
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("Context"))
		lines = append(lines, formatRow("+ / -", "Expand / contract context"))
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("Actions"))
		lines = append(lines, formatRow("Enter", "Open in $EDITOR"))
		lines = append(lines, formatRow("r", "Rescan"))
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("Grouping"))
		lines = append(lines, formatRow("gf", "Group by file"))
		lines = append(lines, formatRow("gc", "Group by category"))
		lines = append(lines, formatRow("Tab", "Expand/collapse group"))
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("Other"))
		lines = append(lines, formatRow("?", "Toggle help"))
		lines = append(lines, formatRow("q", "Quit"))
		lines = append(lines, "")
		lines = append(lines, dimStyle.Italic(true).Render("Press any key to close"))

		helpContent := lipgloss.JoinVertical(lipgloss.Left, lines...)
		helpBox := popupStyle.Width(44).Padding(1, 3).Render(helpContent)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
	}

	if m.showExportMenu {
		exportTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		keyColor := lipgloss.Color("10")

		var lines []string
		lines = append(lines, exportTitle.Render("Export Matches"))
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("  %s  JSON  (machine readable)",
			lipgloss.NewStyle().Foreground(keyColor).Bold(true).Render("1/j")))
		lines = append(lines, fmt.Sprintf("  %s  CSV   (spreadsheet)",
			lipgloss.NewStyle().Foreground(keyColor).Bold(true).Render("2/c")))
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true).
			Render(fmt.Sprintf("Exporting %d matches", len(m.getDisplayMatches()))))
		lines = append(lines, "")
		lines = append(lines, dimStyle.Italic(true).Render("Esc to cancel"))

		exportContent := lipgloss.JoinVertical(lipgloss.Left, lines...)
		exportBox := popupStyle.
			Width(40).
			Padding(1, 3).
			Render(exportContent)

		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, exportBox)
	}

	return mainView
}
