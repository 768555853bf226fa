package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/config"
	"lifeplanner/internal/logs"
	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/suggest"
	agendaview "lifeplanner/internal/tui/agenda"
	"lifeplanner/internal/tui/assistant"
	"lifeplanner/internal/tui/dashboard"
	"lifeplanner/internal/tui/meals"
	"lifeplanner/internal/tui/messages"
	notesview "lifeplanner/internal/tui/notes"
	"lifeplanner/internal/tui/shared"
	"lifeplanner/internal/tui/software"
	"lifeplanner/internal/tui/tasks"
	"lifeplanner/internal/tui/theme"
)

var bannerDuration = 8 * time.Second

type clearBannerMsg struct {
	seq int
}

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	svc         service.PlannerService
	currentView messages.ViewType

	dashboardView dashboard.DashboardModel
	softwareView  software.SoftwareModel
	scheduleView  tasks.TaskListModel
	mealsView     meals.MealsModel
	importantView tasks.TaskListModel
	secondaryView tasks.TaskListModel
	monthView     agendaview.MonthModel
	notesView     notesview.NotesModel

	assistant     assistant.Model
	assistantOpen bool

	showHelp  bool
	status    string
	statusErr bool
	banner    string
	bannerSeq int

	width  int
	height int
	ready  bool
}

// NewAppModel creates the root application model. ctx bounds suggestion
// requests made from the assistant panel.
func NewAppModel(ctx context.Context, cfg *config.Config, svc service.PlannerService, gw suggest.Gateway, now func() time.Time) AppModel {
	if now == nil {
		now = time.Now
	}
	locale := cfg.Locale

	view, ok := messages.ParseView(cfg.DefaultView)
	if !ok {
		logs.Logger.Printf("Unknown default view %q, using dashboard", cfg.DefaultView)
	}

	return AppModel{
		cfg:           cfg,
		svc:           svc,
		currentView:   view,
		dashboardView: dashboard.NewDashboardModel(svc, locale, now),
		softwareView:  software.NewSoftwareModel(svc, locale),
		scheduleView:  tasks.NewTaskListModel(svc, data.TargetSchedule, messages.ViewSchedule, locale),
		mealsView:     meals.NewMealsModel(svc, locale),
		importantView: tasks.NewTaskListModel(svc, data.TargetImportant, messages.ViewImportant, locale),
		secondaryView: tasks.NewTaskListModel(svc, data.TargetSecondary, messages.ViewSecondary, locale),
		monthView:     agendaview.NewMonthModel(svc, locale, now),
		notesView:     notesview.NewNotesModel(svc, locale),
		assistant:     assistant.New(ctx, gw, locale),
	}
}

// CurrentView returns the view on screen.
func (m AppModel) CurrentView() messages.ViewType {
	return m.currentView
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // status bar
		m.dashboardView.SetSize(msg.Width, contentHeight)
		m.softwareView.SetSize(msg.Width, contentHeight)
		m.scheduleView.SetSize(msg.Width, contentHeight)
		m.mealsView.SetSize(msg.Width, contentHeight)
		m.importantView.SetSize(msg.Width, contentHeight)
		m.secondaryView.SetSize(msg.Width, contentHeight)
		m.monthView.SetSize(msg.Width, contentHeight)
		m.notesView.SetSize(msg.Width, contentHeight)
		m.assistant.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.SwitchViewMsg:
		m.switchTo(msg.View)
		return m, nil

	case messages.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.Error
		return m, nil

	case messages.ReminderMsg:
		m.bannerSeq++
		m.banner = msg.Title + ": " + msg.Body
		seq := m.bannerSeq
		return m, tea.Tick(bannerDuration, func(time.Time) tea.Msg { return clearBannerMsg{seq: seq} })

	case clearBannerMsg:
		if msg.seq == m.bannerSeq {
			m.banner = ""
		}
		return m, nil

	case assistant.ClosedMsg:
		m.assistantOpen = false
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.assistantOpen {
			var cmd tea.Cmd
			m.assistant, cmd = m.assistant.Update(msg)
			return m, cmd
		}
		if !m.inModalState() {
			if model, cmd, handled := m.handleGlobalKey(msg); handled {
				return model, cmd
			}
		}
	}

	// Assistant responses and spinner ticks arrive even after the panel closes.
	switch msg.(type) {
	case assistant.ResponseMsg:
		var cmd tea.Cmd
		m.assistant, cmd = m.assistant.Update(msg)
		return m, cmd
	}
	if m.assistantOpen {
		var cmd tea.Cmd
		m.assistant, cmd = m.assistant.Update(msg)
		return m, cmd
	}

	return m.updateCurrent(msg)
}

func (m AppModel) handleGlobalKey(msg tea.KeyMsg) (AppModel, tea.Cmd, bool) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit, true
	case "?":
		m.showHelp = true
		return m, nil, true
	case "0", "1", "2", "3", "4", "5", "6", "7":
		m.switchTo(messages.Views[int(key[0]-'0')])
		return m, nil, true
	case "A":
		var kind assistant.Kind
		switch m.currentView {
		case messages.ViewSchedule:
			kind = assistant.KindSchedule
		case messages.ViewNutrition:
			kind = assistant.KindMeals
		default:
			return m, nil, false
		}
		m.assistantOpen = true
		cmd := m.assistant.Open(kind)
		return m, cmd, true
	}
	return m, nil, false
}

func (m *AppModel) switchTo(v messages.ViewType) {
	m.currentView = v
	m.status = ""
	switch v {
	case messages.ViewDashboard:
		m.dashboardView.Refresh()
	case messages.ViewSoftware:
		m.softwareView.Refresh()
	case messages.ViewSchedule:
		m.scheduleView.Refresh()
	case messages.ViewNutrition:
		m.mealsView.Refresh()
	case messages.ViewImportant:
		m.importantView.Refresh()
	case messages.ViewSecondary:
		m.secondaryView.Refresh()
	case messages.ViewMonth:
		m.monthView.Refresh()
	case messages.ViewNotes:
		m.notesView.Refresh()
	}
}

func (m AppModel) inModalState() bool {
	switch m.currentView {
	case messages.ViewSoftware:
		return m.softwareView.IsInModalState()
	case messages.ViewSchedule:
		return m.scheduleView.IsInModalState()
	case messages.ViewNutrition:
		return m.mealsView.IsInModalState()
	case messages.ViewImportant:
		return m.importantView.IsInModalState()
	case messages.ViewSecondary:
		return m.secondaryView.IsInModalState()
	case messages.ViewMonth:
		return m.monthView.IsInModalState()
	case messages.ViewNotes:
		return m.notesView.IsInModalState()
	}
	return false
}

func (m AppModel) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case messages.ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case messages.ViewSoftware:
		m.softwareView, cmd = m.softwareView.Update(msg)
	case messages.ViewSchedule:
		m.scheduleView, cmd = m.scheduleView.Update(msg)
	case messages.ViewNutrition:
		m.mealsView, cmd = m.mealsView.Update(msg)
	case messages.ViewImportant:
		m.importantView, cmd = m.importantView.Update(msg)
	case messages.ViewSecondary:
		m.secondaryView, cmd = m.secondaryView.Update(msg)
	case messages.ViewMonth:
		m.monthView, cmd = m.monthView.Update(msg)
	case messages.ViewNotes:
		m.notesView, cmd = m.notesView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content string
	if m.assistantOpen {
		content = m.assistant.View()
	} else {
		switch m.currentView {
		case messages.ViewDashboard:
			content = m.dashboardView.View()
		case messages.ViewSoftware:
			content = m.softwareView.View()
		case messages.ViewSchedule:
			content = m.scheduleView.View()
		case messages.ViewNutrition:
			content = m.mealsView.View()
		case messages.ViewImportant:
			content = m.importantView.View()
		case messages.ViewSecondary:
			content = m.secondaryView.View()
		case messages.ViewMonth:
			content = m.monthView.View()
		case messages.ViewNotes:
			content = m.notesView.View()
		}
	}

	var statusText string
	switch {
	case m.banner != "":
		statusText = theme.Banner.Render(m.banner)
	case m.status != "" && m.statusErr:
		statusText = theme.Error.Render(m.status)
	case m.status != "":
		statusText = theme.Ok.Render(m.status)
	default:
		statusText = theme.HelpHint.Render("0:home 1-7:sections | ?:help | q:quit")
	}
	statusBar := theme.StatusBar.Width(m.width).Render(statusText)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	nav := []shared.HelpBind{{Key: "0", Desc: messages.ViewDashboard.Title(m.cfg.Locale)}}
	for i, v := range messages.Views[1:] {
		nav = append(nav, shared.HelpBind{Key: string(rune('1' + i)), Desc: v.Title(m.cfg.Locale)})
	}
	nav = append(nav,
		shared.HelpBind{Key: "?", Desc: "Show this help"},
		shared.HelpBind{Key: "q", Desc: "Quit"},
		shared.HelpBind{Key: "ctrl+c", Desc: "Force quit"},
	)

	sections := []shared.HelpSection{
		{Title: "Global Navigation", Binds: nav},
		{Title: "Task Lists", Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Navigate tasks"},
			{Key: "space", Desc: "Toggle done"},
			{Key: "n", Desc: "New task (title, time, date)"},
			{Key: "D", Desc: "Delete task"},
			{Key: "A", Desc: "Assistant (schedule, nutrition)"},
		}},
		{Title: "Month View", Binds: []shared.HelpBind{
			{Key: "h / l", Desc: "Previous / next day"},
			{Key: "j / k", Desc: "Previous / next week"},
			{Key: "H / L", Desc: "Previous / next month"},
			{Key: "enter", Desc: "Enter detail panel"},
		}},
		{Title: "Notes", Binds: []shared.HelpBind{
			{Key: "/", Desc: "Search"},
			{Key: "n", Desc: "Write a note"},
			{Key: "ctrl+s", Desc: "Save note"},
		}},
	}
	return shared.RenderHelpPopup(sections, m.width, m.height)
}
