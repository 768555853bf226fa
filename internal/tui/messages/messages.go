package messages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewDashboard ViewType = iota
	ViewSoftware
	ViewSchedule
	ViewNutrition
	ViewImportant
	ViewSecondary
	ViewMonth
	ViewNotes
)

// Views lists every view in dashboard order.
var Views = []ViewType{
	ViewDashboard, ViewSoftware, ViewSchedule, ViewNutrition,
	ViewImportant, ViewSecondary, ViewMonth, ViewNotes,
}

var viewNames = map[ViewType]string{
	ViewDashboard: "dashboard",
	ViewSoftware:  "software",
	ViewSchedule:  "schedule",
	ViewNutrition: "nutrition",
	ViewImportant: "important",
	ViewSecondary: "secondary",
	ViewMonth:     "month",
	ViewNotes:     "notes",
}

type viewText struct {
	ru, en         string
	ruDesc, enDesc string
}

var viewTexts = map[ViewType]viewText{
	ViewDashboard: {"Мой День", "My Day", "Планируйте, достигайте и запоминайте.", "Plan, achieve and remember."},
	ViewSoftware:  {"ПО", "Software", "Простое текстовое пространство для записей.", "A plain text space for notes."},
	ViewSchedule:  {"Распорядок дня", "Daily schedule", "Таймлайн ваших активностей и встреч.", "A timeline of your activities and meetings."},
	ViewNutrition: {"Питание", "Nutrition", "Завтраки, обеды и ужины.", "Breakfasts, lunches and dinners."},
	ViewImportant: {"Важные задачи", "Important tasks", "Приоритетные дела, которые нельзя отложить.", "Priorities that can't wait."},
	ViewSecondary: {"Второстепенные", "Secondary tasks", "Дела, которые можно выполнить позже.", "Things that can be done later."},
	ViewMonth:     {"Месяц", "Month", "Обзорный календарь и долгосрочные цели.", "Calendar overview and long-term goals."},
	ViewNotes:     {"Мысли и Заметки", "Thoughts & Notes", "Записывайте идеи, инсайты и свободные мысли.", "Capture ideas, insights and loose thoughts."},
}

func (v ViewType) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

func isEnglish(locale string) bool {
	return strings.HasPrefix(strings.ToLower(locale), "en")
}

// Title returns the heading shown for v.
func (v ViewType) Title(locale string) string {
	t := viewTexts[v]
	if isEnglish(locale) {
		return t.en
	}
	return t.ru
}

// Description returns the one-line dashboard blurb for v.
func (v ViewType) Description(locale string) string {
	t := viewTexts[v]
	if isEnglish(locale) {
		return t.enDesc
	}
	return t.ruDesc
}

// ParseView accepts a view name such as "nutrition". Unknown names return
// false.
func ParseView(s string) (ViewType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range viewNames {
		if name == s {
			return v, true
		}
	}
	return ViewDashboard, false
}

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// ReminderMsg delivers a due-task notification to the running TUI.
type ReminderMsg struct {
	Title string
	Body  string
}

// StatusMsg shows a transient line in the status bar.
type StatusMsg struct {
	Text  string
	Error bool
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

func Status(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

func StatusError(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, Error: true}
	}
}
