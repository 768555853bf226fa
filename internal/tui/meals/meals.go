package meals

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/tui/messages"
	"lifeplanner/internal/tui/shared"
	"lifeplanner/internal/tui/theme"
)

// MealsModel is the nutrition view: meals grouped under the four meal types.
type MealsModel struct {
	svc    service.PlannerService
	locale string

	rows   []data.Meal // flattened in MealTypes order, for the cursor
	cursor int

	newType       data.MealType
	input         *shared.TextInputModel
	confirm       *shared.ConfirmationModal
	pendingDelete string

	width  int
	height int
}

func NewMealsModel(svc service.PlannerService, locale string) MealsModel {
	m := MealsModel{svc: svc, locale: locale, newType: data.Breakfast}
	m.Refresh()
	return m
}

func (m *MealsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.input != nil {
		m.input.SetWidth(min(width, 60))
	}
}

// Refresh regroups meals from the planner.
func (m *MealsModel) Refresh() {
	var rows []data.Meal
	for _, mt := range data.MealTypes {
		rows = append(rows, m.svc.MealsByType(mt)...)
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
}

func (m MealsModel) IsInModalState() bool {
	return m.input != nil || m.confirm != nil
}

func (m MealsModel) Update(msg tea.Msg) (MealsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.TextInputResultMsg:
		m.input = nil
		if msg.Cancelled {
			return m, nil
		}
		meal, ok := m.svc.AddMeal(m.newType, msg.Value)
		m.Refresh()
		if !ok {
			return m, nil
		}
		return m, messages.Status(fmt.Sprintf("Added %s: %s", meal.Type.Label(m.locale), meal.Description))

	case shared.ConfirmationResultMsg:
		id := m.pendingDelete
		m.confirm = nil
		m.pendingDelete = ""
		if msg.Confirmed && id != "" {
			m.svc.DeleteMeal(id)
			m.Refresh()
		}
		return m, nil
	}

	if m.confirm != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			return m, m.confirm.Update(key)
		}
		return m, nil
	}
	if m.input != nil {
		// tab cycles the meal type while typing the description
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
			m.newType = m.newType.Next()
			m.input.Prompt = m.newType.Label(m.locale)
			return m, nil
		}
		return m, m.input.Update(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "t":
		m.newType = m.newType.Next()
	case "n", "a":
		m.input = shared.NewTextInput(m.newType.Label(m.locale), "What did you eat?", shared.ValidateRequired)
		m.input.SetWidth(min(m.width, 60))
	case "D", "delete":
		if m.cursor < len(m.rows) {
			meal := m.rows[m.cursor]
			m.pendingDelete = meal.ID
			m.confirm = shared.NewConfirmationModal("Delete meal?", meal.Description, 50)
		}
	case "esc", "backspace":
		return m, messages.SwitchView(messages.ViewDashboard)
	}
	return m, nil
}

func (m MealsModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var b strings.Builder
	b.WriteString(shared.Header(
		theme.Title.Render(" "+messages.ViewNutrition.Title(m.locale)),
		theme.Muted.Render("new: ")+theme.Meal(m.newType).Render(m.newType.Label(m.locale)),
		m.width,
	))
	b.WriteString("\n\n")

	if m.input != nil {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("  [tab] change meal type"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderGroups())
	}

	hints := shared.Hints(
		shared.HelpBind{Key: "j/k", Desc: "navigate"},
		shared.HelpBind{Key: "n", Desc: "new"},
		shared.HelpBind{Key: "t", Desc: "meal type"},
		shared.HelpBind{Key: "D", Desc: "delete"},
		shared.HelpBind{Key: "A", Desc: "assistant"},
		shared.HelpBind{Key: "esc", Desc: "dashboard"},
	)
	return shared.CenterWithBottomHints(b.String(), lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hints), m.height)
}

func (m MealsModel) renderGroups() string {
	if len(m.rows) == 0 {
		return theme.Empty.Render("  No meals logged. Press n to add one.") + "\n"
	}

	var b strings.Builder
	row := 0
	for _, mt := range data.MealTypes {
		group := data.MealsByType(m.rows, mt)
		b.WriteString(" " + theme.Meal(mt).Render(mt.Label(m.locale)))
		b.WriteString(theme.Muted.Render(fmt.Sprintf(" (%d)", len(group))))
		b.WriteString("\n")
		for _, meal := range group {
			prefix := "    "
			if row == m.cursor {
				prefix = "  " + theme.Cursor.Render("> ")
			}
			line := meal.Description
			if meal.Calories != nil {
				line += theme.Muted.Render(fmt.Sprintf("  %.0f kcal", *meal.Calories))
			}
			b.WriteString(prefix + shared.Truncate(line, m.width-6) + "\n")
			row++
		}
	}
	return b.String()
}
