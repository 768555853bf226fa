package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifeplanner/internal/kv"
	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/tui/messages"
)

func newDashboard(t *testing.T) (DashboardModel, service.PlannerService) {
	t.Helper()
	svc := service.NewPlannerService(kv.NewMemoryStore())
	now := func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local) }
	m := NewDashboardModel(svc, "en", now)
	m.SetSize(100, 40)
	return m, svc
}

func TestSummaryCounts(t *testing.T) {
	m, svc := newDashboard(t)
	svc.AddTask(data.TargetSchedule, "Gym", "08:00")
	svc.AddTask(data.TargetSchedule, "Report", "10:00")
	done, _ := svc.AddTask(data.TargetImportant, "Taxes", "")
	svc.ToggleTask(data.TargetImportant, done.ID)
	svc.AddTask(data.TargetImportant, "Rent", "")
	svc.AddDatedTask(data.TargetSecondary, "Dentist", "", "2026-03-02")
	svc.AddMeal(data.Lunch, "soup")
	m.Refresh()

	tests := []struct {
		view messages.ViewType
		want string
	}{
		{messages.ViewSchedule, "2 entries"},
		{messages.ViewNutrition, "1 meals"},
		{messages.ViewImportant, "1 open"},
		{messages.ViewSecondary, "1 open"},
		{messages.ViewMonth, "1 today"},
		{messages.ViewNotes, "0 notes"},
		{messages.ViewSoftware, "0 lines"},
	}
	for _, tt := range tests {
		if got := m.summary(tt.view); got != tt.want {
			t.Errorf("%v: want %q, got %q", tt.view, tt.want, got)
		}
	}
}

func TestNavigationAndOpen(t *testing.T) {
	m, _ := newDashboard(t)

	if m.Selected() != messages.ViewSoftware {
		t.Fatalf("expected first card to be software, got %v", m.Selected())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.Selected() != messages.ViewNutrition {
		t.Fatalf("expected j to move one row down, got %v", m.Selected())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	if m.Selected() != messages.ViewSchedule {
		t.Fatalf("expected h to move left, got %v", m.Selected())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(messages.SwitchViewMsg)
	if !ok || msg.View != messages.ViewSchedule {
		t.Errorf("expected switch to schedule, got %#v", msg)
	}
}

func TestViewShowsTitles(t *testing.T) {
	m, _ := newDashboard(t)
	out := m.View()
	for _, want := range []string{"My Day", "Daily schedule", "Thoughts & Notes"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in dashboard", want)
		}
	}
}
