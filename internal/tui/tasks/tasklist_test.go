package tasks

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lifeplanner/internal/kv"
	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/tui/messages"
	"lifeplanner/internal/tui/shared"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

// send feeds a control key to m and then any input or confirmation result
// its command produces.
func send(m TaskListModel, msg tea.Msg) TaskListModel {
	var cmd tea.Cmd
	m, cmd = m.Update(msg)
	if cmd == nil {
		return m
	}
	switch next := cmd().(type) {
	case shared.TextInputResultMsg, shared.ConfirmationResultMsg:
		m, _ = m.Update(next)
	}
	return m
}

// typeText types s into the open input. Cursor blink commands are dropped.
func typeText(m TaskListModel, s string) TaskListModel {
	m, _ = m.Update(keys(s))
	return m
}

func newList(t *testing.T, target data.Target) (TaskListModel, service.PlannerService) {
	t.Helper()
	svc := service.NewPlannerService(kv.NewMemoryStore())
	m := NewTaskListModel(svc, target, messages.ViewSchedule, "en")
	m.SetSize(80, 24)
	return m, svc
}

func TestTaskList_AddFlow(t *testing.T) {
	m, svc := newList(t, data.TargetSchedule)

	m = send(m, keys("n"))
	if !m.IsInModalState() {
		t.Fatal("expected input to open on n")
	}
	m = typeText(m, "Gym")
	m = send(m, enter)
	m = typeText(m, "07:30")
	m = send(m, enter)
	m = send(m, enter) // no date

	if m.IsInModalState() {
		t.Fatal("expected input to close after the date step")
	}
	doc := svc.Snapshot()
	if len(doc.Schedule) != 1 {
		t.Fatalf("expected 1 scheduled task, got %d", len(doc.Schedule))
	}
	got := doc.Schedule[0]
	if got.Title != "Gym" || got.Time != "07:30" || got.Date != "" {
		t.Errorf("unexpected task %+v", got)
	}
	if len(m.Tasks()) != 1 {
		t.Errorf("expected list to refresh, got %d rows", len(m.Tasks()))
	}
}

func TestTaskList_InvalidTimeKeepsInputOpen(t *testing.T) {
	m, svc := newList(t, data.TargetSchedule)

	m = send(m, keys("n"))
	m = typeText(m, "Gym")
	m = send(m, enter)
	m = typeText(m, "7pm")
	m = send(m, enter)

	if !m.IsInModalState() {
		t.Fatal("expected invalid time to keep the input open")
	}
	if len(svc.Snapshot().Schedule) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestTaskList_CancelAdd(t *testing.T) {
	m, svc := newList(t, data.TargetImportant)

	m = send(m, keys("n"))
	m = typeText(m, "Taxes")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.IsInModalState() {
		t.Error("expected esc to close the input")
	}
	if len(svc.Snapshot().ImportantTasks) != 0 {
		t.Error("expected cancel to add nothing")
	}
}

func TestTaskList_ToggleAndDelete(t *testing.T) {
	m, svc := newList(t, data.TargetSecondary)
	svc.AddTask(data.TargetSecondary, "Laundry", "")
	svc.AddTask(data.TargetSecondary, "Dishes", "")
	m.Refresh()

	m = send(m, keys("j"))
	m = send(m, keys(" "))
	doc := svc.Snapshot()
	if doc.SecondaryTasks[0].Completed || !doc.SecondaryTasks[1].Completed {
		t.Fatalf("expected only the second task toggled, got %+v", doc.SecondaryTasks)
	}

	// Declining the confirmation keeps the task.
	m = send(m, keys("D"))
	m = send(m, keys("n"))
	if len(svc.Snapshot().SecondaryTasks) != 2 {
		t.Fatal("expected declined delete to keep the task")
	}

	m = send(m, keys("D"))
	m = send(m, keys("y"))
	doc = svc.Snapshot()
	if len(doc.SecondaryTasks) != 1 || doc.SecondaryTasks[0].Title != "Laundry" {
		t.Errorf("expected Dishes deleted, got %+v", doc.SecondaryTasks)
	}
	if m.IsInModalState() {
		t.Error("expected confirmation to close")
	}
}

func TestTaskList_EscReturnsToDashboard(t *testing.T) {
	m, _ := newList(t, data.TargetSchedule)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(messages.SwitchViewMsg)
	if !ok || msg.View != messages.ViewDashboard {
		t.Errorf("expected switch to dashboard, got %#v", msg)
	}
}

func TestTaskList_ConfirmationOwnsKeys(t *testing.T) {
	m, svc := newList(t, data.TargetSchedule)
	svc.AddTask(data.TargetSchedule, "Gym", "08:00")
	m.Refresh()

	m, _ = m.Update(keys("D"))
	// j would move the cursor in list mode; here it must be ignored.
	m, cmd := m.Update(keys("j"))
	if cmd != nil {
		t.Error("expected no command for an unrelated key")
	}
	if m.confirm == nil || !m.IsInModalState() {
		t.Error("expected confirmation still open")
	}
}
