package service

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"lifeplanner/internal/kv"
	"lifeplanner/internal/planner/data"
)

func newTestService(t *testing.T) (PlannerService, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	n := 0
	svc := NewPlannerService(store, WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	return svc, store
}

func titles(tasks []data.Task) []string {
	var out []string
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestAddTask_SortedByTimeUntimedFirst(t *testing.T) {
	svc, _ := newTestService(t)

	svc.AddTask(data.TargetSchedule, "Lunch", "13:00")
	svc.AddTask(data.TargetSchedule, "Inbox zero", "")
	svc.AddTask(data.TargetSchedule, "Gym", "07:00")
	svc.AddTask(data.TargetSchedule, "Standup", "13:00")
	svc.AddTask(data.TargetSchedule, "Read", "")

	got := titles(svc.Snapshot().Schedule)
	want := []string{"Inbox zero", "Read", "Gym", "Lunch", "Standup"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAddTask_Fields(t *testing.T) {
	svc, _ := newTestService(t)

	important, ok := svc.AddTask(data.TargetImportant, "Pay rent", "10:00")
	if !ok {
		t.Fatal("expected task to be added")
	}
	if !important.IsImportant || important.Completed || important.ID == "" {
		t.Errorf("unexpected important task: %+v", important)
	}

	secondary, _ := svc.AddTask(data.TargetSecondary, "Laundry", "")
	if secondary.IsImportant {
		t.Error("secondary task must not be important")
	}
	scheduled, _ := svc.AddTask(data.TargetSchedule, "Gym", "")
	if scheduled.IsImportant {
		t.Error("schedule task must not be important")
	}
}

func TestAddTask_BlankTitleIsNoop(t *testing.T) {
	svc, store := newTestService(t)
	svc.AddTask(data.TargetSchedule, "Gym", "07:00")
	writes := store.Writes

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, ok := svc.AddTask(data.TargetSchedule, title, "08:00"); ok {
			t.Errorf("expected %q to be rejected", title)
		}
	}

	if n := len(svc.Snapshot().Schedule); n != 1 {
		t.Errorf("expected schedule length 1, got %d", n)
	}
	if store.Writes != writes {
		t.Error("rejected add must not persist")
	}
}

func TestDeleteTask(t *testing.T) {
	svc, _ := newTestService(t)
	gym, _ := svc.AddTask(data.TargetSchedule, "Gym", "07:00")
	svc.AddTask(data.TargetSchedule, "Work", "09:00")

	if svc.DeleteTask(data.TargetSchedule, "missing") {
		t.Error("expected delete of missing id to report false")
	}
	// Right id, wrong collection.
	if svc.DeleteTask(data.TargetImportant, gym.ID) {
		t.Error("expected delete in another collection to report false")
	}
	if got := titles(svc.Snapshot().Schedule); !reflect.DeepEqual(got, []string{"Gym", "Work"}) {
		t.Errorf("expected schedule unchanged, got %v", got)
	}

	if !svc.DeleteTask(data.TargetSchedule, gym.ID) {
		t.Fatal("expected delete to succeed")
	}
	if got := titles(svc.Snapshot().Schedule); !reflect.DeepEqual(got, []string{"Work"}) {
		t.Errorf("expected [Work], got %v", got)
	}
}

func TestToggleTask_TwiceRestores(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddTask(data.TargetSecondary, "A", "08:00")
	b, _ := svc.AddTask(data.TargetSecondary, "B", "09:00")
	svc.AddTask(data.TargetSecondary, "C", "10:00")

	before := svc.Snapshot().SecondaryTasks

	svc.ToggleTask(data.TargetSecondary, b.ID)
	mid := svc.Snapshot().SecondaryTasks
	if !mid[1].Completed || mid[1].ID != b.ID {
		t.Errorf("expected B completed in place, got %+v", mid)
	}

	svc.ToggleTask(data.TargetSecondary, b.ID)
	after := svc.Snapshot().SecondaryTasks
	if !reflect.DeepEqual(before, after) {
		t.Errorf("expected double toggle to restore %+v, got %+v", before, after)
	}

	if svc.ToggleTask(data.TargetSecondary, "missing") {
		t.Error("expected toggle of missing id to report false")
	}
}

func TestAddMeal_LunchScenario(t *testing.T) {
	svc, _ := newTestService(t)

	meal, ok := svc.AddMeal(data.Lunch, "rice and chicken")
	if !ok {
		t.Fatal("expected meal to be added")
	}
	if meal.Calories != nil {
		t.Error("expected no calories on a new meal")
	}

	doc := svc.Snapshot()
	if len(doc.Nutrition) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(doc.Nutrition))
	}
	lunch := svc.MealsByType(data.Lunch)
	if len(lunch) != 1 || lunch[0].Description != "rice and chicken" {
		t.Errorf("expected the lunch entry, got %+v", lunch)
	}
}

func TestAddMeal_AppendsAndRejectsBlank(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddMeal(data.Dinner, "soup")
	svc.AddMeal(data.Breakfast, "oats")

	if _, ok := svc.AddMeal(data.Snack, "  "); ok {
		t.Error("expected blank description to be rejected")
	}

	meals := svc.Snapshot().Nutrition
	if len(meals) != 2 || meals[0].Description != "soup" || meals[1].Description != "oats" {
		t.Errorf("expected insertion order kept, got %+v", meals)
	}
}

func TestDeleteMeal(t *testing.T) {
	svc, _ := newTestService(t)
	meal, _ := svc.AddMeal(data.Dinner, "soup")

	if svc.DeleteMeal("missing") {
		t.Error("expected delete of missing meal to report false")
	}
	if len(svc.Snapshot().Nutrition) != 1 {
		t.Error("expected nutrition unchanged")
	}
	if !svc.DeleteMeal(meal.ID) || len(svc.Snapshot().Nutrition) != 0 {
		t.Error("expected meal deleted")
	}
}

func TestAddNote_NewestFirst(t *testing.T) {
	store := kv.NewMemoryStore()
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewPlannerService(store, WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	for i := 1; i <= 3; i++ {
		if _, ok := svc.AddNote(fmt.Sprintf("note %d", i), "body"); !ok {
			t.Fatalf("expected note %d to be added", i)
		}
	}

	notes := svc.Snapshot().Notes
	var got []string
	for _, n := range notes {
		got = append(got, n.Title)
	}
	if !reflect.DeepEqual(got, []string{"note 3", "note 2", "note 1"}) {
		t.Errorf("expected newest first, got %v", got)
	}
	if notes[0].CreatedAt < notes[1].CreatedAt {
		t.Error("expected createdAt non-decreasing with insertion")
	}
}

func TestAddNote_ClockStepBack(t *testing.T) {
	store := kv.NewMemoryStore()
	times := []time.Time{
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	i := 0
	svc := NewPlannerService(store, WithClock(func() time.Time {
		ts := times[i]
		i++
		return ts
	}))

	svc.AddNote("first", "a")
	svc.AddNote("second", "b")

	notes := svc.Snapshot().Notes
	if notes[0].CreatedAt < notes[1].CreatedAt {
		t.Errorf("expected head createdAt >= previous, got %d < %d", notes[0].CreatedAt, notes[1].CreatedAt)
	}
}

func TestAddNote_RequiresTitleAndContent(t *testing.T) {
	svc, _ := newTestService(t)

	if _, ok := svc.AddNote("title", " "); ok {
		t.Error("expected blank content to be rejected")
	}
	if _, ok := svc.AddNote("", "content"); ok {
		t.Error("expected blank title to be rejected")
	}
	if len(svc.Snapshot().Notes) != 0 {
		t.Error("expected no notes")
	}
}

func TestDeleteNote(t *testing.T) {
	svc, _ := newTestService(t)
	note, _ := svc.AddNote("Idea", "write it down")

	if svc.DeleteNote("missing") || len(svc.Snapshot().Notes) != 1 {
		t.Error("expected delete of missing note to be a no-op")
	}
	if !svc.DeleteNote(note.ID) || len(svc.Snapshot().Notes) != 0 {
		t.Error("expected note deleted")
	}
}

func TestImportNote_KeepsOrderAndSkipsDuplicates(t *testing.T) {
	svc, _ := newTestService(t)

	svc.ImportNote(data.Note{ID: "a", Title: "Old", Content: "x", CreatedAt: 1000})
	svc.ImportNote(data.Note{ID: "c", Title: "New", Content: "x", CreatedAt: 3000})
	svc.ImportNote(data.Note{ID: "b", Title: "Middle", Content: "x", CreatedAt: 2000})

	if _, ok := svc.ImportNote(data.Note{ID: "b", Title: "Again", Content: "x", CreatedAt: 9000}); ok {
		t.Error("expected duplicate id to be skipped")
	}
	if _, ok := svc.ImportNote(data.Note{Title: "No content"}); ok {
		t.Error("expected blank content to be rejected")
	}

	var got []string
	for _, n := range svc.Snapshot().Notes {
		got = append(got, n.ID)
	}
	if want := []string{"c", "b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestImportNote_FillsMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	note, ok := svc.ImportNote(data.Note{Title: "Loose", Content: "file"})
	if !ok {
		t.Fatal("expected import to succeed")
	}
	if note.ID != "id-1" {
		t.Errorf("want generated id id-1, got %q", note.ID)
	}
	if note.CreatedAt == 0 {
		t.Error("expected createdAt to be set")
	}
}

func TestSetSoftwareNotes_Unconditional(t *testing.T) {
	svc, _ := newTestService(t)

	svc.SetSoftwareNotes("go test ./...")
	svc.SetSoftwareNotes("   ")

	if got := svc.Snapshot().SoftwareNotes; got != "   " {
		t.Errorf("expected whitespace kept verbatim, got %q", got)
	}
}

func TestDueNow_ScanOrder(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddTask(data.TargetSecondary, "Secondary", "09:00")
	svc.AddTask(data.TargetImportant, "Important", "09:00")
	first, _ := svc.AddTask(data.TargetSchedule, "Schedule", "09:00")

	due, ok := svc.DueNow("09:00")
	if !ok || due.Title != "Schedule" {
		t.Fatalf("expected schedule task first, got %+v", due)
	}

	svc.ToggleTask(data.TargetSchedule, first.ID)
	due, ok = svc.DueNow("09:00")
	if !ok || due.Title != "Important" {
		t.Errorf("expected important task once schedule is done, got %+v", due)
	}

	if _, ok := svc.DueNow("09:01"); ok {
		t.Error("expected no due task at 09:01")
	}
}

func TestPersistAndReload(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewPlannerService(store)
	svc.AddTask(data.TargetImportant, "Pay rent", "10:00")
	svc.AddMeal(data.Lunch, "rice and chicken")
	svc.AddNote("Idea", "write it down")
	svc.SetSoftwareNotes("scratch")

	reloaded := NewPlannerService(store)
	if !reflect.DeepEqual(svc.Snapshot(), reloaded.Snapshot()) {
		t.Errorf("expected reload to reproduce document:\n  want %+v\n  got  %+v", svc.Snapshot(), reloaded.Snapshot())
	}
}

func TestPersist_FileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := kv.Open(kv.BackendFile, dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	svc := NewPlannerService(store)
	svc.AddTask(data.TargetSchedule, "Gym", "07:00")

	reopened, err := kv.Open(kv.BackendFile, dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	doc := NewPlannerService(reopened).Snapshot()
	if len(doc.Schedule) != 1 || doc.Schedule[0].Title != "Gym" {
		t.Errorf("expected persisted schedule, got %+v", doc.Schedule)
	}
}

func TestLoad_CorruptFallsBackToEmpty(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Put(data.StorageKey, "{definitely not json")

	svc := NewPlannerService(store)

	if !reflect.DeepEqual(svc.Snapshot(), data.Empty()) {
		t.Errorf("expected empty document, got %+v", svc.Snapshot())
	}
	backup, err := store.Get(data.StorageKey + ".corrupt")
	if err != nil || backup != "{definitely not json" {
		t.Errorf("expected corrupt value backed up, got %q (%v)", backup, err)
	}
}

func TestLoad_PartialDocument(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Put(data.StorageKey, `{"importantTasks":[{"id":"x","title":"Legacy","completed":false,"isImportant":true}]}`)

	svc := NewPlannerService(store)
	doc := svc.Snapshot()
	if len(doc.ImportantTasks) != 1 {
		t.Fatalf("expected legacy task, got %+v", doc.ImportantTasks)
	}

	// Mutating a defaulted collection works and persists.
	if _, ok := svc.AddMeal(data.Snack, "apple"); !ok {
		t.Error("expected meal added to defaulted nutrition")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddTask(data.TargetSchedule, "Gym", "07:00")

	snap := svc.Snapshot()
	snap.Schedule[0].Title = "mutated"
	snap.Schedule = append(snap.Schedule, data.Task{ID: "rogue"})

	doc := svc.Snapshot()
	if len(doc.Schedule) != 1 || doc.Schedule[0].Title != "Gym" {
		t.Errorf("snapshot mutation leaked into store: %+v", doc.Schedule)
	}
}

func TestTasksOnDate(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddDatedTask(data.TargetSchedule, "Dentist", "15:00", "2026-03-10")
	svc.AddDatedTask(data.TargetImportant, "Tax return", "", "2026-03-10")
	svc.AddDatedTask(data.TargetSecondary, "Other day", "", "2026-03-11")

	got := titles(svc.TasksOnDate("2026-03-10"))
	if !reflect.DeepEqual(got, []string{"Dentist", "Tax return"}) {
		t.Errorf("expected tasks for 2026-03-10, got %v", got)
	}
}
