package data

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecode_RoundTrip(t *testing.T) {
	cal := 420.0
	doc := AppData{
		SoftwareNotes:  "kubectl get pods -A",
		Schedule:       []Task{{ID: "1", Title: "Gym", Time: "07:30"}},
		Nutrition:      []Meal{{ID: "2", Type: Lunch, Description: "rice and chicken", Calories: &cal}},
		ImportantTasks: []Task{{ID: "3", Title: "Report", IsImportant: true, Date: "2026-03-01"}},
		SecondaryTasks: []Task{{ID: "4", Title: "Laundry", Completed: true}},
		Notes:          []Note{{ID: "5", Title: "Idea", Content: "write it down", CreatedAt: 1767225600000}},
	}

	raw, err := Encode(doc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	loaded, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(doc, loaded) {
		t.Errorf("round-trip mismatch:\n  want %+v\n  got  %+v", doc, loaded)
	}
}

func TestDecode_EmptyDocumentRoundTrip(t *testing.T) {
	raw, err := Encode(Empty())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	loaded, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(Empty(), loaded) {
		t.Errorf("expected empty document, got %+v", loaded)
	}
}

func TestDecode_PartialDocument(t *testing.T) {
	raw := []byte(`{"importantTasks":[{"id":"a","title":"Pay rent","completed":false,"isImportant":true}]}`)

	doc, err := Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.ImportantTasks) != 1 || doc.ImportantTasks[0].Title != "Pay rent" {
		t.Errorf("expected important task to survive, got %+v", doc.ImportantTasks)
	}
	if doc.SoftwareNotes != "" {
		t.Errorf("expected empty software notes, got %q", doc.SoftwareNotes)
	}
	if doc.Schedule == nil || len(doc.Schedule) != 0 {
		t.Errorf("expected empty schedule, got %#v", doc.Schedule)
	}
	if doc.Nutrition == nil || doc.SecondaryTasks == nil || doc.Notes == nil {
		t.Error("expected missing collections to default to empty slices")
	}
}

func TestDecode_NullCollections(t *testing.T) {
	doc, err := Decode([]byte(`{"schedule":null,"notes":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Schedule == nil || doc.Notes == nil {
		t.Error("expected null collections to default to empty slices")
	}
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []string{
		"",
		"{not json",
		`["schedule"]`,
		`{"schedule":"oops"}`,
	}

	for _, raw := range tests {
		doc, err := Decode([]byte(raw))
		if err == nil {
			t.Errorf("Decode(%q): expected error", raw)
		}
		if !reflect.DeepEqual(doc, Empty()) {
			t.Errorf("Decode(%q): expected empty document on failure, got %+v", raw, doc)
		}
	}
}

func TestEncode_FieldNames(t *testing.T) {
	raw, err := Encode(Empty())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, field := range []string{"softwareNotes", "schedule", "nutrition", "importantTasks", "secondaryTasks", "notes"} {
		if !strings.Contains(string(raw), `"`+field+`"`) {
			t.Errorf("expected field %q in %s", field, raw)
		}
	}
}

func TestSortByTime_StableUntimedFirst(t *testing.T) {
	tasks := []Task{
		{ID: "a", Time: "09:00"},
		{ID: "b"},
		{ID: "c", Time: "08:00"},
		{ID: "d", Time: "09:00"},
		{ID: "e"},
	}

	SortByTime(tasks)

	var got []string
	for _, task := range tasks {
		got = append(got, task.ID)
	}
	want := []string{"b", "e", "c", "a", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestFindDue(t *testing.T) {
	doc := Empty()
	doc.Schedule = []Task{{ID: "s1", Title: "Done standup", Time: "09:00", Completed: true}, {ID: "s2", Title: "Standup", Time: "09:00"}}
	doc.ImportantTasks = []Task{{ID: "i1", Title: "Call bank", Time: "09:00"}}
	doc.SecondaryTasks = []Task{{ID: "x1", Title: "Water plants", Time: "10:00"}}

	tests := []struct {
		clock  string
		wantID string
		found  bool
	}{
		{"09:00", "s2", true},
		{"10:00", "x1", true},
		{"11:00", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		task, ok := FindDue(doc, tt.clock)
		if ok != tt.found {
			t.Errorf("FindDue(%q): expected found=%v, got %v", tt.clock, tt.found, ok)
			continue
		}
		if task.ID != tt.wantID {
			t.Errorf("FindDue(%q): expected %q, got %q", tt.clock, tt.wantID, task.ID)
		}
	}
}

func TestFindDue_AllCompleted(t *testing.T) {
	doc := Empty()
	doc.Schedule = []Task{{ID: "s1", Time: "09:00", Completed: true}}
	doc.SecondaryTasks = []Task{{ID: "x1", Time: "09:00", Completed: true}}

	if _, ok := FindDue(doc, "09:00"); ok {
		t.Error("expected no due task when all matches are completed")
	}
}

func TestMealsByType(t *testing.T) {
	meals := []Meal{
		{ID: "1", Type: Breakfast, Description: "oats"},
		{ID: "2", Type: Lunch, Description: "rice and chicken"},
		{ID: "3", Type: Snack, Description: "apple"},
	}

	lunch := MealsByType(meals, Lunch)
	if len(lunch) != 1 || lunch[0].ID != "2" {
		t.Errorf("expected only meal 2, got %+v", lunch)
	}
	if len(MealsByType(meals, Dinner)) != 0 {
		t.Error("expected no dinner")
	}
}

func TestClone_Independent(t *testing.T) {
	cal := 100.0
	doc := Empty()
	doc.Schedule = append(doc.Schedule, Task{ID: "1", Title: "Gym"})
	doc.Nutrition = append(doc.Nutrition, Meal{ID: "2", Type: Snack, Description: "nuts", Calories: &cal})

	clone := doc.Clone()
	clone.Schedule[0].Title = "changed"
	*clone.Nutrition[0].Calories = 999

	if doc.Schedule[0].Title != "Gym" {
		t.Error("clone shares schedule backing array")
	}
	if *doc.Nutrition[0].Calories != 100 {
		t.Error("clone shares calories pointer")
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input string
		want  Target
		err   bool
	}{
		{"schedule", TargetSchedule, false},
		{"", TargetSchedule, false},
		{"important", TargetImportant, false},
		{"importantTasks", TargetImportant, false},
		{"Secondary", TargetSecondary, false},
		{"someday", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseTarget(%q): unexpected error state: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestMealType_Next(t *testing.T) {
	if Breakfast.Next() != Lunch || Snack.Next() != Breakfast {
		t.Error("expected meal types to cycle in day order")
	}
	if _, err := ParseMealType("brunch"); err == nil {
		t.Error("expected error for unknown meal type")
	}
}

func TestMealType_Label(t *testing.T) {
	if got := Lunch.Label("ru"); got != "Обед" {
		t.Errorf("want Обед, got %q", got)
	}
	if got := Snack.Label("en-GB"); got != "Snack" {
		t.Errorf("want Snack, got %q", got)
	}
	if got := MealType("brunch").Label("en"); got != "brunch" {
		t.Errorf("unknown types fall back to their value, got %q", got)
	}
}

func TestValidTime(t *testing.T) {
	tests := map[string]bool{
		"09:00": true,
		"23:59": true,
		"9:00":  false,
		"24:00": false,
		"":      false,
		"ab:cd": false,
	}
	for input, want := range tests {
		if got := ValidTime(input); got != want {
			t.Errorf("ValidTime(%q): expected %v, got %v", input, want, got)
		}
	}
}
