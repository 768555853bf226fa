package data

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// StorageKey is the fixed key the document lives under.
const StorageKey = "lifeplanner-data"

// Decode parses a stored document. Fields missing from raw (older
// documents) are filled with their empty defaults.
func Decode(raw []byte) (AppData, error) {
	var doc AppData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Empty(), fmt.Errorf("invalid planner document: %w", err)
	}
	doc.FillDefaults()
	return doc, nil
}

// Encode serializes the document as indented JSON.
func Encode(doc AppData) ([]byte, error) {
	doc.FillDefaults()
	return json.MarshalIndent(doc, "", "  ")
}

// FillDefaults replaces absent collections with empty ones.
func (d *AppData) FillDefaults() {
	if d.Schedule == nil {
		d.Schedule = []Task{}
	}
	if d.Nutrition == nil {
		d.Nutrition = []Meal{}
	}
	if d.ImportantTasks == nil {
		d.ImportantTasks = []Task{}
	}
	if d.SecondaryTasks == nil {
		d.SecondaryTasks = []Task{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
}

// SortByTime orders tasks ascending by time; untimed tasks come first and
// ties keep their relative order.
func SortByTime(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		return strings.Compare(a.Time, b.Time)
	})
}

// FindDue returns the first incomplete task scheduled at clock, scanning
// schedule, then importantTasks, then secondaryTasks.
func FindDue(doc AppData, clock string) (Task, bool) {
	if clock == "" {
		return Task{}, false
	}
	for _, target := range Targets {
		for _, t := range doc.Tasks(target) {
			if t.Time == clock && !t.Completed {
				return t, true
			}
		}
	}
	return Task{}, false
}

// TasksOnDate returns every task dated date, across all collections.
func TasksOnDate(doc AppData, date string) []Task {
	var out []Task
	for _, target := range Targets {
		for _, t := range doc.Tasks(target) {
			if t.Date == date {
				out = append(out, t)
			}
		}
	}
	return out
}

// MealsByType filters meals, keeping their order.
func MealsByType(meals []Meal, mealType MealType) []Meal {
	var out []Meal
	for _, m := range meals {
		if m.Type == mealType {
			out = append(out, m)
		}
	}
	return out
}

func indexOfTask(tasks []Task, id string) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}

// RemoveTask removes the task with id, reporting whether it was present.
func RemoveTask(tasks []Task, id string) ([]Task, bool) {
	i := indexOfTask(tasks, id)
	if i < 0 {
		return tasks, false
	}
	return slices.Delete(tasks, i, i+1), true
}

// ToggleTask flips completion on the task with id in place.
func ToggleTask(tasks []Task, id string) bool {
	i := indexOfTask(tasks, id)
	if i < 0 {
		return false
	}
	tasks[i].Completed = !tasks[i].Completed
	return true
}

// RemoveMeal removes the meal with id, reporting whether it was present.
func RemoveMeal(meals []Meal, id string) ([]Meal, bool) {
	i := slices.IndexFunc(meals, func(m Meal) bool { return m.ID == id })
	if i < 0 {
		return meals, false
	}
	return slices.Delete(meals, i, i+1), true
}

// RemoveNote removes the note with id, reporting whether it was present.
func RemoveNote(notes []Note, id string) ([]Note, bool) {
	i := slices.IndexFunc(notes, func(n Note) bool { return n.ID == id })
	if i < 0 {
		return notes, false
	}
	return slices.Delete(notes, i, i+1), true
}
