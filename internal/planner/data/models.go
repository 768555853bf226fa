package data

import (
	"fmt"
	"strings"
	"time"
)

// Target names one of the three task collections.
type Target string

const (
	TargetSchedule  Target = "schedule"
	TargetImportant Target = "importantTasks"
	TargetSecondary Target = "secondaryTasks"
)

// Targets lists task collections in reminder scan order.
var Targets = []Target{TargetSchedule, TargetImportant, TargetSecondary}

// ParseTarget accepts the document field name or its short form
// (schedule, important, secondary).
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "schedule", "":
		return TargetSchedule, nil
	case "important", "importanttasks":
		return TargetImportant, nil
	case "secondary", "secondarytasks":
		return TargetSecondary, nil
	}
	return "", fmt.Errorf("unknown task target %q (want schedule, important or secondary)", s)
}

// MealType is one of breakfast, lunch, dinner or snack.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists meal types in day order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

func ParseMealType(s string) (MealType, error) {
	mt := MealType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range MealTypes {
		if mt == known {
			return mt, nil
		}
	}
	return "", fmt.Errorf("unknown meal type %q (want breakfast, lunch, dinner or snack)", s)
}

// Next cycles through MealTypes, wrapping after snack.
func (m MealType) Next() MealType {
	for i, known := range MealTypes {
		if known == m {
			return MealTypes[(i+1)%len(MealTypes)]
		}
	}
	return Breakfast
}

var mealLabels = map[MealType][2]string{
	Breakfast: {"Завтрак", "Breakfast"},
	Lunch:     {"Обед", "Lunch"},
	Dinner:    {"Ужин", "Dinner"},
	Snack:     {"Перекус", "Snack"},
}

// Label returns the display name of m for locale ("en" or Russian otherwise).
func (m MealType) Label(locale string) string {
	l, ok := mealLabels[m]
	if !ok {
		return string(m)
	}
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return l[1]
	}
	return l[0]
}

// Task is an entry in schedule, importantTasks or secondaryTasks.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	Time        string `json:"time,omitempty"` // HH:MM
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	IsImportant bool   `json:"isImportant"`
}

// Meal is an entry in nutrition.
type Meal struct {
	ID          string   `json:"id"`
	Type        MealType `json:"type"`
	Description string   `json:"description"`
	Calories    *float64 `json:"calories,omitempty"`
}

// Note is a freeform note. CreatedAt is unix milliseconds.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

func (n Note) Created() time.Time {
	return time.UnixMilli(n.CreatedAt)
}

// AppData is the whole planner document, persisted as one unit.
type AppData struct {
	SoftwareNotes  string `json:"softwareNotes"`
	Schedule       []Task `json:"schedule"`
	Nutrition      []Meal `json:"nutrition"`
	ImportantTasks []Task `json:"importantTasks"`
	SecondaryTasks []Task `json:"secondaryTasks"`
	Notes          []Note `json:"notes"`
}

// Empty returns a document with every collection present and empty.
func Empty() AppData {
	return AppData{
		Schedule:       []Task{},
		Nutrition:      []Meal{},
		ImportantTasks: []Task{},
		SecondaryTasks: []Task{},
		Notes:          []Note{},
	}
}

// Tasks returns the collection for target.
func (d *AppData) Tasks(target Target) []Task {
	switch target {
	case TargetImportant:
		return d.ImportantTasks
	case TargetSecondary:
		return d.SecondaryTasks
	default:
		return d.Schedule
	}
}

// SetTasks replaces the collection for target.
func (d *AppData) SetTasks(target Target, tasks []Task) {
	switch target {
	case TargetImportant:
		d.ImportantTasks = tasks
	case TargetSecondary:
		d.SecondaryTasks = tasks
	default:
		d.Schedule = tasks
	}
}

// Clone returns a deep copy safe to hand to readers.
func (d AppData) Clone() AppData {
	out := AppData{
		SoftwareNotes:  d.SoftwareNotes,
		Schedule:       append([]Task{}, d.Schedule...),
		ImportantTasks: append([]Task{}, d.ImportantTasks...),
		SecondaryTasks: append([]Task{}, d.SecondaryTasks...),
		Nutrition:      make([]Meal, len(d.Nutrition)),
		Notes:          append([]Note{}, d.Notes...),
	}
	for i, m := range d.Nutrition {
		if m.Calories != nil {
			c := *m.Calories
			m.Calories = &c
		}
		out.Nutrition[i] = m
	}
	return out
}

// PendingCount returns the number of incomplete tasks in tasks.
func PendingCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// ValidTime reports whether s is a 24h "HH:MM" clock time.
func ValidTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ValidDate reports whether s is a "YYYY-MM-DD" date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ClockString formats t as the "HH:MM" key used for reminders.
func ClockString(t time.Time) string {
	return t.Format("15:04")
}
