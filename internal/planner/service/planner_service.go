package service

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lifeplanner/internal/kv"
	"lifeplanner/internal/logs"
	"lifeplanner/internal/planner/data"
)

// PlannerService owns the planner document. Every mutating call persists the
// full document before it returns; none of them fail the caller. Mutations
// report whether they changed anything (blank input and unknown ids are
// no-ops).
type PlannerService interface {
	Snapshot() data.AppData

	AddTask(target data.Target, title, clock string) (data.Task, bool)
	AddDatedTask(target data.Target, title, clock, date string) (data.Task, bool)
	DeleteTask(target data.Target, id string) bool
	ToggleTask(target data.Target, id string) bool

	AddMeal(mealType data.MealType, description string) (data.Meal, bool)
	DeleteMeal(id string) bool

	AddNote(title, content string) (data.Note, bool)
	ImportNote(note data.Note) (data.Note, bool)
	DeleteNote(id string) bool

	SetSoftwareNotes(text string)

	DueNow(clock string) (data.Task, bool)
	MealsByType(mealType data.MealType) []data.Meal
	TasksOnDate(date string) []data.Task
}

// Option configures a planner service.
type Option func(*plannerServiceImpl)

// WithClock replaces time.Now, used for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *plannerServiceImpl) { s.now = now }
}

// WithIDGenerator replaces the uuid id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *plannerServiceImpl) { s.newID = newID }
}

type plannerServiceImpl struct {
	mu    sync.Mutex
	doc   data.AppData
	store kv.Store
	now   func() time.Time
	newID func() string
}

// NewPlannerService loads the document from store. A missing or corrupt
// document starts the planner from an empty one.
func NewPlannerService(store kv.Store, opts ...Option) PlannerService {
	svc := &plannerServiceImpl{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.doc = svc.load()
	return svc
}

func (s *plannerServiceImpl) load() data.AppData {
	raw, err := s.store.Get(data.StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		logs.Logger.Println("No stored planner document, starting empty")
		return data.Empty()
	}
	if err != nil {
		logs.Logger.Printf("Could not read planner document: %v", err)
		return data.Empty()
	}

	doc, err := data.Decode([]byte(raw))
	if err != nil {
		logs.Logger.Printf("Stored planner document is corrupt, starting empty: %v", err)
		// Keep the unreadable value around; the next persist overwrites the original key.
		if err := s.store.Put(data.StorageKey+".corrupt", raw); err != nil {
			logs.Logger.Printf("Could not back up corrupt document: %v", err)
		}
		return data.Empty()
	}
	return doc
}

// persist must be called with mu held.
func (s *plannerServiceImpl) persist() {
	raw, err := data.Encode(s.doc)
	if err != nil {
		logs.Logger.Printf("Error encoding planner document: %v", err)
		return
	}
	if err := s.store.Put(data.StorageKey, string(raw)); err != nil {
		logs.Logger.Printf("Error persisting planner document: %v", err)
	}
}

func (s *plannerServiceImpl) Snapshot() data.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

func (s *plannerServiceImpl) AddTask(target data.Target, title, clock string) (data.Task, bool) {
	return s.AddDatedTask(target, title, clock, "")
}

func (s *plannerServiceImpl) AddDatedTask(target data.Target, title, clock, date string) (data.Task, bool) {
	if strings.TrimSpace(title) == "" {
		return data.Task{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := data.Task{
		ID:          s.newID(),
		Title:       title,
		Time:        clock,
		Date:        date,
		IsImportant: target == data.TargetImportant,
	}
	tasks := append(s.doc.Tasks(target), task)
	data.SortByTime(tasks)
	s.doc.SetTasks(target, tasks)

	logs.Logger.Printf("Added task %s to %s", task.ID, target)
	s.persist()
	return task, true
}

func (s *plannerServiceImpl) DeleteTask(target data.Target, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := data.RemoveTask(s.doc.Tasks(target), id)
	if !ok {
		return false
	}
	s.doc.SetTasks(target, tasks)
	s.persist()
	return true
}

func (s *plannerServiceImpl) ToggleTask(target data.Target, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !data.ToggleTask(s.doc.Tasks(target), id) {
		return false
	}
	s.persist()
	return true
}

func (s *plannerServiceImpl) AddMeal(mealType data.MealType, description string) (data.Meal, bool) {
	if strings.TrimSpace(description) == "" {
		return data.Meal{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meal := data.Meal{
		ID:          s.newID(),
		Type:        mealType,
		Description: description,
	}
	s.doc.Nutrition = append(s.doc.Nutrition, meal)
	s.persist()
	return meal, true
}

func (s *plannerServiceImpl) DeleteMeal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	meals, ok := data.RemoveMeal(s.doc.Nutrition, id)
	if !ok {
		return false
	}
	s.doc.Nutrition = meals
	s.persist()
	return true
}

func (s *plannerServiceImpl) AddNote(title, content string) (data.Note, bool) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return data.Note{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now().UnixMilli()
	// Newest first: never let a clock step back put a note "before" the head.
	if len(s.doc.Notes) > 0 && createdAt < s.doc.Notes[0].CreatedAt {
		createdAt = s.doc.Notes[0].CreatedAt
	}

	note := data.Note{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
	}
	s.doc.Notes = append([]data.Note{note}, s.doc.Notes...)
	s.persist()
	return note, true
}

// ImportNote adds an existing note, keeping its id and timestamp when set.
// Notes whose id is already present are skipped. The note is placed by
// createdAt so the collection stays newest first.
func (s *plannerServiceImpl) ImportNote(note data.Note) (data.Note, bool) {
	if strings.TrimSpace(note.Title) == "" || strings.TrimSpace(note.Content) == "" {
		return data.Note{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if note.ID == "" {
		note.ID = s.newID()
	}
	if slices.ContainsFunc(s.doc.Notes, func(n data.Note) bool { return n.ID == note.ID }) {
		return data.Note{}, false
	}
	if note.CreatedAt == 0 {
		note.CreatedAt = s.now().UnixMilli()
	}

	i := slices.IndexFunc(s.doc.Notes, func(n data.Note) bool { return n.CreatedAt < note.CreatedAt })
	if i < 0 {
		i = len(s.doc.Notes)
	}
	s.doc.Notes = slices.Insert(s.doc.Notes, i, note)
	s.persist()
	return note, true
}

func (s *plannerServiceImpl) DeleteNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, ok := data.RemoveNote(s.doc.Notes, id)
	if !ok {
		return false
	}
	s.doc.Notes = notes
	s.persist()
	return true
}

func (s *plannerServiceImpl) SetSoftwareNotes(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.SoftwareNotes = text
	s.persist()
}

func (s *plannerServiceImpl) DueNow(clock string) (data.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return data.FindDue(s.doc, clock)
}

func (s *plannerServiceImpl) MealsByType(mealType data.MealType) []data.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return data.MealsByType(s.doc.Nutrition, mealType)
}

func (s *plannerServiceImpl) TasksOnDate(date string) []data.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return data.TasksOnDate(s.doc, date)
}
