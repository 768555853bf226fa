// Package reminder fires a notification when a pending task's time matches
// the current minute.
package reminder

import (
	"strings"
	"sync"
	"time"

	"lifeplanner/internal/logs"
	"lifeplanner/internal/planner/data"
)

// Notifier delivers a local notification. Implementations that are disabled
// or denied return nil and drop the message.
type Notifier interface {
	Notify(title, body string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, body string) error

func (f NotifierFunc) Notify(title, body string) error {
	return f(title, body)
}

// LogNotifier writes notifications to the debug log.
type LogNotifier struct{}

func (LogNotifier) Notify(title, body string) error {
	logs.Logger.Printf("Notification: %s: %s", title, body)
	return nil
}

// Multi fans a notification out to every non-nil notifier.
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(title, body string) error {
		var first error
		for _, n := range notifiers {
			if n == nil {
				continue
			}
			if err := n.Notify(title, body); err != nil && first == nil {
				first = err
			}
		}
		return first
	})
}

// DueSource finds the first pending task due at an "HH:MM" clock.
type DueSource interface {
	DueNow(clock string) (data.Task, bool)
}

// Title returns the notification title for locale.
func Title(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return "Reminder"
	}
	return "Напоминание"
}

// Checker runs one reminder check per call. Within a single minute a task
// fires at most once, however many times Check runs.
type Checker struct {
	src      DueSource
	notifier Notifier
	title    string
	now      func() time.Time

	mu     sync.Mutex
	minute string
	fired  map[string]struct{}
}

// Option configures a Checker.
type Option func(*Checker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

// WithTitle sets the notification title.
func WithTitle(title string) Option {
	return func(c *Checker) { c.title = title }
}

// NewChecker creates a Checker. A nil notifier drops every reminder.
func NewChecker(src DueSource, notifier Notifier, opts ...Option) *Checker {
	c := &Checker{
		src:      src,
		notifier: notifier,
		title:    Title(""),
		now:      time.Now,
		fired:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check looks for a task due this minute and notifies for it. It returns the
// task and true when a notification was sent.
func (c *Checker) Check() (data.Task, bool) {
	now := c.now()

	task, ok := c.src.DueNow(data.ClockString(now))
	if !ok {
		return data.Task{}, false
	}

	c.mu.Lock()
	minute := now.Format("2006-01-02 15:04")
	if minute != c.minute {
		c.minute = minute
		clear(c.fired)
	}
	if _, done := c.fired[task.ID]; done {
		c.mu.Unlock()
		return data.Task{}, false
	}
	c.fired[task.ID] = struct{}{}
	c.mu.Unlock()

	if c.notifier == nil {
		return data.Task{}, false
	}

	logs.Logger.Printf("Reminder due at %s: %s", task.Time, task.Title)
	if err := c.notifier.Notify(c.title, task.Title); err != nil {
		logs.Logger.Printf("Notifier error: %v", err)
		return data.Task{}, false
	}
	return task, true
}
