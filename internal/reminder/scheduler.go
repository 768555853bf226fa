package reminder

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"lifeplanner/internal/logs"
)

// DefaultSchedule runs the check at the start of every minute.
const DefaultSchedule = "* * * * *"

// Scheduler runs a Checker on a cron schedule. Runs never overlap; a check
// still in flight when the next one is due is rescheduled instead.
type Scheduler struct {
	scheduler gocron.Scheduler
	job       gocron.Job
}

// Start registers checker on schedule (five-field cron) and starts running
// it in the background.
func Start(checker *Checker, schedule string) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	job, err := s.NewJob(
		gocron.CronJob(schedule, false),
		gocron.NewTask(func() {
			checker.Check()
		}),
		gocron.WithName("reminder_check"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to register reminder job: %w", err)
	}

	s.Start()
	sched := &Scheduler{scheduler: s, job: job}
	if next, err := sched.NextRun(); err == nil {
		logs.Logger.Printf("Reminder scheduler started (%s), next check %s", schedule, next.Format("15:04:05"))
	}

	return sched, nil
}

// NextRun reports when the next check is due.
func (s *Scheduler) NextRun() (time.Time, error) {
	return s.job.NextRun()
}

// Stop shuts the scheduler down, waiting for a running check to finish.
func (s *Scheduler) Stop() error {
	if s == nil {
		return nil
	}
	logs.Logger.Println("Stopping reminder scheduler")
	return s.scheduler.Shutdown()
}
