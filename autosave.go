package whiteboard

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// saveTimeout bounds a single autosave write.
const saveTimeout = 30 * time.Second

// Autosaver periodically saves a board's current session on a cron
// schedule. Boards without a session name yet are skipped; a failed save
// is logged and left for the next tick (no retry in between).
type Autosaver struct {
	board *Board
	sched *cron.Cron
}

// NewAutosaver creates an autosaver for the board. The schedule uses cron
// syntax, including descriptors like "@every 30s". An invalid schedule
// fails immediately.
func NewAutosaver(b *Board, schedule string) (*Autosaver, error) {
	a := &Autosaver{
		board: b,
		sched: cron.New(),
	}
	if _, err := a.sched.AddFunc(schedule, a.run); err != nil {
		return nil, fmt.Errorf("autosave schedule %q: %w", schedule, err)
	}
	return a, nil
}

// Start begins the schedule. Saves run on the scheduler's goroutine.
func (a *Autosaver) Start() {
	a.sched.Start()
}

// Stop halts the schedule and waits for an in-flight save to finish.
func (a *Autosaver) Stop() {
	<-a.sched.Stop().Done()
}

func (a *Autosaver) run() {
	name := a.board.SessionName()
	if name == "" {
		Logger().Debug("autosave skipped, unnamed session")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := a.board.Save(ctx, name); err != nil {
		Logger().Warn("autosave failed", "session", name, "error", err)
	}
}
