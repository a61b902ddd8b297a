// Package workers holds the background runnables of the identity server.
package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/teamgo/teamgo/internal/usecases"
)

// MessageRelay periodically relays the pending outbox events to the event bus.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run relays a batch at startup and then on every tick until ctx is done.
// A failed batch is logged and retried on the next tick.
func (mr MessageRelay) Run(ctx context.Context) error {
	if mr.Interval <= 0 {
		return fmt.Errorf("MessageRelay: FETCH_OUTBOX_INTERVAL must be positive, got %s", mr.Interval)
	}
	mr.Logger.Printf("MessageRelay: running every %s...", mr.Interval)
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	failures := 0
	relay := func() {
		err := mr.RelayOutbox.Execute(ctx)
		switch {
		case err != nil:
			failures++
			mr.Logger.Printf("MessageRelay: error relaying outbox batch (%d in a row): %v", failures, err)
		case failures > 0:
			mr.Logger.Printf("MessageRelay: recovered after %d failed batches", failures)
			failures = 0
		}
		if mr.workerExecutionChan != nil {
			mr.workerExecutionChan <- struct{}{}
		}
	}

	relay()
	for {
		select {
		case <-ticker.C:
			relay()
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}
