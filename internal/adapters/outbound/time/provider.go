// Package time supplies the wall clock used to stamp identity records.
package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/domain"
)

// CurrentTimeProvider reports UTC wall-clock time truncated to Precision, so
// timestamps read back from the SQL backends compare equal to the written ones.
type CurrentTimeProvider struct {
	Precision time.Duration
}

// Now returns the current UTC time. A zero Precision keeps full resolution.
func (p CurrentTimeProvider) Now() time.Time {
	now := time.Now().UTC()
	if p.Precision > 0 {
		now = now.Truncate(p.Precision)
	}
	return now
}

// InitCurrentTimeProvider registers the clock as the domain.CurrentTimeProvider.
type InitCurrentTimeProvider struct {
	Precision time.Duration `config:"CLOCK_PRECISION" default:"1us"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (i InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{Precision: i.Precision})
	return ctx, nil
}
