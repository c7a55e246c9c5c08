package kernel

import (
	"fmt"
	"time"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly
// initialized TimeWindow. TimeWindows must be created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// ErrTimeWindowInverted is returned when the window would end before it starts.
var ErrTimeWindowInverted = errs.NewValueIsInvalidError("window end precedes window start")

// TimeWindow is a closed [start, end] interval promised for a delivery.
// It is an immutable value object; start never exceeds end.
type TimeWindow struct {
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow from start and end instants.
// Returns ErrTimeWindowInverted if end precedes start.
func NewTimeWindow(start time.Time, end time.Time) (TimeWindow, error) {
	if end.Before(start) {
		return TimeWindow{}, ErrTimeWindowInverted
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the TimeWindow was created via NewTimeWindow.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the earliest promised delivery instant.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the latest promised delivery instant.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// String implements fmt.Stringer using RFC 3339 instants.
func (w TimeWindow) String() string {
	return fmt.Sprintf("TimeWindow(%s..%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
