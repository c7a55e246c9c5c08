package services

import (
	"fmt"
	"time"

	"lastmile/internal/core/domain/model/kernel"
)

// Business hours for express home delivery. Orders placed outside these
// hours are promised for the next opening.
const (
	// OpeningHour is the hour of day deliveries start.
	OpeningHour = 10
	// ClosingHour is the hour of day deliveries stop.
	ClosingHour = 18
)

// ProcessingLead is the fixed handling time added to "now" before the
// express window is computed. A shopper checking out at 09:30 is quoted
// as if it were 10:30.
const ProcessingLead = time.Hour

// expressWindowLength is the promised span of the express window. The end
// is clipped at closing time, so the actual span may be shorter.
const expressWindowLength = 2 * time.Hour

// ExpressWindow is the outcome of the express window computation: the
// promised interval plus the shopper-facing description.
type ExpressWindow struct {
	// Window is the promised delivery interval.
	Window kernel.TimeWindow

	// Description is the human-readable delivery promise. It distinguishes
	// same-day windows from windows deferred to the next opening.
	Description string

	// AtOpening is true when the window was deferred to the next opening
	// because the checkout fell outside business hours.
	AtOpening bool
}

// ComputeExpressWindow calculates the promised delivery interval for an
// express home delivery quoted at the given instant.
//
// The instant is first advanced by ProcessingLead. If the result falls
// inside business hours the window is [adjusted, adjusted + 2h], clipped so
// it never extends past closing. Otherwise the window starts at the next
// opening instant; "next opening" rolls to the following day when the
// adjusted instant is at or after closing.
func ComputeExpressWindow(now time.Time) (ExpressWindow, error) {
	adjusted := now.Add(ProcessingLead)

	if adjusted.Hour() >= OpeningHour && adjusted.Hour() < ClosingHour {
		closing := time.Date(
			adjusted.Year(), adjusted.Month(), adjusted.Day(), ClosingHour, 0, 0, 0, adjusted.Location(),
		)

		end := adjusted.Add(expressWindowLength)
		if end.After(closing) {
			end = closing
		}

		window, err := kernel.NewTimeWindow(adjusted, end)
		if err != nil {
			return ExpressWindow{}, err
		}

		return ExpressWindow{
			Window: window,
			Description: fmt.Sprintf(
				"Delivery between %s-%s", adjusted.Format("15:04"), end.Format("15:04"),
			),
		}, nil
	}

	start := nextOpening(adjusted)
	end := start.Add(expressWindowLength)

	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return ExpressWindow{}, err
	}

	return ExpressWindow{
		Window: window,
		Description: fmt.Sprintf(
			"Delivery at opening (%s-%s)", start.Format("15:04"), end.Format("15:04"),
		),
		AtOpening: true,
	}, nil
}

// nextOpening returns the first opening instant at or after t. Before
// opening it is today's opening; at or after closing it rolls to tomorrow.
func nextOpening(t time.Time) time.Time {
	opening := time.Date(t.Year(), t.Month(), t.Day(), OpeningHour, 0, 0, 0, t.Location())
	if t.Hour() >= ClosingHour {
		opening = opening.AddDate(0, 0, 1)
	}
	return opening
}
