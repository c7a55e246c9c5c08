package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/services"
)

// retrySchedule runs the backlog sweep once a minute.
const retrySchedule = "0 * * * * *"

// AssignmentRetryJob re-attempts courier assignment for the home-delivery
// backlog. Orders land in the backlog when ingestion-time assignment failed,
// typically because no courier was on shift.
type AssignmentRetryJob struct {
	backlogHandler queries.GetUnassignedOrdersQueryHandler
	assignHandler  commands.AssignCourierCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewAssignmentRetryJob creates a job that sweeps the unassigned backlog.
func NewAssignmentRetryJob(
	backlogHandler queries.GetUnassignedOrdersQueryHandler,
	assignHandler commands.AssignCourierCommandHandler,
	logger *slog.Logger,
) *AssignmentRetryJob {
	return &AssignmentRetryJob{
		backlogHandler: backlogHandler,
		assignHandler:  assignHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "assignment_retry_job"),
	}
}

// Start schedules the backlog sweep.
func (j *AssignmentRetryJob) Start() error {
	_, err := j.cron.AddFunc(retrySchedule, func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment retry job started (running every minute)")
	return nil
}

// Stop stops the backlog sweep.
func (j *AssignmentRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment retry job stopped")
}

// sweep walks the backlog oldest first, assigning one order at a time.
// Without couriers on shift every remaining order would fail the same way,
// so that condition ends the run early.
func (j *AssignmentRetryJob) sweep(ctx context.Context) {
	backlog, err := j.backlogHandler.Handle(ctx, queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to read unassigned backlog", "error", err)
		return
	}

	for _, entry := range backlog {
		cmd, cmdErr := commands.NewAssignCourierCommand(entry.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command",
				"orderId", entry.ID, "error", cmdErr)
			continue
		}

		assignErr := j.assignHandler.Handle(ctx, cmd)
		switch {
		case assignErr == nil:
			j.logger.InfoContext(ctx, "Assigned backlog order",
				"orderId", entry.ID, "externalOrderId", entry.ExternalOrderID)
		case errors.Is(assignErr, commands.ErrNoActiveCouriersFound),
			errors.Is(assignErr, services.ErrCourierNotFound):
			return
		case errors.Is(assignErr, commands.ErrNoOrderFound),
			errors.Is(assignErr, commands.ErrOrderNeedsNoCourier):
			// The order changed between the backlog read and the retry.
		default:
			j.logger.ErrorContext(ctx, "Assignment retry failed",
				"orderId", entry.ID, "error", assignErr)
		}
	}
}
