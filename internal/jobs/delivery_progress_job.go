package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DeliveryProgressJob periodically re-derives the delivery of every booked cargo from
// its handling history. Handling events are only recorded when they are registered, so
// this job is what makes them show up in the tracking state.
type DeliveryProgressJob struct {
	cargos   queries.GetAllCargosQueryHandler
	handler  commands.DeriveDeliveryProgressCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryProgressJob creates the job. schedule is a cron expression with a leading
// seconds field, e.g. "*/10 * * * * *".
func NewDeliveryProgressJob(
	cargos queries.GetAllCargosQueryHandler,
	handler commands.DeriveDeliveryProgressCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryProgressJob {
	return &DeliveryProgressJob{
		cargos:   cargos,
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_progress_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
// Returns an error if the schedule cannot be parsed.
func (j *DeliveryProgressJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery progress job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progress job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *DeliveryProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery progress job stopped")
}

// RunOnce updates every cargo once. A failing cargo is logged and does not stop the
// others; the returned error joins all failures.
func (j *DeliveryProgressJob) RunOnce(ctx context.Context) error {
	cargos, err := j.cargos.Handle(ctx, queries.NewGetAllCargosQuery())
	if err != nil {
		return fmt.Errorf("failed to list cargos: %w", err)
	}

	var failures []error
	for _, c := range cargos {
		if err := j.derive(ctx, c.TrackingID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to derive delivery progress",
				"tracking_id", c.TrackingID, "error", err)
			failures = append(failures, err)
		}
	}

	j.logger.DebugContext(ctx, "Delivery progress updated", "cargos", len(cargos), "failed", len(failures))
	return errors.Join(failures...)
}

func (j *DeliveryProgressJob) derive(ctx context.Context, id string) error {
	trackingID, err := kernel.NewTrackingID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeriveDeliveryProgressCommand(trackingID)
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, cmd)
}
