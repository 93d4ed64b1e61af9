package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/kleberrossi/Procman/internal/core/application/usecases/commands"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OpenOrderLister returns the orders a reconciliation run visits.
type OpenOrderLister interface {
	GetAllNotTerminal(ctx context.Context) ([]kernel.UUID, error)
}

// TotalsRecalculator recomputes the stored total of one order.
type TotalsRecalculator interface {
	Handle(ctx context.Context, cmd commands.RecalculateTotalsCommand) (bool, error)
}

// ReconcileTotalsJob periodically recomputes the stored total of every order
// that is still open. Orders whose total already matches their items are
// left untouched.
type ReconcileTotalsJob struct {
	orders       OpenOrderLister
	recalculator TotalsRecalculator
	schedule     string
	timeout      time.Duration
	cron         *cron.Cron
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewReconcileTotalsJob creates the job. schedule is a six-field cron
// expression (with seconds); an empty schedule disables the job.
func NewReconcileTotalsJob(
	orders OpenOrderLister,
	recalculator TotalsRecalculator,
	schedule string,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ReconcileTotalsJob {
	return &ReconcileTotalsJob{
		orders:       orders,
		recalculator: recalculator,
		schedule:     schedule,
		timeout:      5 * time.Minute,
		cron:         cron.New(cron.WithSeconds()),
		metrics:      m,
		logger:       logger.With(zap.String("component", "reconcile_totals_job")),
	}
}

// Enabled reports whether a schedule was configured.
func (j *ReconcileTotalsJob) Enabled() bool {
	return j.schedule != ""
}

// Start schedules the job. It is a no-op when the job is disabled.
func (j *ReconcileTotalsJob) Start() error {
	if !j.Enabled() {
		j.logger.Info("Totals reconciliation disabled, no schedule configured")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		_, _ = j.Run(ctx)
	})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("RECONCILE_SCHEDULE", err)
	}

	j.cron.Start()
	j.logger.Info("Totals reconciliation started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running reconciliation to finish.
func (j *ReconcileTotalsJob) Stop() {
	if !j.Enabled() {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.Info("Totals reconciliation stopped")
}

// Run performs one pass and returns how many orders had their total
// corrected. A failure on one order does not stop the pass; the failures are
// joined into the returned error.
func (j *ReconcileTotalsJob) Run(ctx context.Context) (int, error) {
	ids, err := j.orders.GetAllNotTerminal(ctx)
	if err != nil {
		j.metrics.ReconcileRuns.WithLabelValues("failed").Inc()
		j.logger.Error("Totals reconciliation could not list orders", zap.Error(err))
		return 0, err
	}

	corrected := 0
	var failures []error
	for _, id := range ids {
		if ctx.Err() != nil {
			failures = append(failures, ctx.Err())
			break
		}

		cmd, err := commands.NewRecalculateTotalsCommand(id, kernel.SystemActor())
		if err != nil {
			failures = append(failures, err)
			continue
		}

		changed, err := j.recalculator.Handle(ctx, cmd)
		if err != nil {
			// Changed by a request in the meantime; the next run sees it again.
			if errors.Is(err, errs.ErrVersionIsInvalid) {
				continue
			}
			j.logger.Warn("Totals reconciliation failed for order",
				zap.String("order_id", id.String()), zap.Error(err))
			failures = append(failures, err)
			continue
		}
		if changed {
			corrected++
			j.metrics.ReconciledOrders.Inc()
		}
	}

	result := "ok"
	if len(failures) > 0 {
		result = "partial"
	}
	j.metrics.ReconcileRuns.WithLabelValues(result).Inc()
	j.logger.Info("Totals reconciliation finished",
		zap.Int("orders", len(ids)),
		zap.Int("corrected", corrected),
		zap.Int("failed", len(failures)))

	return corrected, errors.Join(failures...)
}
