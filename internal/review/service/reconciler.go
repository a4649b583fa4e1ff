package service

import (
	"context"
	"log/slog"
	"time"

	"carenest/internal/platform/tracing"
	dErrors "carenest/pkg/domain-errors"
)

// ReconcileResult counts one pass over every caregiver.
type ReconcileResult struct {
	Checked   int `json:"checked"`
	Corrected int `json:"corrected"`
	Failed    int `json:"failed"`
}

// RecomputeAll re-derives every caregiver's rating snapshot. It is idempotent:
// a second pass over unchanged reviews corrects nothing.
func (s *Service) RecomputeAll(ctx context.Context) (res ReconcileResult, err error) {
	ctx, span := tracing.Start(ctx, tracer, "review.RecomputeAll")
	defer func() { tracing.End(span, err) }()

	ids, err := s.caregivers.ListIDs(ctx)
	if err != nil {
		return res, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list caregivers")
	}
	for _, caregiverID := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Checked++
		changed, err := s.Recompute(ctx, caregiverID)
		if err != nil {
			res.Failed++
			s.logger.WarnContext(ctx, "rating reconcile failed",
				"caregiver_id", caregiverID.String(),
				"error", err,
			)
			continue
		}
		if changed {
			res.Corrected++
		}
	}
	s.metrics.reconciled(res)
	return res, nil
}

// Reconciler runs RecomputeAll on a fixed interval until its context ends.
type Reconciler struct {
	service  *Service
	interval time.Duration
	logger   *slog.Logger
}

func NewReconciler(service *Service, interval time.Duration, logger *slog.Logger) *Reconciler {
	return &Reconciler{service: service, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled. A non-positive interval disables the loop.
func (r *Reconciler) Run(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.InfoContext(ctx, "rating reconciler disabled")
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			res, err := r.service.RecomputeAll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				r.logger.ErrorContext(ctx, "rating reconcile pass failed", "error", err)
				continue
			}
			if res.Corrected > 0 || res.Failed > 0 {
				r.logger.InfoContext(ctx, "rating reconcile pass",
					"checked", res.Checked,
					"corrected", res.Corrected,
					"failed", res.Failed,
				)
			}
		}
	}
}
