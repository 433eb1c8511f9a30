package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"pricewatch/internal/adapter"
	"pricewatch/internal/domain"
	"pricewatch/internal/normalize"
)

// Runner orchestrates one invocation over a set of selected adapters:
// session bookkeeping, streaming with the item limit, normalization,
// persistence and failure isolation between retailers.
type Runner struct {
	adapters     []adapter.Adapter
	supermarkets SupermarketStore
	products     ProductStore
	history      PriceHistoryStore
	tracker      *SessionTracker
	txManager    TransactionManager
	publisher    OfferPublisher
	logger       *slog.Logger
	concurrency  int
}

// NewRunner wires the orchestrator. publisher may be nil when offer events
// are disabled.
func NewRunner(
	adapters []adapter.Adapter,
	supermarkets SupermarketStore,
	products ProductStore,
	history PriceHistoryStore,
	sessions SessionStore,
	txManager TransactionManager,
	publisher OfferPublisher,
	logger *slog.Logger,
	concurrency int,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		adapters:     adapters,
		supermarkets: supermarkets,
		products:     products,
		history:      history,
		tracker:      NewSessionTracker(sessions, logger),
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
		concurrency:  concurrency,
	}
}

// Run executes every selected adapter, at most `concurrency` of them at a
// time. limit <= 0 means unbounded. One retailer's failure never aborts the
// others; the caller decides the exit code from the returned summary.
func (r *Runner) Run(ctx context.Context, limit int) *domain.RunSummary {
	summary := &domain.RunSummary{StartedAt: time.Now()}
	results := make([]domain.AdapterResult, len(r.adapters))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, a := range r.adapters {
		g.Go(func() error {
			results[i] = r.runAdapter(ctx, a, limit)
			return nil
		})
	}
	_ = g.Wait()

	summary.Results = results
	summary.Elapsed = time.Since(summary.StartedAt)
	r.logSummary(summary)
	return summary
}

func (r *Runner) runAdapter(ctx context.Context, a adapter.Adapter, limit int) domain.AdapterResult {
	logger := r.logger.With("supermarket", a.Code())
	start := time.Now()
	result := domain.AdapterResult{SupermarketCode: a.Code()}

	failed := func(msg string) domain.AdapterResult {
		result.Status = domain.RunFailed
		result.ErrorMessage = msg
		result.Elapsed = time.Since(start)
		return result
	}

	if err := r.supermarkets.Ensure(ctx, a.Code(), a.Name(), a.BaseURL()); err != nil {
		logger.Error("ensure supermarket", "error", err)
		return failed(fmt.Sprintf("ensure supermarket: %v", err))
	}

	session, err := r.tracker.Begin(ctx, a.Code())
	if err != nil {
		logger.Error("begin session", "error", err)
		return failed(err.Error())
	}

	succeeded, skipped, runErr := r.processListings(ctx, a, session, limit, logger)
	result.Succeeded = succeeded
	result.Skipped = skipped

	if runErr != nil {
		msg := runErr.Error()
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
			msg = "cancelled"
		}
		// The session row must be closed even when the run context is
		// already dead.
		if err := session.Fail(context.WithoutCancel(ctx), msg); err != nil {
			logger.Error("fail session", "error", err)
		}
		return failed(msg)
	}

	if err := session.Complete(ctx); err != nil {
		logger.Error("complete session", "error", err)
		return failed(fmt.Sprintf("complete session: %v", err))
	}

	result.Status = domain.RunCompleted
	result.Elapsed = time.Since(start)
	return result
}

// processListings streams the adapter, applying the item limit, normalizing
// and persisting each raw listing. Normalization failures are skipped;
// anything else aborts this adapter's run.
func (r *Runner) processListings(
	ctx context.Context,
	a adapter.Adapter,
	session *TrackedSession,
	limit int,
	logger *slog.Logger,
) (succeeded, skipped int, err error) {
	stream, err := a.Listings(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("open listings: %w", err)
	}

	processed := 0
	for limit <= 0 || processed < limit {
		if err := ctx.Err(); err != nil {
			return succeeded, skipped, err
		}

		raw, err := stream.Next(ctx)
		if errors.Is(err, adapter.ErrEndOfListings) {
			break
		}
		if err != nil {
			return succeeded, skipped, fmt.Errorf("fetch listing: %w", err)
		}
		processed++

		rec, err := normalize.Normalize(raw, a.Code())
		if err != nil {
			if domain.IsNormalizationError(err) {
				skipped++
				logger.Warn("skipping listing", "product_id", raw.ProductID, "error", err)
				continue
			}
			return succeeded, skipped, err
		}

		if err := r.persist(ctx, rec); err != nil {
			return succeeded, skipped, fmt.Errorf("persist product %s: %w", rec.ProductID, err)
		}
		succeeded++
		session.ItemPersisted()

		if r.publisher != nil && rec.OnOffer() {
			if err := r.publisher.PublishOffer(ctx, rec); err != nil {
				logger.Warn("publish offer", "product_id", rec.ProductID, "error", err)
			}
		}
	}

	if processed > 0 && succeeded == 0 {
		return succeeded, skipped, fmt.Errorf("no listings survived normalization (%d skipped)", skipped)
	}
	return succeeded, skipped, nil
}

// persist writes the product upsert and its history row as one atomic unit.
func (r *Runner) persist(ctx context.Context, rec *domain.ProductRecord) error {
	return r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, outcome, err := r.products.Upsert(txCtx, rec)
		if err != nil {
			return fmt.Errorf("upsert: %w", err)
		}

		obs := domain.PriceObservation{
			Price:         rec.Price,
			OriginalPrice: rec.OriginalPrice,
			PricePerUnit:  rec.PricePerUnit,
			DiscountType:  rec.DiscountType,
			ObservedAt:    time.Now().UTC(),
		}
		if err := r.history.Append(txCtx, id, obs); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		r.logger.Debug("persisted product",
			"supermarket", rec.SupermarketCode,
			"product_id", rec.ProductID,
			"outcome", outcome.String(),
		)
		return nil
	})
}

func (r *Runner) logSummary(summary *domain.RunSummary) {
	for _, res := range summary.Results {
		r.logger.Info("adapter finished",
			"supermarket", res.SupermarketCode,
			"status", string(res.Status),
			"succeeded", res.Succeeded,
			"skipped", res.Skipped,
			"elapsed", res.Elapsed,
			"error", res.ErrorMessage,
		)
	}
	r.logger.Info("run finished",
		"adapters", len(summary.Results),
		"total_succeeded", summary.TotalSucceeded(),
		"failed", summary.Failed(),
		"elapsed", summary.Elapsed,
	)
}
