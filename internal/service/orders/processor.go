package orders

import (
	"context"
	"fmt"
	"time"

	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/logx"
)

// Processor processes orders events
type Processor struct {
	quoter  Quoter
	quotes  QuoteStore
	logger  logx.Logger
	factory *actionFactory
	now     func() time.Time
}

// NewProcessor creates a new orders.Processor
func NewProcessor(quoter Quoter, quotes QuoteStore, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		quoter: quoter,
		quotes: quotes,
		logger: logger,
		now:    time.Now,
	}
	p.factory = newActionFactory(p.onCreated, p.onCanceled)
	return p
}

// Handle processes a single orders.Event. Statuses without an action are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	at := e.CreatedAt
	if at.IsZero() {
		at = p.now()
	}
	res, err := p.quoter.QuoteAt(ctx, e.PricingRequest(), at)
	if err != nil {
		return fmt.Errorf("quote order %q: %w", e.OrderID, err)
	}
	if err := p.quotes.Upsert(ctx, domain.OrderQuote{OrderID: e.OrderID, Result: res, QuotedAt: p.now()}); err != nil {
		return err
	}
	p.logger.Info("order quoted",
		logx.String("order_id", e.OrderID),
		logx.Stringer("total", res.Total),
	)
	return nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	deleted, err := p.quotes.Delete(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if deleted {
		p.logger.Info("order quote removed",
			logx.String("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
	}
	return nil
}
