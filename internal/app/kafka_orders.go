package app

import (
	"context"
	"time"

	"go.uber.org/dig"

	"delivery-fee-service/internal/config"
	"delivery-fee-service/internal/logx"
	"delivery-fee-service/internal/repository"
	"delivery-fee-service/internal/service/orders"
	"delivery-fee-service/internal/service/quote"
	"delivery-fee-service/internal/transport/kafka"
)

const orderEventTimeout = 5 * time.Second

type eventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka bounds the processing of a single event so that a stuck
// database call cannot hold the partition forever.
func makeOrdersKafka(h eventHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		if timeout <= 0 {
			return h.Handle(ctx, event)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return h.Handle(ctx, event)
	}
}

func newKafkaConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrdersTopic, h)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(q *quote.Service, quotes *repository.QuoteRepo, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(q, quotes, logger)
		},
		func(p *orders.Processor) kafka.HandleFunc {
			return makeOrdersKafka(p, orderEventTimeout)
		},
		newKafkaConsumer,
	)
}
