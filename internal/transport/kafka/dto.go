package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"delivery-fee-service/internal/service/orders"
)

// EventDTO is the wire form of an order event. Amounts may be JSON numbers
// or strings.
type EventDTO struct {
	OrderID    string          `json:"order_id"`
	Status     string          `json:"status"`
	DistanceKm decimal.Decimal `json:"distance_km"`
	WeightKg   decimal.Decimal `json:"weight_kg"`
	IsWeather  bool            `json:"is_weather"`
	IsPriority bool            `json:"is_priority"`
	Tip        decimal.Decimal `json:"tip"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID:    strings.TrimSpace(dto.OrderID),
		Status:     strings.TrimSpace(dto.Status),
		DistanceKm: dto.DistanceKm,
		WeightKg:   dto.WeightKg,
		IsWeather:  dto.IsWeather,
		IsPriority: dto.IsPriority,
		Tip:        dto.Tip,
		CreatedAt:  dto.CreatedAt,
	}
}

var errEmptyOrderID = errors.New("empty order_id")

// DecodeEvent parses a message value into an orders.Event. A payload that can
// never be processed is returned as a PermanentError.
func DecodeEvent(value []byte) (orders.Event, error) {
	var dto EventDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return orders.Event{}, Permanent(fmt.Errorf("decode order event: %w", err))
	}
	ev := ToDomain(dto)
	if ev.OrderID == "" {
		return orders.Event{}, Permanent(errEmptyOrderID)
	}
	return ev, nil
}
