package loot

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/udisondev/lootcore/internal/loot"

// metrics are recorded through the global OTel meter (no-op unless configured).
type metrics struct {
	fills           metric.Int64Counter
	missing         metric.Int64Counter
	rolled          metric.Int64Counter
	capacityDropped metric.Int64Counter
}

func newMetrics() *metrics {
	m := otel.Meter(instrumentationName)
	return &metrics{
		fills:           counter(m, "loot.fill.total", "Loot fills requested"),
		missing:         counter(m, "loot.fill.missing", "Loot fills for ids absent from the store"),
		rolled:          counter(m, "loot.items.rolled", "Items inserted into loot"),
		capacityDropped: counter(m, "loot.items.capacity_dropped", "Rolled items dropped because the loot list was full"),
	}
}

func counter(m metric.Meter, name, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (m *metrics) fill(store string, found bool) {
	attrs := metric.WithAttributes(attribute.String("store", store))
	m.fills.Add(context.Background(), 1, attrs)
	if !found {
		m.missing.Add(context.Background(), 1, attrs)
	}
}

func (m *metrics) item(list string, accepted bool) {
	attrs := metric.WithAttributes(attribute.String("list", list))
	if accepted {
		m.rolled.Add(context.Background(), 1, attrs)
		return
	}
	m.capacityDropped.Add(context.Background(), 1, attrs)
}
