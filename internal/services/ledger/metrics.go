package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsCollector defines the interface for collecting ledger metrics.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordTransaction(txType string, amount decimal.Decimal)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordTransaction(string, decimal.Decimal)     {}
func (n *NoopMetricsCollector) RecordError(string, string)                    {}
