package balltree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each remove operation.
	RecordRemove(duration time.Duration, err error)

	// RecordSearch is called after each nearest-neighbour or
	// k-nearest-neighbour query. k is the number of neighbours
	// requested (1 for NearestNeighbour).
	RecordSearch(k int, duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot save or load.
	// bytes is the blob size written or read.
	RecordSnapshot(op string, bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)             {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)             {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordSnapshot(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64

	RemoveCount      atomic.Int64
	RemoveErrors     atomic.Int64
	RemoveTotalNanos atomic.Int64

	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64

	SnapshotCount atomic.Int64
	SnapshotBytes atomic.Int64
}

func (c *BasicMetricsCollector) RecordInsert(d time.Duration, err error) {
	c.InsertCount.Add(1)
	c.InsertTotalNanos.Add(int64(d))
	if err != nil {
		c.InsertErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordRemove(d time.Duration, err error) {
	c.RemoveCount.Add(1)
	c.RemoveTotalNanos.Add(int64(d))
	if err != nil {
		c.RemoveErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordSearch(_ int, d time.Duration, err error) {
	c.SearchCount.Add(1)
	c.SearchTotalNanos.Add(int64(d))
	if err != nil {
		c.SearchErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordSnapshot(_ string, bytes int, _ time.Duration, err error) {
	c.SnapshotCount.Add(1)
	if err == nil {
		c.SnapshotBytes.Add(int64(bytes))
	}
}
