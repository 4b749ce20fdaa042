package storageclient

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// err is nil if the operation completed, even when the response reports a
// negative outcome such as "file not found".
type MetricsCollector interface {
	// RecordExists is called after each existence check.
	RecordExists(ft FileType, duration time.Duration, err error)

	// RecordFetch is called after each fetch. found reports whether content was returned.
	RecordFetch(ft FileType, found bool, bytes int, duration time.Duration, err error)

	// RecordDelete is called after each delete.
	RecordDelete(ft FileType, duration time.Duration, err error)

	// RecordUpload is called after each upload. ok is false if the upload failed.
	RecordUpload(ft FileType, ok bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExists(FileType, time.Duration, error)           {}
func (NoopMetricsCollector) RecordFetch(FileType, bool, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDelete(FileType, time.Duration, error)           {}
func (NoopMetricsCollector) RecordUpload(FileType, bool, time.Duration)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExistsCount      atomic.Int64
	ExistsErrors     atomic.Int64
	FetchCount       atomic.Int64
	FetchHits        atomic.Int64
	FetchErrors      atomic.Int64
	FetchBytes       atomic.Int64
	FetchTotalNanos  atomic.Int64
	DeleteCount      atomic.Int64
	DeleteErrors     atomic.Int64
	UploadCount      atomic.Int64
	UploadFailures   atomic.Int64
	UploadTotalNanos atomic.Int64
	BlobCount        atomic.Int64
}

// RecordExists implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExists(ft FileType, duration time.Duration, err error) {
	b.ExistsCount.Add(1)
	b.countBlob(ft)
	if err != nil {
		b.ExistsErrors.Add(1)
	}
}

// RecordFetch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFetch(ft FileType, found bool, bytes int, duration time.Duration, err error) {
	b.FetchCount.Add(1)
	b.FetchTotalNanos.Add(duration.Nanoseconds())
	b.countBlob(ft)
	if err != nil {
		b.FetchErrors.Add(1)
		return
	}
	if found {
		b.FetchHits.Add(1)
		b.FetchBytes.Add(int64(bytes))
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(ft FileType, duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	b.countBlob(ft)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordUpload implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpload(ft FileType, ok bool, duration time.Duration) {
	b.UploadCount.Add(1)
	b.UploadTotalNanos.Add(duration.Nanoseconds())
	b.countBlob(ft)
	if !ok {
		b.UploadFailures.Add(1)
	}
}

func (b *BasicMetricsCollector) countBlob(ft FileType) {
	if ft == Blob {
		b.BlobCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ExistsCount:    b.ExistsCount.Load(),
		ExistsErrors:   b.ExistsErrors.Load(),
		FetchCount:     b.FetchCount.Load(),
		FetchHits:      b.FetchHits.Load(),
		FetchErrors:    b.FetchErrors.Load(),
		FetchBytes:     b.FetchBytes.Load(),
		FetchAvgNanos:  avg(b.FetchTotalNanos.Load(), b.FetchCount.Load()),
		DeleteCount:    b.DeleteCount.Load(),
		DeleteErrors:   b.DeleteErrors.Load(),
		UploadCount:    b.UploadCount.Load(),
		UploadFailures: b.UploadFailures.Load(),
		UploadAvgNanos: avg(b.UploadTotalNanos.Load(), b.UploadCount.Load()),
		BlobOperations: b.BlobCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ExistsCount    int64
	ExistsErrors   int64
	FetchCount     int64
	FetchHits      int64
	FetchErrors    int64
	FetchBytes     int64
	FetchAvgNanos  int64
	DeleteCount    int64
	DeleteErrors   int64
	UploadCount    int64
	UploadFailures int64
	UploadAvgNanos int64
	BlobOperations int64
}
