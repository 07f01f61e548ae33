package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
)

// Metric names recorded by the web layer.
const (
	MetricApiRequest   = "api_request"
	MetricApiError     = "api_error"
	MetricProductWrite = "product_write"
)

var (
	storage tstorage.Storage
	mu      sync.Mutex
)

// InitMetrics opens the embedded time-series store under workdir/metrics.
func InitMetrics(workdir string) error {
	mu.Lock()
	defer mu.Unlock()
	var err error
	storage, err = tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithRetention(7*24*time.Hour),
	)
	return err
}

// Incr records one occurrence of the named metric at the current time.
// Safe to call before InitMetrics; the point is dropped.
func Incr(name string) {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return
	}
	_ = storage.InsertRows([]tstorage.Row{
		{
			Metric:    name,
			DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: 1},
		},
	})
}

// Range returns the raw points of a metric between start and end (unix seconds).
func Range(name string, start, end int64) ([]*tstorage.DataPoint, error) {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil, nil
	}
	return storage.Select(name, nil, start, end)
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil
	}
	err := storage.Close()
	storage = nil
	return err
}
