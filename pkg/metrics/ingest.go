package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IngestMetrics records per-store outcomes of invoice ingestion calls.
type IngestMetrics struct {
	duration   *prometheus.HistogramVec
	newRecords *prometheus.CounterVec
	duplicates *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

// NewIngestMetrics registers the ingestion metrics on the provided registerer.
func NewIngestMetrics(reg prometheus.Registerer) *IngestMetrics {
	if reg == nil {
		return &IngestMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ingest_duration_seconds",
		Help:    "Duration of invoice ingestion calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"store"})
	newRecords := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_records_new",
		Help: "Invoice records inserted by ingestion.",
	}, []string{"store"})
	duplicates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_records_duplicate",
		Help: "Invoice records skipped as duplicates.",
	}, []string{"store"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_failures",
		Help: "Ingestion calls that rolled back with an error.",
	}, []string{"store"})
	reg.MustRegister(duration, newRecords, duplicates, failures)
	return &IngestMetrics{
		duration:   duration,
		newRecords: newRecords,
		duplicates: duplicates,
		failures:   failures,
	}
}

// ObserveDuration records the duration of an ingestion call for the store.
func (m *IngestMetrics) ObserveDuration(store string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(store)).Observe(duration.Seconds())
}

// AddNew adds the count of inserted records for the store.
func (m *IngestMetrics) AddNew(store string, count int) {
	if m == nil || m.newRecords == nil || count <= 0 {
		return
	}
	m.newRecords.WithLabelValues(normalizeLabel(store)).Add(float64(count))
}

// AddDuplicates adds the count of skipped duplicates for the store.
func (m *IngestMetrics) AddDuplicates(store string, count int) {
	if m == nil || m.duplicates == nil || count <= 0 {
		return
	}
	m.duplicates.WithLabelValues(normalizeLabel(store)).Add(float64(count))
}

// IncFailure increments the failed-ingestion counter for the store.
func (m *IngestMetrics) IncFailure(store string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(store)).Inc()
}

func normalizeLabel(store string) string {
	if store == "" {
		return "unknown"
	}
	return store
}
