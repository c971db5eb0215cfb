package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	solvesDesc = prometheus.NewDesc(
		"dsastreak_solves_total",
		"Total logged solves by question difficulty",
		[]string{"difficulty"},
		nil,
	)
)

// SolveCounter reads solve totals grouped by difficulty.
type SolveCounter interface {
	CountSolvesByDifficulty(ctx context.Context) (map[string]int64, error)
}

// SolveCollector is a custom Prometheus collector that reads solve counts
// from the database on each scrape.
type SolveCollector struct {
	source  SolveCounter
	timeout time.Duration
}

// NewSolveCollector creates a collector reading from source.
func NewSolveCollector(source SolveCounter) *SolveCollector {
	return &SolveCollector{source: source, timeout: 5 * time.Second}
}

// Describe sends the metric descriptor to the channel.
func (c *SolveCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- solvesDesc
}

// Collect queries the database for solve counts and emits them as counters.
func (c *SolveCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counts, err := c.source.CountSolvesByDifficulty(ctx)
	if err != nil {
		slog.Error("failed to collect solve metrics", "error", err)
		return
	}
	for difficulty, n := range counts {
		ch <- prometheus.MustNewConstMetric(
			solvesDesc,
			prometheus.CounterValue,
			float64(n),
			difficulty,
		)
	}
}

// Recorder holds the request-path metrics.
type Recorder struct {
	searches      *prometheus.CounterVec
	searchResults prometheus.Histogram
	cacheLookups  *prometheus.CounterVec
	windowDays    prometheus.Histogram
}

// NewRecorder creates the recorder's metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dsastreak_question_searches_total",
			Help: "Question bank searches by outcome (results or empty)",
		}, []string{"outcome"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dsastreak_question_search_results",
			Help:    "Number of questions returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dsastreak_catalogue_cache_lookups_total",
			Help: "Shared catalogue cache lookups by outcome",
		}, []string{"outcome"}),
		windowDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dsastreak_activity_window_days",
			Help:    "Requested activity window lengths in days",
			Buckets: []float64{7, 14, 30, 90, 180, 366},
		}),
	}
	reg.MustRegister(r.searches, r.searchResults, r.cacheLookups, r.windowDays)
	return r
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the solve collector and the recorder with the default
// registry. Must be called once at startup.
func Init(source SolveCounter) {
	recorderOnce.Do(func() {
		recorder = NewRecorder(prometheus.DefaultRegisterer)
		prometheus.MustRegister(NewSolveCollector(source))
	})
}

// RecordSearch records a question search and how many questions it returned.
func RecordSearch(results int) {
	if recorder == nil {
		return
	}
	recorder.RecordSearch(results)
}

// RecordCacheLookup records a shared catalogue cache lookup outcome.
func RecordCacheLookup(outcome string) {
	if recorder == nil {
		return
	}
	recorder.RecordCacheLookup(outcome)
}

// RecordWindow records the length of a requested activity window.
func RecordWindow(days int) {
	if recorder == nil {
		return
	}
	recorder.RecordWindow(days)
}

// RecordSearch records a search on r.
func (r *Recorder) RecordSearch(results int) {
	outcome := "results"
	if results == 0 {
		outcome = "empty"
	}
	r.searches.WithLabelValues(outcome).Inc()
	r.searchResults.Observe(float64(results))
}

// RecordCacheLookup records a cache lookup on r.
func (r *Recorder) RecordCacheLookup(outcome string) {
	r.cacheLookups.WithLabelValues(outcome).Inc()
}

// RecordWindow records a window length on r.
func (r *Recorder) RecordWindow(days int) {
	r.windowDays.Observe(float64(days))
}
