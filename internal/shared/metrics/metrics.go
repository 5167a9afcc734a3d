package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	descriptionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "descriptions_generated_total",
			Help: "Total descriptions composed",
		},
		[]string{"tone", "length"},
	)

	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "description_validation_failures_total",
			Help: "Total field validation failures",
		},
		[]string{"field"},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "description_generation_duration_seconds",
			Help:    "Time spent composing a description",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	wordCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "description_word_count",
			Help:    "Words per composed description",
			Buckets: []float64{20, 40, 60, 80, 120, 160, 200, 260},
		},
	)

	draftsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drafts_saved_total",
			Help: "Total form drafts saved",
		},
		[]string{"store"},
	)
)

// ObserveGeneration records one composed description.
func ObserveGeneration(tone, length string, took time.Duration, words int) {
	descriptionsGenerated.WithLabelValues(tone, length).Inc()
	generationDuration.Observe(took.Seconds())
	wordCount.Observe(float64(words))
}

// IncValidationFailure counts a failing form field.
func IncValidationFailure(field string) {
	validationFailures.WithLabelValues(field).Inc()
}

// IncDraftSaved counts a draft written to the named store.
func IncDraftSaved(store string) {
	draftsSaved.WithLabelValues(store).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
