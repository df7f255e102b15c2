package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// SessionsStartedTotal counts quoting sessions created.
	SessionsStartedTotal prometheus.Counter
	// QuotesComputedTotal counts priced quotes by configuration and rounding mode.
	QuotesComputedTotal *prometheus.CounterVec
	// DocumentsRenderedTotal counts quote PDFs generated.
	DocumentsRenderedTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		SessionsStartedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Number of quoting sessions created.",
		})
		QuotesComputedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_computed_total",
			Help:      "Number of quotes priced, by configuration and rounding mode.",
		}, []string{"configuration", "rounding"})
		DocumentsRenderedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_rendered_total",
			Help:      "Number of quote documents generated.",
		})

		registerOrReuse(reg, SessionsStartedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				SessionsStartedTotal = v
			}
		})
		registerOrReuse(reg, QuotesComputedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuotesComputedTotal = v
			}
		})
		registerOrReuse(reg, DocumentsRenderedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				DocumentsRenderedTotal = v
			}
		})
	})
}

// CountQuote records one priced quote. An empty configuration is labelled
// "none" so drafts remain visible in the series.
func CountQuote(productID string, roundingApplied bool) {
	if QuotesComputedTotal == nil {
		return
	}
	if productID == "" {
		productID = "none"
	}
	rounding := "none"
	if roundingApplied {
		rounding = "hundred_floor"
	}
	QuotesComputedTotal.WithLabelValues(productID, rounding).Inc()
}
