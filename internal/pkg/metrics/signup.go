package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		catalogFallbackTotal,
		wizardEventsTotal,
		provisioningTotal,
		provisioningDuration,
	)
}

var (
	catalogFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zaker_catalog_fallback_total",
			Help: "Catalog fetches answered with the built-in fallback data.",
		},
		[]string{"resource"}, // plans, tiers
	)

	wizardEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zaker_signup_events_total",
			Help: "Signup wizard funnel events by event and step.",
		},
		[]string{"event", "step"},
	)

	provisioningTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zaker_tenant_provisioning_total",
			Help: "Tenant creation requests by outcome.",
		},
		[]string{"outcome"}, // success, failure
	)

	provisioningDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "zaker_tenant_provisioning_seconds",
			Help:    "Latency of tenant creation requests.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func IncCatalogFallback(resource string) {
	catalogFallbackTotal.WithLabelValues(resource).Inc()
}

func IncWizardEvent(event, step string) {
	WizardEvents(event, step).Inc()
}

// WizardEvents returns the funnel counter for one event/step pair.
func WizardEvents(event, step string) prometheus.Counter {
	return wizardEventsTotal.WithLabelValues(event, step)
}

func ObserveProvisioning(success bool, seconds float64) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	provisioningTotal.WithLabelValues(outcome).Inc()
	provisioningDuration.Observe(seconds)
}
