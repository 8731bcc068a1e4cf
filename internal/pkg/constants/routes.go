package constants

// Page routes
const (
	HomeRoute     = "/"
	PricingRoute  = "/pricing"
	LanguageRoute = "/lang/:code"
	HealthRoute   = "/healthz"
)

// Signup wizard routes
const (
	SignupRoute        = "/signup"
	SignupPlanRoute    = "/signup/plan"
	SignupNextRoute    = "/signup/next"
	SignupBackRoute    = "/signup/back"
	SignupRestartRoute = "/signup/restart"
)

// Operator routes, mounted below /metrics
const (
	MetricsRoute    = "/metrics"
	PrometheusRoute = "/prometheus"
	FunnelRoute     = "/funnel"
)
