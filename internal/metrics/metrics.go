package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_registrations_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	authRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_auth_rejections_total",
		Help: "Requests rejected by the auth gateway grouped by reason.",
	}, []string{"reason"})

	uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_uploads_total",
		Help: "Attachment uploads grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncRegister increments the registration counter.
func IncRegister(status string) {
	registrations.WithLabelValues(status).Inc()
}

// IncAuthRejection increments the gateway rejection counter.
func IncAuthRejection(reason string) {
	authRejections.WithLabelValues(reason).Inc()
}

// IncUpload increments the upload counter.
func IncUpload(status string) {
	uploads.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
