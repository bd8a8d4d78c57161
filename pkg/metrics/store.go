package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Total accounts created through /auth/register
	UserRegistrations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_user_registrations_total",
		Help: "Total number of registered users",
	})

	// Login attempts by outcome (success / failure)
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	// Orders created, labelled by product category
	OrdersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_orders_created_total",
			Help: "Total number of orders created by product category",
		},
		[]string{"category"},
	)

	// Payment-proof uploads by outcome (stored / rejected)
	ProofUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_payment_proof_uploads_total",
			Help: "Total number of payment proof uploads by result",
		},
		[]string{"result"},
	)

	// Latency of the payment-proof upload path (file write + DB update)
	ProofUploadLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_payment_proof_upload_latency_seconds",
		Help:    "Latency of payment proof uploads",
		Buckets: prometheus.DefBuckets,
	})

	// Servers flipped to EXPIRED by the background sweep
	ServersExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_servers_expired_total",
		Help: "Total number of servers expired by the background sweep",
	})
)

func Init() {
	prometheus.MustRegister(
		UserRegistrations,
		LoginAttempts,
		OrdersCreated,
		ProofUploads,
		ProofUploadLatency,
		ServersExpired,
	)
}
