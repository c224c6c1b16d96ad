// Package metrics defines every custom Prometheus metric of the service.
// All collectors register with the default registry at init through promauto,
// and /metrics serves them with promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

const namespace = "echoplay"

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: the matched ServeMux pattern, or "unmatched"
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// RateLimitedTotal counts requests rejected by the per-IP limiter, by path.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_requests_total",
		Help:      "Total number of requests rejected with 429, by path.",
	},
	[]string{"path"},
)

// FavoritesAddedTotal counts favorites created.
// Label:
//   - kind: TRACK, ARTIST or ALBUM
var FavoritesAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_added_total",
		Help:      "Total number of favorites added, by entity kind.",
	},
	[]string{"kind"},
)

// CategoriesDeletedTotal counts deleted categories.
// Label:
//   - policy: REASSIGN or DELETE_FAVORITES
var CategoriesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "categories_deleted_total",
		Help:      "Total number of categories deleted, by cascade policy.",
	},
	[]string{"policy"},
)

// Recorder exposes the domain counters to services behind small interfaces.
type Recorder struct{}

// NewRecorder returns a Recorder backed by the package collectors.
func NewRecorder() *Recorder { return &Recorder{} }

// FavoriteAdded increments the favorites counter for kind.
func (Recorder) FavoriteAdded(kind domain.EntityKind) {
	FavoritesAddedTotal.WithLabelValues(string(kind)).Inc()
}

// CategoryDeleted increments the deleted categories counter for policy.
func (Recorder) CategoryDeleted(policy domain.CascadePolicy) {
	CategoriesDeletedTotal.WithLabelValues(string(policy)).Inc()
}
