// Package observability provides logging, metrics, and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsDispatched counts dispatch attempts by outcome:
	// delivered, dropped_offline, dropped_backpressure.
	NotificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_dispatched_total",
		Help: "Real-time notification dispatch attempts by outcome",
	}, []string{"outcome"})

	// ActiveWebSockets tracks the number of live notification connections.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "websocket_connections_active",
		Help: "Currently open websocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped because a client's
	// send buffer was full or its channel closed.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "websocket_backpressure_drops_total",
		Help: "Messages dropped due to websocket backpressure",
	}, []string{"reason"})

	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "redis_errors_total",
		Help: "Redis command errors by command",
	}, []string{"command"})

	// CascadeOrphans counts rows a delete cascade failed to clean up.
	// With the transactional cascade this should stay at zero; a non-zero
	// value means orphaned comments are accumulating and needs attention.
	CascadeOrphans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "post_delete_cascade_orphans_total",
		Help: "Rows left behind by a partially-failed post delete cascade",
	})
)
