package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP метрики - количество запросов
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Общее количество HTTP запросов",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP метрики - время обработки запросов
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Время обработки HTTP запросов в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP метрики - количество ошибок
	httpErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Общее количество HTTP ошибок",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Комнаты живут до конца процесса, gauge показывает накопленный рост
	roomsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rooms_active",
			Help: "Количество комнат в памяти процесса",
		},
	)

	roomMembersJoinedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "room_members_joined_total",
			Help: "Общее количество присоединений к комнатам",
		},
	)

	locationUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "location_updates_total",
			Help: "Общее количество обновлений геопозиции",
		},
	)

	providerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venue_provider_requests_total",
			Help: "Запросы к внешним провайдерам геоданных",
		},
		[]string{"provider", "outcome"},
	)
)

// RecordHTTPMetrics записывает метрики HTTP запроса
func RecordHTTPMetrics(method, endpoint string, status int, duration time.Duration) {
	strStatus := strconv.Itoa(status)

	httpRequestsTotal.WithLabelValues(method, endpoint, strStatus).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, strStatus).Observe(duration.Seconds())

	// Записываем ошибки (статус >= 400)
	if status >= 400 {
		httpErrorsTotal.WithLabelValues(method, endpoint, strStatus).Inc()
	}
}

func IncrementActiveRooms() {
	roomsActive.Inc()
}

func IncrementMembersJoined() {
	roomMembersJoinedTotal.Inc()
}

func IncrementLocationUpdates() {
	locationUpdatesTotal.Inc()
}

// RecordProviderRequest записывает результат запроса к провайдеру
// (outcome: "ok", "error" или "skipped")
func RecordProviderRequest(provider, outcome string) {
	providerRequestsTotal.WithLabelValues(provider, outcome).Inc()
}
