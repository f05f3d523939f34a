package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "safeguard"

var (
	// httpRequests считает HTTP-запросы.
	// Labels: route (шаблон пути gin), method, status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// httpDuration измеряет время обработки запроса.
	// Labels: route
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route"})

	// sosAlerts считает сохраненные SOS-сигналы.
	// Labels: alert_type
	sosAlerts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_alerts_total",
		Help:      "Total SOS alerts stored",
	}, []string{"alert_type"})

	// routeDeviations считает проверки отклонения от маршрута.
	// Labels: deviated
	routeDeviations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_deviations_total",
		Help:      "Total location updates by deviation outcome",
	}, []string{"deviated"})

	// detections считает срабатывания классификаторов.
	// Labels: kind (voice, gesture, shake), sos
	detections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detections_total",
		Help:      "Total classifier runs by kind and SOS decision",
	}, []string{"kind", "sos"})
)

// GinMiddleware записывает счетчик и длительность для каждого запроса
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// knownAlertTypes ограничивает значения метки alert_type
var knownAlertTypes = map[string]struct{}{
	"voice":     {},
	"gesture":   {},
	"shake":     {},
	"deviation": {},
	"manual":    {},
}

// RecordSOSAlert считает сигнал; неизвестные типы попадают в "other"
func RecordSOSAlert(alertType string) {
	sosAlerts.WithLabelValues(alertTypeLabel(alertType)).Inc()
}

func alertTypeLabel(alertType string) string {
	if _, ok := knownAlertTypes[alertType]; ok {
		return alertType
	}
	return "other"
}

func RecordDeviationCheck(deviated bool) {
	routeDeviations.WithLabelValues(strconv.FormatBool(deviated)).Inc()
}

func RecordDetection(kind string, sos bool) {
	detections.WithLabelValues(kind, strconv.FormatBool(sos)).Inc()
}
