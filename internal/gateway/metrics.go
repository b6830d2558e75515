package gateway

import (
	"sync"
	"time"
)

// MetricsCollector collects and stores request metrics for the API client
type MetricsCollector struct {
	requestCount  map[string]int64
	responseTime  map[string]time.Duration
	statusCodes   map[int]int64
	totalRequests int64
	totalErrors   int64
	startTime     time.Time
	mutex         sync.RWMutex
}

// ClientMetrics represents overall API client metrics
type ClientMetrics struct {
	TotalRequests   int64                    `json:"total_requests"`
	TotalErrors     int64                    `json:"total_errors"`
	RequestsByPath  map[string]int64         `json:"requests_by_path"`
	StatusCodes     map[int]int64            `json:"status_codes"`
	LastResponse    map[string]time.Duration `json:"last_response_time"`
	Uptime          time.Duration            `json:"uptime"`
	StartTime       time.Time                `json:"start_time"`
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		requestCount: make(map[string]int64),
		responseTime: make(map[string]time.Duration),
		statusCodes:  make(map[int]int64),
		startTime:    time.Now(),
	}
}

// RecordRequest records metrics for a request. A status code of 0
// counts a transport failure.
func (mc *MetricsCollector) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	key := method + " " + path
	mc.requestCount[key]++
	mc.responseTime[key] = duration
	mc.statusCodes[statusCode]++
	mc.totalRequests++

	if statusCode == 0 || statusCode >= 400 {
		mc.totalErrors++
	}
}

// GetMetrics returns current metrics
func (mc *MetricsCollector) GetMetrics() *ClientMetrics {
	mc.mutex.RLock()
	defer mc.mutex.RUnlock()

	return &ClientMetrics{
		TotalRequests:  mc.totalRequests,
		TotalErrors:    mc.totalErrors,
		RequestsByPath: copyMap(mc.requestCount),
		StatusCodes:    copyIntMap(mc.statusCodes),
		LastResponse:   copyDurationMap(mc.responseTime),
		Uptime:         time.Since(mc.startTime),
		StartTime:      mc.startTime,
	}
}

// Reset resets all metrics
func (mc *MetricsCollector) Reset() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	mc.requestCount = make(map[string]int64)
	mc.responseTime = make(map[string]time.Duration)
	mc.statusCodes = make(map[int]int64)
	mc.totalRequests = 0
	mc.totalErrors = 0
	mc.startTime = time.Now()
}

// copyMap creates a copy of a string-keyed counter map
func copyMap(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// copyIntMap creates a copy of an int-keyed counter map
func copyIntMap(src map[int]int64) map[int]int64 {
	dst := make(map[int]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// copyDurationMap creates a copy of a duration map
func copyDurationMap(src map[string]time.Duration) map[string]time.Duration {
	dst := make(map[string]time.Duration, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
