package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schedsim/schedsim/scheduler"
)

var (
	promMetrics = struct {
		requestsTotal      *prometheus.CounterVec
		scheduleDuration   *prometheus.HistogramVec
		processesScheduled prometheus.Counter
	}{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedsim_requests_total",
			Help: "Scheduling requests by algorithm and outcome",
		}, []string{"algorithm", "status"}),
		scheduleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "schedsim_schedule_duration_seconds",
			Help:    "Wall time spent computing one schedule",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"algorithm"}),
		processesScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "schedsim_processes_scheduled_total",
			Help: "Total processes across accepted requests",
		}),
	}
)

func initPrometheusMetrics() {
	prometheus.MustRegister(
		promMetrics.requestsTotal,
		promMetrics.scheduleDuration,
		promMetrics.processesScheduled,
	)
}

func observeSchedule(algo scheduler.Algorithm, status string, seconds float64, processes int) {
	promMetrics.requestsTotal.WithLabelValues(algo.String(), status).Inc()
	if status == "ok" {
		promMetrics.scheduleDuration.WithLabelValues(algo.String()).Observe(seconds)
		promMetrics.processesScheduled.Add(float64(processes))
	}
}
