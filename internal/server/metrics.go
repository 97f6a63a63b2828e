package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atsdash_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "atsdash_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	reportsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atsdash_reports_built_total",
			Help: "Total number of dashboard reports built",
		},
	)

	versionsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atsdash_versions_scored_total",
			Help: "Total number of resume versions scored",
		},
	)
)
