package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "showcase"

	metricLabelHandler    = "handler"
	metricLabelStatus     = "status"
	metricLabelCollection = "collection"
	metricLabelSource     = "source"
	metricLabelBackend    = "backend"
	metricLabelOperation  = "operation"
)

var (
	// FetchCounter counts list fetches by the source that was finally served
	FetchCounter = newCounterVec(
		"fetch_count",
		"Number of list fetches per collection and served source",
		metricLabelCollection, metricLabelSource,
	)
	// FetchDuration observe the duration of list fetches including retries
	FetchDuration = newSummaryVec(
		"fetch_duration_seconds",
		"Seconds spent fetching a list including the unfeatured retry",
		metricLabelCollection, metricLabelSource,
	)
	// StoreOperationCounter counts store operations
	StoreOperationCounter = newCounterVec(
		"store_operation_count",
		"Number of store operations per backend, operation and status",
		metricLabelBackend, metricLabelOperation, metricLabelStatus,
	)
	// StoreOperationDuration observe the duration of store operations
	StoreOperationDuration = newSummaryVec(
		"store_operation_duration_seconds",
		"Seconds spent in store operations",
		metricLabelBackend, metricLabelOperation, metricLabelStatus,
	)
	// ServiceRequestCounter count the number of requests for each handler
	ServiceRequestCounter = newCounterVec(
		"service_request_count",
		"Count of requests for each handler",
		metricLabelHandler, metricLabelStatus,
	)
	// ServiceRequestDuration observe the duration of requests for each handler
	ServiceRequestDuration = newSummaryVec(
		"service_request_duration_seconds",
		"Seconds to decode requests, execute a handler and encode its reponses",
		metricLabelHandler, metricLabelStatus,
	)
	// ContactSubmissionCounter counts contact form submissions
	ContactSubmissionCounter = newCounterVec(
		"contact_submission_count",
		"Number of contact form submissions",
		metricLabelStatus,
	)
	// HistoryPersistFailedCounter count the number of failed attempts to persist a collection backup
	HistoryPersistFailedCounter = newCounterVec(
		"history_persist_failed_count",
		"Number of failures to store a collection backup",
		metricLabelCollection,
	)
)

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
