package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LogEntriesTotal counts log entries by level
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colfilter_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)

	// LogErrorsTotal counts error-level log entries specifically
	LogErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "colfilter_log_errors_total",
			Help: "Total number of error log entries",
		},
	)
)

var (
	// CodegenRunsTotal counts case table generation runs by outcome
	CodegenRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colfilter_codegen_runs_total",
			Help: "Total number of case table generation runs",
		},
		[]string{"status"},
	)

	// CodegenCasesEmittedTotal counts switch arms written by the generator
	CodegenCasesEmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "colfilter_codegen_cases_emitted_total",
			Help: "Total number of mask cases emitted by the generator",
		},
	)
)

var (
	// KernelDispatchTotal counts kernel selections by kernel name
	KernelDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colfilter_kernel_dispatch_total",
			Help: "Count of filter kernel selections by kernel",
		},
		[]string{"kernel"},
	)

	// KernelActive reports the active kernel (0=unrolled, 1=bitscan)
	KernelActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "colfilter_kernel_active",
			Help: "Active filter kernel (0=unrolled, 1=bitscan)",
		},
	)
)

var (
	// CompactRowsScannedTotal counts input rows seen by the compactor
	CompactRowsScannedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colfilter_compact_rows_scanned_total",
			Help: "Total number of rows scanned during column compaction",
		},
		[]string{"type"},
	)

	// CompactRowsSelectedTotal counts rows kept by the compactor
	CompactRowsSelectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colfilter_compact_rows_selected_total",
			Help: "Total number of rows kept during column compaction",
		},
		[]string{"type"},
	)

	// CompactDurationSeconds measures compaction latency
	CompactDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "colfilter_compact_duration_seconds",
			Help:    "Duration of column compaction operations",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"op"},
	)

	// CompactErrorsTotal counts failed compactions by error type
	CompactErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colfilter_compact_errors_total",
			Help: "Total number of failed compaction operations",
		},
		[]string{"op", "type"},
	)
)
