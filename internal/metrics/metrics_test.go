package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsInitialization(t *testing.T) {
	assert.NotNil(t, LogEntriesTotal)
	assert.NotNil(t, LogErrorsTotal)
	assert.NotNil(t, CodegenRunsTotal)
	assert.NotNil(t, CodegenCasesEmittedTotal)
	assert.NotNil(t, KernelDispatchTotal)
	assert.NotNil(t, KernelActive)
	assert.NotNil(t, CompactRowsScannedTotal)
	assert.NotNil(t, CompactRowsSelectedTotal)
	assert.NotNil(t, CompactDurationSeconds)
	assert.NotNil(t, CompactErrorsTotal)
}

func TestKernelDispatchTotal_Labels(t *testing.T) {
	before := testutil.ToFloat64(KernelDispatchTotal.WithLabelValues("bitscan"))
	KernelDispatchTotal.WithLabelValues("bitscan").Inc()
	KernelDispatchTotal.WithLabelValues("unrolled").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(KernelDispatchTotal.WithLabelValues("bitscan")))
}

func TestCompactDurationSeconds_Observe(t *testing.T) {
	CompactDurationSeconds.WithLabelValues("array").Observe(0.0005)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(CompactDurationSeconds), 1)
}
