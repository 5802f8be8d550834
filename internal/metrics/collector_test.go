package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// promauto 注册到默认注册表，整个测试二进制只创建一次收集器。
var testCollector *Collector

func collector(t *testing.T) *Collector {
	if testCollector == nil {
		testCollector = NewCollector("queryflow_test", zaptest.NewLogger(t))
	}
	return testCollector
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.RecordRetrieval("hybrid", "ok", time.Millisecond, 3)
	c.RecordLadderRetry("loosen")
	c.RecordVectorMismatch()
	c.RecordTokenize("coarse", time.Millisecond)
	c.RecordDFSRuns(2)
	c.RecordSynonymLookup(true)
	c.RecordSynonymRefresh("ok")
}

func TestRecordRetrieval(t *testing.T) {
	c := collector(t)
	before := counterValue(t, c.retrievalsTotal.WithLabelValues("ok"))
	c.RecordRetrieval("hybrid", "ok", 50*time.Millisecond, 10)
	c.RecordRetrieval("listing", "ok", time.Millisecond, 0)
	assert.Equal(t, before+2, counterValue(t, c.retrievalsTotal.WithLabelValues("ok")))
}

func TestRecordLadderRetry(t *testing.T) {
	c := collector(t)
	before := counterValue(t, c.ladderRetries.WithLabelValues("loosen"))
	c.RecordLadderRetry("loosen")
	assert.Equal(t, before+1, counterValue(t, c.ladderRetries.WithLabelValues("loosen")))
}

func TestRecordVectorMismatch(t *testing.T) {
	c := collector(t)
	before := counterValue(t, c.vectorMismatches)
	c.RecordVectorMismatch()
	c.RecordVectorMismatch()
	assert.Equal(t, before+2, counterValue(t, c.vectorMismatches))
}

func TestRecordDFSRuns(t *testing.T) {
	c := collector(t)
	before := counterValue(t, c.dfsRunsTotal)
	c.RecordDFSRuns(3)
	c.RecordDFSRuns(0)
	c.RecordDFSRuns(-1)
	assert.Equal(t, before+3, counterValue(t, c.dfsRunsTotal), "non-positive deltas are ignored")
}

func TestRecordSynonymLookup(t *testing.T) {
	c := collector(t)
	hitBefore := counterValue(t, c.synonymLookups.WithLabelValues("true"))
	missBefore := counterValue(t, c.synonymLookups.WithLabelValues("false"))
	c.RecordSynonymLookup(true)
	c.RecordSynonymLookup(false)
	c.RecordSynonymLookup(false)
	assert.Equal(t, hitBefore+1, counterValue(t, c.synonymLookups.WithLabelValues("true")))
	assert.Equal(t, missBefore+2, counterValue(t, c.synonymLookups.WithLabelValues("false")))
}

func TestRecordSynonymRefresh(t *testing.T) {
	c := collector(t)
	before := counterValue(t, c.synonymRefreshes.WithLabelValues("error"))
	c.RecordSynonymRefresh("error")
	assert.Equal(t, before+1, counterValue(t, c.synonymRefreshes.WithLabelValues("error")))
}
