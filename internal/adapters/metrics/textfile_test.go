package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

func TestTextfileRecorder_ObserveCheck(t *testing.T) {
	r := NewTextfileRecorder(&config.RuntimeConfig{})

	r.ObserveCheck("development", domain.CheckResult{Accessor: "name", Status: domain.CheckPassed, Duration: 10 * time.Millisecond})
	r.ObserveCheck("development", domain.CheckResult{Accessor: "symbol", Status: domain.CheckFailed, Duration: 12 * time.Millisecond})
	r.ObserveCheck("development", domain.CheckResult{Accessor: "decimals", Status: domain.CheckSkipped})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.checksTotal.WithLabelValues("development", "name", "pass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.checksTotal.WithLabelValues("development", "symbol", "fail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.checksTotal.WithLabelValues("development", "decimals", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.lastRun.WithLabelValues("development", "name")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.lastRun.WithLabelValues("development", "symbol")))

	// skipped checks make no call
	assert.Equal(t, 2, testutil.CollectAndCount(r.callDuration))
}

func TestTextfileRecorder_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokencheck.prom")
	r := NewTextfileRecorder(&config.RuntimeConfig{MetricsFile: path})

	r.ObserveCheck("rinkeby", domain.CheckResult{Accessor: "symbol", Status: domain.CheckPassed})
	require.NoError(t, r.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tokencheck_checks_total{accessor="symbol",environment="rinkeby",status="pass"} 1`)
}

func TestTextfileRecorder_FlushWithoutPath(t *testing.T) {
	r := NewTextfileRecorder(&config.RuntimeConfig{})
	assert.NoError(t, r.Flush())
}
