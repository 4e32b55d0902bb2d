package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Gatherer().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ConnectionAttempt()
	m.ConnectionAttempt()
	m.SessionFailure()
	m.InboundLine("keepalive")
	m.ObserveCommand("frames", "ok")
	m.ObserveCommand("frames", "ok")

	attempts := findFamily(t, m, "framebot_connection_attempts_total")
	require.NotNil(t, attempts)
	assert.Equal(t, 2.0, attempts.GetMetric()[0].GetCounter().GetValue())

	failures := findFamily(t, m, "framebot_session_failures_total")
	require.NotNil(t, failures)
	assert.Equal(t, 1.0, failures.GetMetric()[0].GetCounter().GetValue())

	commands := findFamily(t, m, "framebot_commands_total")
	require.NotNil(t, commands)
	require.Len(t, commands.GetMetric(), 1)
	assert.Equal(t, 2.0, commands.GetMetric()[0].GetCounter().GetValue())
}

func TestMetrics_SetState(t *testing.T) {
	m := New()
	all := []string{"disconnected", "connecting", "listening"}

	m.SetState("listening", all)

	family := findFamily(t, m, "framebot_session_state")
	require.NotNil(t, family)
	values := map[string]float64{}
	for _, metric := range family.GetMetric() {
		values[metric.GetLabel()[0].GetValue()] = metric.GetGauge().GetValue()
	}
	assert.Equal(t, map[string]float64{"disconnected": 0, "connecting": 0, "listening": 1}, values)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ConnectionAttempt()
		m.SessionFailure()
		m.InboundLine("ignored")
		m.ObserveCommand("frames", "ok")
		m.SetState("listening", []string{"listening"})
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ConnectionAttempt()

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "framebot_connection_attempts_total 1")
}
