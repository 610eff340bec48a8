package benchmark_test

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/callback-slot-go/example/benchmark"
)

func Test_Report_JSON(t *testing.T) {
	clock := newFakeClock()
	report := benchmark.NewReport(clock)

	report.Add(benchmark.Result{
		Name:       "tiger king",
		Mode:       benchmark.ModeSequential,
		Iterations: 10,
		Workers:    1,
		Total:      10 * time.Microsecond,
		PerOp:      time.Microsecond,
	})

	encoded, err := report.JSON()
	require.NoError(t, err)

	var decoded struct {
		RunID     string    `json:"run_id"`
		StartedAt time.Time `json:"started_at"`
		Results   []struct {
			Name    string `json:"name"`
			Mode    string `json:"mode"`
			Workers int    `json:"workers"`
			TotalNS int64  `json:"total_ns"`
			PerOpNS int64  `json:"per_op_ns"`
		} `json:"results"`
	}
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(encoded, &decoded))

	assert.Equal(t, report.RunID().String(), decoded.RunID)
	assert.True(t, clock.Now().Equal(decoded.StartedAt))
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "tiger king", decoded.Results[0].Name)
	assert.Equal(t, int64(10_000), decoded.Results[0].TotalNS)
	assert.Equal(t, int64(1_000), decoded.Results[0].PerOpNS)
}

func Test_Report_RunIDsDiffer(t *testing.T) {
	clock := newFakeClock()

	assert.NotEqual(t, benchmark.NewReport(clock).RunID(), benchmark.NewReport(clock).RunID())
}

func Test_Report_Results_ReturnsCopy(t *testing.T) {
	report := benchmark.NewReport(newFakeClock())
	report.Add(benchmark.Result{Name: "a"})

	results := report.Results()
	results[0].Name = "b"

	assert.Equal(t, "a", report.Results()[0].Name)
}
