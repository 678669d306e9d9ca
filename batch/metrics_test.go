package batch

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	const engine = "metrics-test"
	record(Report{
		Instance: "metrics-ins", Engine: engine,
		From: 9, To: 6, Restarts: 2, Saved: true, Best: 6, Duration: time.Second,
	})
	record(Report{Engine: engine, Err: errors.New("boom")})
	// a worse run on a later file leaves the stored best in place
	record(Report{
		Instance: "metrics-ins", Engine: engine,
		From: 8, To: 8, Best: 6, Duration: time.Second,
	})

	assert.Equal(t, 3.0, testutil.ToFloat64(filesProcessed.WithLabelValues(engine)))
	assert.Equal(t, 1.0, testutil.ToFloat64(filesFailed.WithLabelValues(engine)))
	assert.Equal(t, 3.0, testutil.ToFloat64(colorReductions.WithLabelValues(engine)))
	assert.Equal(t, 2.0, testutil.ToFloat64(stuckRestarts.WithLabelValues(engine)))
	assert.Equal(t, 1.0, testutil.ToFloat64(improvementsSaved.WithLabelValues(engine)))
	assert.Equal(t, 6.0, testutil.ToFloat64(bestColors.WithLabelValues("metrics-ins")))
}
