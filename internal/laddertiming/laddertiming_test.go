package laddertiming_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/internal/laddertiming"
)

func TestAnalyzeGroupsByClass(t *testing.T) {
	samples := []laddertiming.Sample{
		{Class: "bit0", Duration: 100 * time.Microsecond},
		{Class: "bit0", Duration: 102 * time.Microsecond},
		{Class: "bit1", Duration: 101 * time.Microsecond},
		{Class: "bit1", Duration: 99 * time.Microsecond},
	}
	report, err := laddertiming.Analyze(samples)
	require.NoError(t, err)
	require.Len(t, report.Classes, 2)
	require.Equal(t, 2, report.Classes["bit0"].N)
	require.Equal(t, 2, report.Classes["bit1"].N)
}

func TestLooksConstantTimeAcceptsCloseMeans(t *testing.T) {
	samples := []laddertiming.Sample{
		{Class: "bit0", Duration: 100 * time.Microsecond},
		{Class: "bit0", Duration: 101 * time.Microsecond},
		{Class: "bit1", Duration: 100 * time.Microsecond},
		{Class: "bit1", Duration: 102 * time.Microsecond},
	}
	report, err := laddertiming.Analyze(samples)
	require.NoError(t, err)
	require.True(t, report.LooksConstantTime(3))
}

func TestLooksConstantTimeRejectsSkewedMeans(t *testing.T) {
	var samples []laddertiming.Sample
	for i := 0; i < 20; i++ {
		samples = append(samples,
			laddertiming.Sample{Class: "fast", Duration: 100 * time.Microsecond},
			laddertiming.Sample{Class: "slow", Duration: 500 * time.Microsecond},
		)
	}
	report, err := laddertiming.Analyze(samples)
	require.NoError(t, err)
	require.False(t, report.LooksConstantTime(0.5))
}
