package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMetric(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{12.3456, "ms", "12.35 ms"},
		{0, "ms", "0.00 ms"},
		{99.86, "%", "99.9%"},
		{100, "%", "100.0%"},
		{1500.25, "", "1,500"},
		{1234567.0, "", "1,234,567"},
		{999.999, "", "1000.00"},
		{42.5, "", "42.50"},
		{0, "", "0.00"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v_%s", tc.value, tc.unit), func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMetric(tc.value, tc.unit))
		})
	}
}

func TestDelta(t *testing.T) {
	rps := MetricSpec{Key: "rps", Better: HigherIsBetter}
	p95 := MetricSpec{Key: "p95", Unit: "ms", Better: LowerIsBetter}
	success := MetricSpec{Key: "success_rate", Unit: "%", Better: HigherIsBetter, DeltaPoints: true}

	t.Run("higher is better gains a plus sign", func(t *testing.T) {
		assert.Equal(t, "+25.0%", Delta(rps, 125, 100))
	})

	t.Run("higher is better regression is negative", func(t *testing.T) {
		assert.Equal(t, "-25.0%", Delta(rps, 75, 100))
	})

	t.Run("lower is better inverts the sign", func(t *testing.T) {
		assert.Equal(t, "+25.0%", Delta(p95, 7.5, 10))
		assert.Equal(t, "-25.0%", Delta(p95, 12.5, 10))
	})

	t.Run("equal means read as zero", func(t *testing.T) {
		assert.Equal(t, "0.0%", Delta(rps, 100, 100))
	})

	t.Run("percentage points", func(t *testing.T) {
		assert.Equal(t, "-0.2pp", Delta(success, 99.8, 100))
		assert.Equal(t, "+0.0pp", Delta(success, 100, 100))
	})

	t.Run("zero laravel mean yields blank", func(t *testing.T) {
		assert.Equal(t, "", Delta(rps, 125, 0))
		assert.Equal(t, "", Delta(success, 99.8, 0))
	})
}

func TestScenarioLabel(t *testing.T) {
	assert.Equal(t, "1. Static Route (Baseline)", ScenarioLabel("01_static_route"))
	assert.Equal(t, "99_custom_probe", ScenarioLabel("99_custom_probe"))
}
