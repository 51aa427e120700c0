package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// grouped prints numbers with English thousands separators.
var grouped = message.NewPrinter(language.English)

// FormatMetric renders a metric value with its unit. Unit-less values above
// 1000 are request counts and read better grouped without decimals.
func FormatMetric(value float64, unit string) string {
	switch {
	case unit == "ms":
		return fmt.Sprintf("%.2f ms", value)
	case unit == "%":
		return fmt.Sprintf("%.1f%%", value)
	case value > 1000:
		return grouped.Sprintf("%.0f", value)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

// Delta renders the comparison between the two targets' means for one
// metric, sign-adjusted so a positive value always favors razy. It is blank
// when the laravel mean is 0, since a comparison against nothing says
// nothing.
func Delta(spec MetricSpec, razyMean, laravelMean float64) string {
	if laravelMean == 0 {
		return ""
	}
	if spec.DeltaPoints {
		return fmt.Sprintf("%+.1fpp", razyMean-laravelMean)
	}

	var pct float64
	if spec.Better == LowerIsBetter {
		pct = (laravelMean - razyMean) / laravelMean * 100
	} else {
		pct = (razyMean - laravelMean) / laravelMean * 100
	}
	if pct > 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}
