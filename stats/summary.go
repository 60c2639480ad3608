package stats

import (
	"fmt"
	"io"
	"slices"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a finished sample, such as the scores of an autoplay
// run.
type Summary struct {
	N      int     `json:"n" yaml:"n"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Stdev  float64 `json:"stdev" yaml:"stdev"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	// CI95 is the half-width of the 95% confidence interval of the mean.
	CI95 float64 `json:"ci95" yaml:"ci95"`
}

func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sum := Summary{
		N:      len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		sum.Stdev = stat.StdDev(sorted, nil)
		sum.CI95 = ZVal(95) * stat.StdErr(sum.Stdev, float64(len(sorted)))
	}
	return sum
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.2f±%.2f stdev=%.2f median=%.1f range=[%.0f, %.0f]",
		s.N, s.Mean, s.CI95, s.Stdev, s.Median, s.Min, s.Max)
}

// HistogramBins is the number of bars in printed histograms.
const HistogramBins = 10

// Histogram buckets values for display.
func Histogram(values []float64) histogram.Histogram {
	return histogram.Hist(HistogramBins, values)
}

// FprintHistogram draws values as a text histogram of the given width.
func FprintHistogram(w io.Writer, values []float64, width int) error {
	if len(values) == 0 {
		_, err := fmt.Fprintln(w, "(no data)")
		return err
	}
	return histogram.Fprint(w, Histogram(values), histogram.Linear(width))
}
