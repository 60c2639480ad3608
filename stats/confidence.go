package stats

import "gonum.org/v1/gonum/stat/distuv"

var stdNormal = distuv.UnitNormal

// ZVal is the two-sided critical value for a confidence level given in
// percent, so ZVal(95) is about 1.96.
func ZVal(confidence float64) float64 {
	return stdNormal.Quantile(0.5 + confidence/200)
}
