// Package stats keeps running statistics over game results.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance (Welford's algorithm).
type Statistic struct {
	n    int
	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

// Merge folds o into s as if every value pushed to o had been pushed to s.
func (s *Statistic) Merge(o Statistic) {
	if o.n == 0 {
		return
	}
	if s.n == 0 {
		*s = o
		return
	}
	n := s.n + o.n
	delta := o.mean - s.mean
	s.mean += delta * float64(o.n) / float64(n)
	s.m2 += o.m2 + delta*delta*float64(s.n)*float64(o.n)/float64(n)
	s.n = n
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Iterations() int {
	return s.n
}

// ZVal returns the two-tailed Z-value for a confidence interval given in
// percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

// HalfWidth is the half-width of the confidence interval around the mean.
func (s *Statistic) HalfWidth(confidenceInterval float64) float64 {
	return ZVal(confidenceInterval) * s.StandardError()
}

// Summary is a Statistic flattened for reports.
type Summary struct {
	Mean  float64 `yaml:"mean"`
	Stdev float64 `yaml:"stdev"`
	CI95  float64 `yaml:"ci95"`
}

func (s *Statistic) Summary() Summary {
	return Summary{Mean: s.Mean(), Stdev: s.Stdev(), CI95: s.HalfWidth(95)}
}
