package signal

import (
	"github.com/montanaflynn/stats"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// Summary holds descriptive statistics of a signal.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summarize computes a [Summary] of x. StdDev is the population standard
// deviation. An empty signal is an INSUFFICIENT_LENGTH error.
func Summarize(x []float64) (Summary, error) {
	if len(x) == 0 {
		return Summary{}, errors.New(errors.ErrCodeInsufficientLength, "cannot summarize an empty signal")
	}
	data := stats.Float64Data(x)

	s := Summary{N: len(x)}
	var err error
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "mean")
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "standard deviation")
	}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "min")
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "max")
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "median")
	}
	return s, nil
}
