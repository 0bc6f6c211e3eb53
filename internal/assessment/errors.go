package assessment

import (
	"errors"
	"fmt"

	"btyesteem/internal/model"
)

// ErrInvalidInput marks malformed submissions (wrong vector length,
// out-of-range answers). Callers test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

func validateAnswers(answers []int) error {
	if len(answers) != model.ItemCount {
		return fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidInput, model.ItemCount, len(answers))
	}
	for i, a := range answers {
		if a < model.ScaleMin || a > model.ScaleMax {
			return fmt.Errorf("%w: answer %d at index %d outside scale [%d,%d]",
				ErrInvalidInput, a, i, model.ScaleMin, model.ScaleMax)
		}
	}
	return nil
}

// validateResponseTimes accepts an empty slice (timing data is optional)
// or a full-length vector of non-negative seconds.
func validateResponseTimes(times []float64) error {
	if len(times) == 0 {
		return nil
	}
	if len(times) != model.ItemCount {
		return fmt.Errorf("%w: expected %d response times, got %d", ErrInvalidInput, model.ItemCount, len(times))
	}
	for i, t := range times {
		if t < 0 {
			return fmt.Errorf("%w: negative response time at index %d", ErrInvalidInput, i)
		}
	}
	return nil
}
