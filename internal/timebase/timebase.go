// Package timebase converts between source sample times and target frame numbers.
package timebase

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is matched by every DomainError
var ErrDomain = errors.New("invalid numeric domain")

// DomainError reports a rate that cannot be divided by or scaled with
type DomainError struct {
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s must be a positive finite number, got %v", e.Param, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// ValidateRates rejects zero, negative and non-finite sample rates
func ValidateRates(recordingFPS, targetFPS float64) error {
	if !validRate(recordingFPS) {
		return &DomainError{Param: "recording fps", Value: recordingFPS}
	}
	if !validRate(targetFPS) {
		return &DomainError{Param: "target fps", Value: targetFPS}
	}
	return nil
}

func validRate(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Round rounds to the nearest integer, halves away from zero (2.5 -> 3, -2.5 -> -3)
func Round(x float64) int {
	return int(math.Round(x))
}

// TimeToFrame converts a sample time recorded at recordingFPS into a frame
// number at targetFPS, offset by startFrame.
func TimeToFrame(timeValue, recordingFPS, targetFPS float64, startFrame int) (int, error) {
	if err := ValidateRates(recordingFPS, targetFPS); err != nil {
		return 0, err
	}
	seconds := timeValue / recordingFPS
	return startFrame + Round(seconds*targetFPS), nil
}
