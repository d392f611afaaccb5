// Package aoc are quick & dirty utilities for reading Advent of Code
// puzzle input and checking answers against known samples.
package aoc

import (
	"fmt"
	"os"

	"golang.org/x/exp/constraints"
)

// ReadInput returns the contents of the puzzle input file at path.
func ReadInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

// Wrap returns i+1 modulo n. It panics if n is not positive.
func Wrap[T constraints.Integer](i, n T) T {
	if n <= 0 {
		panic(fmt.Sprintf("bogus wrap length %v", n))
	}
	i++
	if i >= n {
		return 0
	}
	return i
}

// SampleError reports a sample whose computed answer did not match.
type SampleError struct {
	Name      string
	Got, Want string
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("for %v sample, got=%v; want %v", e.Name, e.Got, e.Want)
}

// CheckSample compares got against the known answer want for the named
// sample. Values are compared by their fmt.Sprint form.
func CheckSample(name string, got, want any) error {
	g, w := fmt.Sprint(got), fmt.Sprint(want)
	if g != w {
		return &SampleError{Name: name, Got: g, Want: w}
	}
	return nil
}
