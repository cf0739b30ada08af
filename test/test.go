// Package test contains helper functions for the testing of the rest of the
// project. The helpers report failure through testing.T but do not stop the
// test, so that a single run shows every failing expectation.
package test

import "testing"

type number interface {
	~int | ~int8 | ~int32 | ~int64 | ~float32 | ~float64
}

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test that a value is not equal to another
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectApproximate is used to test that a value is within tolerance of an
// expected value, in either direction
func ExpectApproximate[T number](t *testing.T, value T, expectedValue T, tolerance T) bool {
	t.Helper()
	diff := value - expectedValue
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		t.Errorf("approximation test of type %T failed: '%v' is more than '%v' from '%v'", value, value, tolerance, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess is used to test that a value is true
func ExpectSuccess(t *testing.T, value bool) bool {
	t.Helper()
	if !value {
		t.Errorf("success test failed")
		return false
	}
	return true
}

// ExpectFailure is used to test that a value is false
func ExpectFailure(t *testing.T, value bool) bool {
	t.Helper()
	if value {
		t.Errorf("failure test failed")
		return false
	}
	return true
}
