package main

import (
	"errors"
	"fmt"
	"os"

	apperrors "gradecompare/internal/errors"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Report written
	ExitComparisonFailed = 1 // Inputs were valid but could not be compared or saved
	ExitError            = 2 // Usage or configuration error
)

// ComparisonFailedError marks failures raised after the inputs were
// resolved: loading, comparing or saving the report.
type ComparisonFailedError struct {
	Err error
}

func (e *ComparisonFailedError) Error() string {
	return e.Err.Error()
}

func (e *ComparisonFailedError) Unwrap() error {
	return e.Err
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", apperrors.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var failed *ComparisonFailedError
	if errors.As(err, &failed) {
		return ExitComparisonFailed
	}
	return ExitError
}
