package errors

import (
	stderrors "errors"
	"fmt"
)

// TypeOf returns the ErrorType of the first AppError in err's chain, or the
// empty string when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// UserMessage renders err as the diagnostic shown to the person running a
// comparison.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}

	switch appErr.Type {
	case ErrTypeDateExtraction:
		return fmt.Sprintf("File loading failed: %s. Name the sheet with MM-DD-YYYY or the file with DDMonYYYY.", appErr.Message)
	case ErrTypeMissingGradedColumn:
		return fmt.Sprintf("Comparison error: %s.", appErr.Message)
	case ErrTypeAmbiguousOrder:
		return fmt.Sprintf("Comparison aborted: %s.", appErr.Message)
	case ErrTypeTimelineInversion:
		return fmt.Sprintf("Invalid timeline: %s. Please ensure the older file is truly chronologically before the newer file.", appErr.Message)
	case ErrTypeOutputLocked:
		path, _ := appErr.Context["path"].(string)
		return fmt.Sprintf("Permission denied. Please ensure the output file '%s' is CLOSED and not open in Excel or any other program, then run again.", path)
	case ErrTypeSave:
		return fmt.Sprintf("An unexpected error occurred during saving: %v", appErr.Cause)
	default:
		return appErr.Error()
	}
}
