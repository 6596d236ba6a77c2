//go:build windows

package report

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// isLockViolation reports whether err comes from a file held open by
// another process, as Excel does with an open workbook.
func isLockViolation(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return errno == windows.ERROR_SHARING_VIOLATION || errno == windows.ERROR_LOCK_VIOLATION
}
