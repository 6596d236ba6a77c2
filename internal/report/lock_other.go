//go:build !windows

package report

// isLockViolation reports whether err comes from a file held open by
// another process. Only Windows enforces mandatory share locks.
func isLockViolation(error) bool {
	return false
}
