// Package comparison orders two gradebook snapshots, joins them on the
// student key and picks the most improved and biggest decline students.
package comparison
