// Package pipeline runs a complete gradebook comparison: load, compare,
// render and the optional CSV export, each stage traced and timed.
package pipeline
