// Package config provides configuration management for gradecompare.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, later ones winning:
//
//  1. Default values (Default)
//  2. A YAML file (--config, gradecompare.yaml or configs/gradecompare.yaml)
//  3. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern GRADECMP_<SECTION>_<FIELD>:
//
//	GRADECMP_LOGGING_LEVEL=debug
//	GRADECMP_REPORT_OUTPUT_DIR=/srv/reports
//	GRADECMP_REPORT_WRITE_CSV=true
//	GRADECMP_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Constants
//
// The gradebook layout (key column position, "Course grade" header) and the
// comparison thresholds (TinyChange, FractionScaleLimit) live in
// constants.go. They are part of the export format, not tunables.
package config
