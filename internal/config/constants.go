package config

// Application constants
const (
	// Application Info
	AppName = "gradecompare"

	// EnvPrefix namespaces every environment variable (GRADECMP_LOGGING_LEVEL, ...)
	EnvPrefix = "GRADECMP"

	// Default snapshot pair used when the command line names no files
	DefaultOlderFile = "SHEN-MTH1Wa_grades_28Nov2025.xlsx"
	DefaultNewerFile = "SHEN-MTH1Wa_grades_30Nov2025.xlsx"

	// Log Settings
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultLogOutput   = "console"
	DefaultLogFilePath = "logs/gradecompare.log"
)

// Gradebook export layout
const (
	CourseGradeHeader = "Course grade"
	// KeyColumnIndex is the zero-based position of the student key column.
	KeyColumnIndex = 2
	// ClassColumnIndex holds the course section on every row.
	ClassColumnIndex = 1
)

// Comparison thresholds
const (
	// TinyChange is the absolute grade delta, in percentage points, at or
	// below which a change counts as no change.
	TinyChange = 0.01
	// FractionScaleLimit is the exclusive upper bound under which a positive
	// grade is read as a 0-1 fraction and multiplied by 100.
	FractionScaleLimit = 1.5
)

// Report layout
const (
	ReportSheetName      = "Grade Report"
	MostImprovedTag      = "🥇 MOST IMPROVED"
	BiggestDeclineTag    = "🔻 BIGGEST DROP"
	ReportNameDateLayout = "02Jan2006"
)
