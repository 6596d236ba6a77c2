package files

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "gradecompare/internal/errors"
)

// InputPair is a validated pair of gradebook exports for the same course.
type InputPair struct {
	First      string
	Second     string
	CourseCode string
}

// Validator checks input and output locations before a comparison runs.
type Validator struct {
	logger *slog.Logger
}

// NewValidator creates a new file validator
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger}
}

// ValidateInputs resolves two user-supplied export names and checks that
// both exist and belong to the same course. Names without an extension get
// .xlsx appended.
func (v *Validator) ValidateInputs(first, second string) (*InputPair, error) {
	pair := &InputPair{First: EnsureXLSX(first), Second: EnsureXLSX(second)}

	for _, path := range []string{pair.First, pair.Second} {
		if err := v.ValidateFile(path); err != nil {
			return nil, err
		}
	}

	code1, ok1 := ExtractCourseCode(pair.First)
	code2, ok2 := ExtractCourseCode(pair.Second)
	if !ok1 || !ok2 {
		v.logger.Error("Could not identify course code",
			slog.String("first", pair.First),
			slog.String("second", pair.Second))
		return nil, apperrors.NewAppValidationError(
			"could not identify the course code (e.g. MTH1Wa) in one or both file names").
			WithContext("first", pair.First).
			WithContext("second", pair.Second)
	}
	if code1 != code2 {
		v.logger.Error("Course code mismatch",
			slog.String("first_course", code1),
			slog.String("second_course", code2))
		return nil, apperrors.NewAppValidationError(
			fmt.Sprintf("course mismatch: %s vs %s, choose files for the same course", code1, code2)).
			WithContext("first_course", code1).
			WithContext("second_course", code2)
	}
	pair.CourseCode = code1

	v.logger.Info("Input files validated",
		slog.String("course", code1),
		slog.String("first", pair.First),
		slog.String("second", pair.Second))
	return pair, nil
}

// ValidateFile checks if a specific file exists and is readable
func (v *Validator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return apperrors.NewNotFoundError(fmt.Sprintf("file %s", path)).
			WithContext("path", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewAppError(apperrors.ErrTypeValidation,
			fmt.Sprintf("failed to stat file %s", path), err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewAppValidationError(fmt.Sprintf("%s is a directory, not a file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewAppError(apperrors.ErrTypeValidation,
			fmt.Sprintf("file %s is not readable", path), err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *Validator) ValidateOutputDirectory(dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewAppError(apperrors.ErrTypeValidation,
			fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	// Verify it's writable by creating a probe file
	probe, err := os.CreateTemp(dir, ".write_test_*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewAppError(apperrors.ErrTypeValidation,
			fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	v.logger.Debug("Output directory validated",
		slog.String("directory", filepath.Clean(dir)))
	return nil
}
