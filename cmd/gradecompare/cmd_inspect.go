package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gradecompare/internal/files"
	"gradecompare/internal/gradebook"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.xlsx>",
		Short: "Show what the loader reads from one gradebook export",
		Long: `Load a single gradebook export and print the snapshot date, the sheet it
was read from, the completed assessment count and the number of students.
Useful to check why a file is rejected or ordered unexpectedly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := files.EnsureXLSX(args[0])
			if err := files.NewValidator(a.logger).ValidateFile(path); err != nil {
				return err
			}

			snap, err := gradebook.NewLoader(a.logger).Load(cmd.Context(), path)
			if err != nil {
				return &ComparisonFailedError{Err: err}
			}

			missing := 0
			for _, r := range snap.Rows {
				if !r.HasGrade {
					missing++
				}
			}
			course, ok := files.ExtractCourseCode(path)
			if !ok {
				course = "(none)"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:            %s\n", snap.Path)
			fmt.Fprintf(out, "Course code:     %s\n", course)
			fmt.Fprintf(out, "Class:           %s\n", snap.ClassName())
			fmt.Fprintf(out, "Sheet:           %s\n", snap.SheetName)
			fmt.Fprintf(out, "Snapshot date:   %s\n", snap.Date.Format(displayDateLayout))
			fmt.Fprintf(out, "Graded column:   %s\n", snap.GradedHeader)
			fmt.Fprintf(out, "Graded count:    %d\n", snap.GradedCount)
			fmt.Fprintf(out, "Students:        %d\n", len(snap.Rows))
			fmt.Fprintf(out, "Missing grades:  %d\n", missing)
			return nil
		},
	}
}
