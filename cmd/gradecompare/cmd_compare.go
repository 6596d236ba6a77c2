package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	apperrors "gradecompare/internal/errors"
	"gradecompare/internal/files"
	"gradecompare/internal/pipeline"
	"gradecompare/pkg/contracts/domain"
)

const displayDateLayout = "01-02-2006"

type compareOptions struct {
	outputDir string
	writeCSV  bool
}

func newCompareCommand(a *app) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare [older.xlsx newer.xlsx]",
		Short: "Compare two gradebook exports and write the report",
		Long: `Compare two gradebook exports of the same course.

With no arguments the default pair from the configuration is used. File
names may omit the .xlsx extension. The files can be given in either order;
the snapshot dates decide which one is older.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 file names, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for the report (default from config)")
	cmd.Flags().BoolVar(&opts.writeCSV, "csv", false, "Also write the report as CSV")

	return cmd
}

func runCompare(cmd *cobra.Command, a *app, opts *compareOptions, args []string) error {
	first, second := a.cfg.Report.DefaultOlder, a.cfg.Report.DefaultNewer
	if len(args) == 2 {
		first, second = args[0], args[1]
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = a.cfg.Report.OutputDir
	}
	writeCSV := opts.writeCSV || a.cfg.Report.WriteCSV

	validator := files.NewValidator(a.logger)
	pair, err := validator.ValidateInputs(first, second)
	if err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(outputDir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Class match (%s). Files found.\n", pair.CourseCode)

	comparator := pipeline.NewComparator(pipeline.Options{
		OutputDir: outputDir,
		WriteCSV:  writeCSV,
		Logger:    a.logger,
		Tracer:    a.providers.Tracer,
		Metrics:   a.metrics,
	})

	res, err := comparator.Run(cmd.Context(), pair.First, pair.Second)
	if err != nil {
		return &ComparisonFailedError{Err: err}
	}

	printSummary(out, res)
	return nil
}

func printSummary(out io.Writer, res *pipeline.Result) {
	fmt.Fprintf(out, "🔍 Older snapshot date: %s. Newer snapshot date: %s.\n",
		res.Report.OlderDate.Format(displayDateLayout),
		res.Report.NewerDate.Format(displayDateLayout))
	fmt.Fprintf(out, "   Graded assessments: %d -> %d\n", res.Older.GradedCount, res.Newer.GradedCount)
	fmt.Fprintf(out, "   Students compared: %d\n", len(res.Report.Rows))
	fmt.Fprintf(out, "   Most improved: %s\n", studentNames(res.Report, res.Report.MostImproved()))
	fmt.Fprintf(out, "   Biggest drop: %s\n", studentNames(res.Report, res.Report.BiggestDecline()))
	fmt.Fprintf(out, "\n✅ Success! Report generated and saved as '%s'\n", res.ReportPath)
	if res.CSVPath != "" {
		fmt.Fprintf(out, "   CSV copy saved as '%s'\n", res.CSVPath)
	}
	if res.CSVErr != nil {
		fmt.Fprintf(out, "⚠️ CSV copy not written: %s\n", apperrors.UserMessage(res.CSVErr))
	}
}

func studentNames(report *domain.ComparisonReport, keys []string) string {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	var names []string
	for _, row := range report.Rows {
		if want[row.Key] {
			names = append(names, row.Display[0])
		}
	}
	return strings.Join(names, ", ")
}
