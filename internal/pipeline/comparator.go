package pipeline

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gradecompare/internal/comparison"
	apperrors "gradecompare/internal/errors"
	"gradecompare/internal/exporter"
	"gradecompare/internal/gradebook"
	"gradecompare/internal/infrastructure"
	"gradecompare/internal/report"
	"gradecompare/pkg/contracts/domain"
)

// Stage names used for spans and the stage duration metric.
const (
	StageLoad    = "load"
	StageCompare = "compare"
	StageRender  = "render"
	StageCSV     = "csv"
)

// Options configures a Comparator.
type Options struct {
	OutputDir string
	WriteCSV  bool
	Logger    *slog.Logger
	// Tracer defaults to the global otel tracer
	Tracer  trace.Tracer
	Metrics *infrastructure.BusinessMetrics
}

// Result describes a successful run.
type Result struct {
	Older      *domain.GradeSnapshot
	Newer      *domain.GradeSnapshot
	Report     *domain.ComparisonReport
	ReportPath string
	// CSVPath is empty unless the CSV twin was requested and written
	CSVPath string
	// CSVErr is set when the CSV twin failed; the xlsx report still stands
	CSVErr   error
	Duration time.Duration
}

// Comparator runs a full comparison: load both snapshots, compare them,
// render the xlsx report and optionally its CSV twin.
type Comparator struct {
	loader   *gradebook.Loader
	engine   *comparison.Engine
	renderer *report.Renderer
	csv      *exporter.ComparisonExporter

	tracer  trace.Tracer
	metrics *infrastructure.BusinessMetrics
	logger  *slog.Logger

	outputDir string
}

// NewComparator wires the pipeline stages.
func NewComparator(opts Options) *Comparator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(infrastructure.MeterName)
	}

	c := &Comparator{
		loader:    gradebook.NewLoader(logger),
		engine:    comparison.NewEngine(logger),
		renderer:  report.NewRenderer(logger),
		tracer:    tracer,
		metrics:   opts.Metrics,
		logger:    infrastructure.WithComponent(logger, "comparator"),
		outputDir: opts.OutputDir,
	}
	if opts.WriteCSV {
		c.csv = exporter.NewComparisonExporter(opts.OutputDir, logger)
	}
	return c
}

// Run compares the gradebook exports at pathA and pathB, in either order.
// No report file is written unless both snapshots load and the comparison
// succeeds. Failures are logged with a readable diagnostic and returned.
func (c *Comparator) Run(ctx context.Context, pathA, pathB string) (res *Result, err error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := c.tracer.Start(ctx, "comparison.run",
		trace.WithAttributes(
			attribute.String("input.a", pathA),
			attribute.String("input.b", pathB),
		))
	defer span.End()

	start := time.Now()
	defer func() {
		c.metrics.RecordComparison(ctx, time.Since(start), string(apperrors.TypeOf(err)))
		if err != nil {
			infrastructure.RecordError(ctx, err)
			c.logger.ErrorContext(ctx, "Comparison failed",
				slog.String("error_type", string(apperrors.TypeOf(err))),
				slog.String("error", err.Error()),
				slog.String("diagnostic", apperrors.UserMessage(err)))
		}
	}()

	res = &Result{}

	var a, b *domain.GradeSnapshot
	err = c.stage(ctx, StageLoad, func(ctx context.Context) error {
		var lerr error
		if a, lerr = c.load(ctx, pathA); lerr != nil {
			return lerr
		}
		b, lerr = c.load(ctx, pathB)
		return lerr
	})
	if err != nil {
		return nil, err
	}

	err = c.stage(ctx, StageCompare, func(ctx context.Context) error {
		rep, cerr := c.engine.Compare(ctx, a, b)
		if cerr != nil {
			return cerr
		}
		res.Report = rep
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Older, res.Newer = a, b
	if b.Date.Before(a.Date) {
		res.Older, res.Newer = b, a
	}
	c.metrics.RecordJoin(ctx, len(res.Report.Rows), len(res.Older.Rows)-len(res.Report.Rows))

	err = c.stage(ctx, StageRender, func(ctx context.Context) error {
		path, rerr := c.renderer.Write(ctx, res.Report, c.outputDir)
		res.ReportPath = path
		return rerr
	})
	if err != nil {
		return nil, err
	}

	if c.csv != nil {
		res.CSVErr = c.stage(ctx, StageCSV, func(ctx context.Context) error {
			path, xerr := c.csv.Export(res.Report, report.Headers(res.Report))
			if xerr != nil {
				return apperrors.NewSaveError(exporter.CSVName(res.Report.OutputName), xerr)
			}
			res.CSVPath = path
			return nil
		})
		if res.CSVErr != nil {
			c.logger.WarnContext(ctx, "CSV copy failed, xlsx report was written",
				slog.String("report", res.ReportPath),
				slog.String("error", res.CSVErr.Error()),
				slog.String("diagnostic", apperrors.UserMessage(res.CSVErr)))
		}
	}

	res.Duration = time.Since(start)
	span.SetAttributes(
		attribute.String("report.path", res.ReportPath),
		attribute.Int("report.students", len(res.Report.Rows)),
	)
	c.logger.InfoContext(ctx, "Comparison finished",
		slog.String("report", res.ReportPath),
		slog.String("csv", res.CSVPath),
		slog.Int("students", len(res.Report.Rows)),
		slog.Duration("duration", res.Duration))

	return res, nil
}

func (c *Comparator) load(ctx context.Context, path string) (*domain.GradeSnapshot, error) {
	snap, err := c.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordSnapshotLoaded(ctx)
	return snap, nil
}

// stage runs fn inside its own span and records its duration.
func (c *Comparator) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, "comparison."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	c.metrics.RecordStage(ctx, name, time.Since(start))
	if err != nil {
		infrastructure.RecordError(ctx, err)
	}
	return err
}
