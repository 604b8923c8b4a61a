package processing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/laplog/log"
	"github.com/mpapenbr/laplog/pkg/model"
	"github.com/mpapenbr/laplog/pkg/processing/lap"
	"github.com/mpapenbr/laplog/pkg/processing/race"
	"github.com/mpapenbr/laplog/pkg/processing/standings"
)

// LineError reports the input line which could not be parsed
type LineError struct {
	LineNo int // 1-based, counting blank lines
	Line   string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.LineNo, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type Processor struct {
	log        *log.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	collectAll bool
	newRunID   func() string

	linesParsed metric.Int64Counter
	linesFailed metric.Int64Counter
}

type ProcessorOption func(proc *Processor)

func WithLogger(l *log.Logger) ProcessorOption {
	return func(proc *Processor) {
		proc.log = l
	}
}

func WithTracer(tracer trace.Tracer) ProcessorOption {
	return func(proc *Processor) {
		proc.tracer = tracer
	}
}

func WithMeter(meter metric.Meter) ProcessorOption {
	return func(proc *Processor) {
		proc.meter = meter
	}
}

// WithCollectAll makes the processor check all lines before failing.
// All line errors are reported, still no report is created.
func WithCollectAll(collect bool) ProcessorOption {
	return func(proc *Processor) {
		proc.collectAll = collect
	}
}

func WithRunIDGenerator(gen func() string) ProcessorOption {
	return func(proc *Processor) {
		proc.newRunID = gen
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{
		log:      log.Default().Named("processing"),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tracer == nil {
		ret.tracer = otel.Tracer("laplog")
	}
	if ret.meter == nil {
		ret.meter = otel.Meter("laplog.processing")
	}
	ret.setupMetrics()
	return ret
}

func (p *Processor) setupMetrics() {
	var err error
	if p.linesParsed, err = p.meter.Int64Counter("laplog.lines.parsed",
		metric.WithDescription("Number of parsed lap lines"),
		metric.WithUnit("{count}")); err != nil {
		p.log.Error("failed to register metric", log.ErrorField(err))
		p.linesParsed = noop.Int64Counter{}
	}
	if p.linesFailed, err = p.meter.Int64Counter("laplog.lines.failed",
		metric.WithDescription("Number of lines which could not be parsed"),
		metric.WithUnit("{count}")); err != nil {
		p.log.Error("failed to register metric", log.ErrorField(err))
		p.linesFailed = noop.Int64Counter{}
	}
}

// Process parses lines and creates the ranked report.
// Blank lines are skipped. If any line cannot be parsed no report is
// created and the error contains a *LineError.
func (p *Processor) Process(ctx context.Context, lines []string) (*model.Report, error) {
	ctx, span := p.tracer.Start(ctx, "process")
	defer span.End()

	runID := p.newRunID()
	l := p.log.With(log.String("runId", runID))

	records, err := p.Parse(ctx, lines)
	if err != nil {
		l.Warn("no report created", log.ErrorField(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, err
	}

	_, aggSpan := p.tracer.Start(ctx, "aggregate")
	agg := race.Aggregate(records)
	aggSpan.SetAttributes(attribute.Int("drivers", len(agg.Order)))
	aggSpan.End()

	report := standings.Build(agg)
	report.RunID = runID
	l.Debug("report created",
		log.Int("records", len(records)),
		log.Int("drivers", len(report.Standings)))
	return &report, nil
}

// Parse converts lines to lap records.
func (p *Processor) Parse(ctx context.Context, lines []string) ([]model.LapRecord, error) {
	ctx, span := p.tracer.Start(ctx, "parse",
		trace.WithAttributes(attribute.Int("lines", len(lines))))
	defer span.End()

	records := make([]model.LapRecord, 0, len(lines))
	var errs []error
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		r, err := lap.ParseLine(line)
		if err != nil {
			p.linesFailed.Add(ctx, 1)
			lineErr := &LineError{LineNo: i + 1, Line: line, Err: err}
			p.log.Debug("invalid line",
				log.Int("lineNo", lineErr.LineNo),
				log.String("line", line),
				log.ErrorField(err))
			if !p.collectAll {
				return nil, lineErr
			}
			errs = append(errs, lineErr)
			continue
		}
		p.linesParsed.Add(ctx, 1)
		records = append(records, r)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return records, nil
}

// SplitLines splits a log text into lines.
// Line numbers of the result match the line numbers of text.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
