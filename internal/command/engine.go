package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-planner/internal/catalog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-planner/internal/command"

// Engine executes commands against a model and keeps the undo and redo
// stacks. All methods are safe to call from several goroutines; commands are
// applied one at a time.
type Engine struct {
	mu     sync.Mutex
	model  *catalog.Model
	logger *slog.Logger
	tracer trace.Tracer

	undoStack []Command
	redoStack []Command

	executed metric.Int64Counter
	rejected metric.Int64Counter
	undone   metric.Int64Counter
	redone   metric.Int64Counter
}

type options struct {
	logger         *slog.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = provider
	}
}

func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = provider
	}
}

// NewEngine returns an engine over model. Without options it logs to
// slog.Default and uses the global otel providers.
func NewEngine(model *catalog.Model, opts ...Option) (*Engine, error) {
	o := options{
		logger:         slog.Default(),
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	meter := o.meterProvider.Meter(instrumentationName)

	executed, err1 := meter.Int64Counter("planner.commands.executed",
		metric.WithDescription("Commands applied to the catalog"))
	rejected, err2 := meter.Int64Counter("planner.commands.rejected",
		metric.WithDescription("Commands that failed before changing the catalog"))
	undone, err3 := meter.Int64Counter("planner.commands.undone",
		metric.WithDescription("Commands reverted by undo"))
	redone, err4 := meter.Int64Counter("planner.commands.redone",
		metric.WithDescription("Commands reapplied by redo"))

	err := errors.Join(err1, err2, err3, err4)
	if err != nil {
		return nil, fmt.Errorf("failed to create command metrics: %w", err)
	}

	return &Engine{
		model:    model,
		logger:   o.logger,
		tracer:   o.tracerProvider.Tracer(instrumentationName),
		executed: executed,
		rejected: rejected,
		undone:   undone,
		redone:   redone,
	}, nil
}

// Execute runs cmd against the model. On failure the catalog is left as it
// was and cmd is not recorded. A successful execution clears the redo stack.
func (e *Engine) Execute(ctx context.Context, cmd Command) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := e.tracer.Start(ctx, "command.execute", trace.WithAttributes(attribute.String("command", cmd.Name())))
	defer span.End()

	rec := cmd.history()
	if rec.previous != nil {
		panic(fmt.Sprintf("command: %s %s has already been executed", cmd.Name(), rec.id))
	}

	attrs := metric.WithAttributes(attribute.String("command", cmd.Name()))
	previous := e.model.Catalog().Copy()

	result, err := e.run(cmd)
	if err != nil {
		e.rejected.Add(ctx, 1, attrs)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Warn("command rejected", "command", cmd.Name(), "error", err)

		return Result{}, err
	}

	rec.id = uuid.NewString()
	rec.previous = previous
	result.ID = rec.id

	e.undoStack = append(e.undoStack, cmd)
	e.redoStack = nil

	e.executed.Add(ctx, 1, attrs)
	span.SetAttributes(attribute.String("command.id", rec.id))
	e.logger.Info("command executed", "command", cmd.Name(), "id", rec.id)

	return result, nil
}

func (e *Engine) run(cmd Command) (Result, error) {
	err := cmd.prepare(e.model)
	if err != nil {
		return Result{}, err
	}

	return cmd.apply(e.model)
}

// Undo restores the catalog to the state before the most recent command and
// clears any filtering.
func (e *Engine) Undo(ctx context.Context) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := e.tracer.Start(ctx, "command.undo")
	defer span.End()

	if len(e.undoStack) == 0 {
		return Result{}, ErrNothingToUndo
	}

	cmd := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	rec := cmd.history()
	if rec.previous == nil {
		panic(fmt.Sprintf("command: %s on the undo stack has no snapshot", cmd.Name()))
	}

	e.model.ResetData(rec.previous)
	e.model.ShowAll()
	e.redoStack = append(e.redoStack, cmd)

	e.undone.Add(ctx, 1, metric.WithAttributes(attribute.String("command", cmd.Name())))
	span.SetAttributes(attribute.String("command", cmd.Name()), attribute.String("command.id", rec.id))
	e.logger.Info("command undone", "command", cmd.Name(), "id", rec.id)

	return Result{ID: rec.id, Feedback: "Undo success!"}, nil
}

// Redo reapplies the most recently undone command using the entities it
// resolved when first executed.
func (e *Engine) Redo(ctx context.Context) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := e.tracer.Start(ctx, "command.redo")
	defer span.End()

	if len(e.redoStack) == 0 {
		return Result{}, ErrNothingToRedo
	}

	cmd := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	rec := cmd.history()

	result, err := cmd.apply(e.model)
	if err != nil {
		panic(fmt.Sprintf("command: redo of %s %s failed: %v", cmd.Name(), rec.id, err))
	}

	e.model.ShowAll()
	e.undoStack = append(e.undoStack, cmd)

	e.redone.Add(ctx, 1, metric.WithAttributes(attribute.String("command", cmd.Name())))
	span.SetAttributes(attribute.String("command", cmd.Name()), attribute.String("command.id", rec.id))
	e.logger.Info("command redone", "command", cmd.Name(), "id", rec.id)

	return Result{ID: rec.id, Feedback: "Redo success!", Entity: result.Entity}, nil
}

func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.undoStack) > 0
}

func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.redoStack) > 0
}

// View gives fn exclusive access to the model, for reading or for changing
// the filtered views between commands.
func (e *Engine) View(fn func(m *catalog.Model)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(e.model)
}
