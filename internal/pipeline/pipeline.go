package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/scanbench/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence; each receives the read-only result set
// produced by the aggregation stage.
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation and the aggregated result.
	Do(ctx context.Context, result *model.Result) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes multiple steps in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, the default logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to keep executing steps even
// when one fails. Failed steps are logged and their errors collected.
//
// Design decision: This option exists because report assembly is
// best-effort: a chart that fails to render must not prevent the comparison
// table from being written, and vice versa.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
//
// When continueOnError is set, every step runs regardless of earlier
// failures and the collected errors are returned joined; otherwise the
// first error stops the pipeline.
func (p *Pipeline) Execute(ctx context.Context, result *model.Result) error {
	var failures []error

	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			failures = append(failures, ctx.Err())
			return errors.Join(failures...)
		default:
		}

		p.logger.Info("executing step", "step", step.Name())

		if err := step.Do(ctx, result); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			if !p.continueOnError {
				return err
			}
			failures = append(failures, err)
			continue
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	return errors.Join(failures...)
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
