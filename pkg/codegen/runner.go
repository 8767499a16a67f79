package codegen

import (
	"bytes"
	"context"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"

	"github.com/wundergraph/rtkquery-codegen/pkg/config"
	"github.com/wundergraph/rtkquery-codegen/pkg/loader"
	"github.com/wundergraph/rtkquery-codegen/pkg/output"
)

type RunnerOption func(r *Runner)

func WithRunnerLogger(log abstractlogger.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

// WithSchemaValidation validates the documents of every target against its schema.
// Targets without schema are never validated.
func WithSchemaValidation(validate bool) RunnerOption {
	return func(r *Runner) {
		r.validate = validate
	}
}

// WithDryRun generates without writing any file.
func WithDryRun(dryRun bool) RunnerOption {
	return func(r *Runner) {
		r.dryRun = dryRun
	}
}

// Runner generates the output files of targets.
type Runner struct {
	log      abstractlogger.Logger
	validate bool
	dryRun   bool
	loader   *loader.Loader
	writer   *output.Writer
}

// Result describes one generated target.
type Result struct {
	Output     string
	Operations int
	Fragments  int
	Changed    bool
	Content    []byte
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:      abstractlogger.NoopLogger,
		validate: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.loader = loader.New(loader.WithLogger(r.log))
	r.writer = output.NewWriter(r.log)
	return r
}

// Run generates a single target. The configuration is resolved before any file is read.
func (r *Runner) Run(ctx context.Context, target config.Target) (Result, error) {
	cfg, err := config.Resolve(target.Config, target.Output)
	if err != nil {
		return Result{}, errors.Wrapf(err, "target %s", target.Output)
	}

	doc, err := r.loader.LoadDocuments(ctx, target.Documents)
	if err != nil {
		return Result{}, errors.Wrapf(err, "target %s: loading documents", target.Output)
	}

	if r.validate && len(target.Schema) != 0 {
		schema, err := r.loader.LoadSchema(ctx, target.Schema)
		if err != nil {
			return Result{}, errors.Wrapf(err, "target %s: loading schema", target.Output)
		}
		if report := loader.Validate(schema, doc); report.HasErrors() {
			return Result{}, errors.Wrapf(report, "target %s: validating documents", target.Output)
		}
	}

	buf := bytes.Buffer{}
	if _, err := NewCodeGen(doc, cfg, WithLogger(r.log)).Generate(&buf); err != nil {
		return Result{}, errors.Wrapf(err, "target %s", target.Output)
	}

	result := Result{
		Output:     target.Output,
		Operations: len(doc.Operations),
		Fragments:  len(doc.Fragments),
		Content:    buf.Bytes(),
	}
	if r.dryRun {
		return result, nil
	}

	result.Changed, err = r.writer.Write(target.Output, result.Content)
	if err != nil {
		return Result{}, err
	}

	r.log.Info("codegen.Runner.Run",
		abstractlogger.String("output", target.Output),
		abstractlogger.Int("operations", result.Operations),
		abstractlogger.Any("changed", result.Changed),
	)
	return result, nil
}

// RunProject generates all targets of project one after another and stops at the first error.
func (r *Runner) RunProject(ctx context.Context, project *config.Project) ([]Result, error) {
	targets := project.Targets()
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := r.Run(ctx, target)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
