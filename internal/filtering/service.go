package filtering

import (
	"context"
	"fmt"

	"helog/internal/config"
	"helog/internal/constants"
	"helog/internal/logger"
	"helog/internal/stream"
	"helog/pkg/cel"
	"helog/pkg/errors"
	"helog/pkg/metrics"
	"helog/pkg/models"
)

// Filter decides which records are written.
type Filter struct {
	kind            stream.Kind
	match           Predicate
	where           *cel.Filter
	filteringConfig config.FilteringConfig
	logger          logger.Logger
}

// NewFilter compiles the criteria up front so that an unsupported dimension or a
// bad --where expression is reported before connecting. Flag combinations are
// checked by Validate.
func NewFilter(kind stream.Kind, c Criteria, cfg config.FilteringConfig, log logger.Logger) (*Filter, error) {
	match, err := Build(kind, c)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		kind:            kind,
		match:           match,
		filteringConfig: cfg,
		logger:          log,
	}

	if c.Where != "" {
		evaluator, err := cel.NewEvaluator()
		if err != nil {
			return nil, fmt.Errorf("failed to create CEL evaluator: %w", err)
		}
		where, err := evaluator.CompileFilter(c.Where)
		if err != nil {
			return nil, errors.Validation("Invalid --where expression: %v", err)
		}
		f.where = where
	}

	return f, nil
}

// Allow reports whether the record passes every filter dimension.
func (f *Filter) Allow(ctx context.Context, record models.Record) bool {
	if !f.match(record) {
		metrics.IncFilterEvaluation("filtered")
		return false
	}

	if f.where == nil {
		metrics.IncFilterEvaluation("passed")
		return true
	}

	passed, err := f.where.Evaluate(ctx, f.kind.String(), record)
	if err != nil {
		return f.handleEvaluationError(ctx, err)
	}

	if passed {
		metrics.IncFilterEvaluation("passed")
	} else {
		metrics.IncFilterEvaluation("filtered")
	}
	return passed
}

func (f *Filter) handleEvaluationError(ctx context.Context, err error) bool {
	metrics.IncFilterEvaluation("error")

	switch f.filteringConfig.Fallback.OnError {
	case constants.FallbackAllow:
		f.logger.WarnwCtx(ctx, "Where expression failed, allowing record (fallback: allow)",
			"expression", f.where.Expression(),
			"error", err,
		)
		return true
	default:
		f.logger.WarnwCtx(ctx, "Where expression failed, dropping record (fallback: deny)",
			"expression", f.where.Expression(),
			"error", err,
		)
		return false
	}
}
