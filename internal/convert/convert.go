package convert

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/internal/render"
	"github.com/ruleport/ruleport/pkg/models"
)

// Converter renders canonical rules into target dialects.
type Converter interface {
	// Convert plans and writes every target. Targets resolve by id or
	// display name; an unknown name becomes an error entry and its
	// rules count as skipped, without clearing Success. Only
	// serialization and write failures clear Success. Conversion
	// always continues to the remaining targets.
	Convert(rules []models.Rule, targets []string, outputRoot string) models.ConversionOutcome

	// Preview computes the per-target plans without writing anything,
	// for dry runs. The outcome carries the same accounting Convert
	// would report up to the point of writing.
	Preview(rules []models.Rule, targets []string, outputRoot string) ([]render.Plan, models.ConversionOutcome)
}

// converter is the concrete implementation of Converter.
type converter struct {
	logger     *slog.Logger
	serializer render.Serializer
}

// NewConverter creates a Converter.
func NewConverter(logger *slog.Logger) Converter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &converter{
		logger:     logger,
		serializer: render.NewSerializer(logger),
	}
}

// Convert plans and writes every target.
func (c *converter) Convert(rules []models.Rule, targets []string, outputRoot string) models.ConversionOutcome {
	plans, outcome := c.plan(rules, targets, outputRoot)
	if len(plans) > 0 {
		outcome.Written = make(map[string][]string, len(plans))
	}

	for _, plan := range plans {
		res := c.serializer.Apply(plan)
		if len(res.Errors) > 0 {
			outcome.Success = false
			outcome.Errors = append(outcome.Errors, res.Errors...)
		}
		outcome.Converted -= res.FailedRules
		outcome.Skipped += res.FailedRules
		if len(res.Written) > 0 {
			outcome.Written[string(plan.Target)] = res.Written
		}
		c.logger.Info("converted",
			"target", plan.Target,
			"rules", plan.Converted-res.FailedRules,
			"files", len(res.Written),
		)
	}
	return outcome
}

// Preview computes the per-target plans without writing anything.
func (c *converter) Preview(rules []models.Rule, targets []string, outputRoot string) ([]render.Plan, models.ConversionOutcome) {
	return c.plan(rules, targets, outputRoot)
}

// plan resolves the targets and plans each one, accumulating the shared
// accounting both Convert and Preview report.
func (c *converter) plan(rules []models.Rule, targets []string, outputRoot string) ([]render.Plan, models.ConversionOutcome) {
	outcome := models.ConversionOutcome{Success: true}
	var plans []render.Plan

	for _, target := range targets {
		id, ok := dialect.Resolve(target)
		if !ok {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("unknown target dialect %q", target))
			outcome.Skipped += len(rules)
			c.logger.Warn("skipping unknown target", "target", target)
			continue
		}
		profile, _ := dialect.Get(id)

		plan, err := c.serializer.Plan(rules, profile, outputRoot)
		if err != nil {
			outcome.Success = false
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("target %s: %v", id, err))
			outcome.Skipped += len(rules)
			continue
		}

		outcome.Warnings = append(outcome.Warnings, plan.Warnings...)
		outcome.Converted += plan.Converted
		outcome.Skipped += plan.Skipped
		plans = append(plans, plan)
	}
	return plans, outcome
}
