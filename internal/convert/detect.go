// Package convert sequences the pipeline end to end: detect the rules a
// project tree holds, then render them into target dialects. The stages
// stay independent; this package only wires them together.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/internal/parse"
	"github.com/ruleport/ruleport/internal/scan"
	"github.com/ruleport/ruleport/pkg/models"
)

// Detector finds the rule sets present in a project tree.
type Detector interface {
	// Detect probes every dialect's locations below root, first match
	// per dialect. Dialects without parseable rules are omitted.
	// Results sort by descending rule count, registry order breaking
	// ties. An empty tree yields an empty slice and a nil error.
	Detect(root string) ([]models.DetectionResult, error)
}

// detector is the concrete implementation of Detector.
type detector struct {
	logger  *slog.Logger
	scanner scan.Scanner
	parser  parse.Parser
}

// NewDetector creates a Detector.
func NewDetector(logger *slog.Logger) Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &detector{
		logger:  logger,
		scanner: scan.NewScanner(logger),
		parser:  parse.NewParser(logger),
	}
}

// Detect probes every dialect's locations below root.
func (d *detector) Detect(root string) ([]models.DetectionResult, error) {
	var results []models.DetectionResult
	for _, profile := range dialect.All() {
		res, found, err := d.detectOne(root, profile)
		if err != nil {
			return nil, err
		}
		if found {
			results = append(results, res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RuleCount() != results[j].RuleCount() {
			return results[i].RuleCount() > results[j].RuleCount()
		}
		return dialect.Order(dialect.ID(results[i].Dialect)) < dialect.Order(dialect.ID(results[j].Dialect))
	})

	d.logger.Debug("detection finished", "root", root, "dialects", len(results))
	return results, nil
}

// detectOne scans the first existing location of one dialect. The first
// existing location decides: a present-but-empty rules directory means
// the dialect has no rules, not that probing should continue.
func (d *detector) detectOne(root string, profile dialect.Profile) (models.DetectionResult, bool, error) {
	rels := make([]string, 0, len(profile.Primary)+len(profile.Legacy))
	rels = append(rels, profile.Primary...)
	rels = append(rels, profile.Legacy...)

	for _, rel := range rels {
		location := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := os.Stat(location); err != nil {
			continue
		}

		res, err := d.scanner.Scan(location, profile)
		if err != nil {
			return models.DetectionResult{}, false, fmt.Errorf("detect %s: %w", profile.ID, err)
		}
		for _, w := range res.Warnings {
			d.logger.Warn("scan warning", "dialect", profile.ID, "detail", w)
		}

		rules := make([]models.Rule, 0, len(res.Units))
		for _, unit := range res.Units {
			rule, warnings := d.parser.Parse(unit, profile)
			for _, w := range warnings {
				d.logger.Warn("parse warning", "dialect", profile.ID, "detail", w)
			}
			if rule != nil {
				rules = append(rules, *rule)
			}
		}
		if len(rules) == 0 {
			return models.DetectionResult{}, false, nil
		}

		d.logger.Debug("detected dialect", "dialect", profile.ID, "location", rel, "rules", len(rules))
		return models.DetectionResult{
			Dialect:  string(profile.ID),
			Location: rel,
			Rules:    rules,
		}, true, nil
	}
	return models.DetectionResult{}, false, nil
}
