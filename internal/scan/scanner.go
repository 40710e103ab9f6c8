// Package scan enumerates rule units below dialect locations. A unit is
// one parseable chunk of rule text: a whole file for file-per-rule and
// narrative layouts, or one named section of a shared multiplex file.
package scan

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ruleport/ruleport/internal/dialect"
)

// Unit is one parseable chunk of rule text plus its origin.
type Unit struct {
	// Source is the file path the unit was read from.
	Source string

	// Name is the unit's name hint: the section name for units split
	// out of a multiplex file, empty otherwise. The parser derives a
	// name from the file stem when the hint is empty.
	Name string

	// Raw is the unit text, frontmatter included.
	Raw string
}

// Result carries the units scanned from one location and the non-fatal
// warnings collected along the way.
type Result struct {
	Units    []Unit
	Warnings []string
}

// Scanner reads rule units from a dialect location.
type Scanner interface {
	// Scan reads the location according to the profile's layout. A
	// missing location yields an empty result and a nil error; an
	// unreadable file is skipped with a warning.
	Scan(location string, profile dialect.Profile) (Result, error)
}

// scanner is the concrete implementation of Scanner.
type scanner struct {
	logger *slog.Logger
}

// NewScanner creates a Scanner.
func NewScanner(logger *slog.Logger) Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scanner{logger: logger}
}

// Scan reads the location according to the profile's layout.
func (s *scanner) Scan(location string, profile dialect.Profile) (Result, error) {
	info, err := os.Stat(location)
	if err != nil {
		s.logger.Debug("location absent", "path", location)
		return Result{}, nil
	}

	switch {
	case info.IsDir():
		return s.scanDir(location, profile)
	case profile.Layout == dialect.LayoutMultiplex:
		return s.scanMultiplex(location)
	default:
		// Narrative files and legacy single-file locations are one unit.
		return s.scanFile(location)
	}
}

// scanDir walks a rules directory and collects every file whose name
// ends with the profile extension. WalkDir visits entries in lexical
// order, so unit order is deterministic.
func (s *scanner) scanDir(dir string, profile dialect.Profile) (Result, error) {
	var res Result
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if entry.IsDir() {
			return nil
		}
		if !strings.HasSuffix(entry.Name(), profile.Extension) {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipped unreadable file %s: %v", path, readErr))
			return nil
		}
		res.Units = append(res.Units, Unit{Source: path, Raw: string(data)})
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("scan %s: %w", dir, err)
	}

	s.logger.Debug("scanned directory", "path", dir, "units", len(res.Units))
	return res, nil
}

// scanMultiplex splits a shared rule file into its named sections.
func (s *scanner) scanMultiplex(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Warnings: []string{fmt.Sprintf("skipped unreadable file %s: %v", path, err)}}, nil
	}

	units := SplitMultiplex(path, string(data))
	s.logger.Debug("scanned multiplex file", "path", path, "units", len(units))
	return Result{Units: units}, nil
}

// scanFile reads a single rule file as one unit.
func (s *scanner) scanFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Warnings: []string{fmt.Sprintf("skipped unreadable file %s: %v", path, err)}}, nil
	}
	return Result{Units: []Unit{{Source: path, Raw: string(data)}}}, nil
}

// multiplexDelimiter matches section delimiter lines in shared rule
// files: four hyphens, a space, the section name, a space, four hyphens,
// at the start of a line.
var multiplexDelimiter = regexp.MustCompile(`(?m)^---- (.+?) ----[ \t]*\r?$`)

// MultiplexPreamble returns the text before the first section delimiter.
// A file without delimiters is all preamble. Serializers preserve it
// when rewriting shared files.
func MultiplexPreamble(content string) string {
	loc := multiplexDelimiter.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]]
}

// SplitMultiplex splits shared-file content into named units. Text
// before the first delimiter is preamble (titles, notes) and carries no
// rule, so it is dropped. A file without delimiters yields no units.
func SplitMultiplex(source, content string) []Unit {
	matches := multiplexDelimiter.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	units := make([]Unit, 0, len(matches))
	for i, m := range matches {
		name := strings.TrimSpace(content[m[2]:m[3]])
		bodyStart := m[1]
		bodyEnd := len(content)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := strings.Trim(content[bodyStart:bodyEnd], "\r\n")
		units = append(units, Unit{Source: source, Name: name, Raw: body})
	}
	return units
}
