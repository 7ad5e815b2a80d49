package directory

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// StaticSource serves a fixed employee list loaded from a YAML file, filtered
// in process. It stands in for a real directory during local development.
type StaticSource struct {
	employees []RawRecord
	logger    *slog.Logger
}

type staticDirectoryFile struct {
	Employees []RawRecord `yaml:"employees"`
}

func NewStaticSource(employees []RawRecord, logger *slog.Logger) *StaticSource {
	return &StaticSource{employees: employees, logger: logger}
}

func LoadStaticSource(path string, logger *slog.Logger) (*StaticSource, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file %s: %w", path, err)
	}

	var file staticDirectoryFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse directory file %s: %w", path, err)
	}

	logger.Info("static directory loaded", slog.String("path", path), slog.Int("employees", len(file.Employees)))
	return NewStaticSource(file.Employees, logger), nil
}

func (s *StaticSource) QueryHireDateAnniversaries(ctx context.Context, window Window) ([]RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]RawRecord, 0)
	for _, e := range s.employees {
		hired, err := ParseHireDate(e.HireDate)
		if err != nil {
			// Left for the caller to reject.
			out = append(out, e)
			continue
		}
		if window.Contains(hired) {
			out = append(out, e)
		}
	}

	s.logger.DebugContext(ctx, "static directory query", slog.String("window", window.String()), slog.Int("count", len(out)))
	return out, nil
}

// Employees returns a copy of every loaded record, unfiltered.
func (s *StaticSource) Employees() []RawRecord {
	return append([]RawRecord(nil), s.employees...)
}
