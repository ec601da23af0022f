package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// ReportStore persists and retrieves grading reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore writes reports to disk. The file extension picks the
// format: .yaml/.yml for YAML, anything else for indented JSON.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report atomically via a temp file in the target directory.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.Report) error {
	if path == "" {
		return errors.New("report path is empty")
	}

	if report.Data == nil {
		report.Data = []m.ReportEntry{}
	}

	data, err := rs.encode(path, report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod report: %w", err)
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	// #nosec G304 - report path is chosen by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.Report
	if isYAML(path) {
		err = yaml.Unmarshal(data, &report)
	} else {
		err = json.Unmarshal(data, &report)
	}

	if err != nil {
		return m.Report{}, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	return report, nil
}

func (rs *LocalReportStore) encode(path m.Path, report m.Report) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(report)
	}

	return json.MarshalIndent(report, "", "    ")
}

func isYAML(path m.Path) bool {
	ext := strings.ToLower(filepath.Ext(string(path)))
	return ext == ".yaml" || ext == ".yml"
}
