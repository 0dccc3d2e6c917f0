// file: internal/vocab/loader.go
// version: 1.0.0
// guid: 26f5ff4c-9d28-4922-977e-6711d7095a34

package vocab

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCSVColumn is the header of the column holding medication names in
// tabular reference lists (the DOH medication list uses "Molecule").
const DefaultCSVColumn = "Molecule"

// LoadCSV reads medication records from a CSV file. The first row must be a
// header containing column (matched case-insensitively). Names are
// lower-cased so matching stays consistent regardless of list casing; blank
// cells are skipped.
func LoadCSV(path, column string) ([]Record, error) {
	if column == "" {
		column = DefaultCSVColumn
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // hand-maintained lists often have ragged rows

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("vocab: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("vocab: %s: %w", path, ErrEmptyVocabulary)
	}

	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("vocab: %s has no %q column", path, column)
	}

	var records []Record
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(row[col]))
		if name == "" {
			continue
		}
		records = append(records, Record{CanonicalName: name})
	}
	return records, nil
}

// LoadYAML reads medication records from a YAML file holding a plain list of
// names.
func LoadYAML(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("vocab: parse %s: %w", path, err)
	}
	var records []Record
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		records = append(records, Record{CanonicalName: n})
	}
	return records, nil
}

// Load picks a loader from the file extension: .csv goes through LoadCSV
// with column, .yaml/.yml through LoadYAML.
func Load(path, column string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path, column)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("vocab: unsupported vocabulary format %q", filepath.Ext(path))
	}
}
