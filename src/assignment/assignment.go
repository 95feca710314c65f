package assignment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse converts "name=value" pairs, as given on the command line, into a
// variable assignment. Values are parsed with strconv.ParseBool, so "true",
// "1", "F" etc. all work.
func Parse(pairs []string) (map[string]bool, error) {
	values := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		name, rawValue, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid variable %q, expected name=value", pair)
		}

		value, err := strconv.ParseBool(rawValue)
		if err != nil {
			return nil, fmt.Errorf("invalid value for variable %s: %w", name, err)
		}
		values[name] = value
	}
	return values, nil
}

// Store reads and writes a variable assignment file. The format is chosen by
// the file extension: ".yaml"/".yml" files hold a YAML mapping from variable
// name to boolean, anything else is CSV with one name,value row per
// variable.
type Store struct {
	filePath string
}

func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
	}
}

// Path returns the absolute path of the underlying file when possible, to
// make it easier for the user to find. Best effort; falls back to the path
// as given.
func (s *Store) Path() string {
	absPath, err := filepath.Abs(s.filePath)
	if err != nil {
		return s.filePath
	}
	return absPath
}

func (s *Store) isYAML() bool {
	ext := filepath.Ext(s.filePath)
	return ext == ".yaml" || ext == ".yml"
}

// Write persists the given assignment, replacing the file's previous
// contents.
func (s *Store) Write(values map[string]bool) error {
	file, err := os.Create(s.Path())
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", s.Path(), err)
	}
	defer file.Close()

	if s.isYAML() {
		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if err := encoder.Encode(values); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.Path(), err)
		}
		return nil
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for name, value := range values {
		record := []string{name, strconv.FormatBool(value)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}
	return nil
}

// Read loads the assignment from the file.
func (s *Store) Read() (map[string]bool, error) {
	file, err := os.Open(s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", s.Path(), err)
	}
	defer file.Close()

	values := make(map[string]bool)

	if s.isYAML() {
		if err := yaml.NewDecoder(file).Decode(&values); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", s.Path(), err)
		}
		return values, nil
	}

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(), err)
	}

	for _, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid record %v in %s, expected name,value", record, s.Path())
		}

		value, err := strconv.ParseBool(record[1])
		if err != nil {
			return nil, fmt.Errorf("invalid value for variable %s: %w", record[0], err)
		}
		values[record[0]] = value
	}
	return values, nil
}
