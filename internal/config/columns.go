package config

import (
	"fmt"
	"slices"
	"strings"
)

// CountMismatchError reports configured column-name and column counts
// that disagree. Call sites deliberately differ on severity: the repo
// listing aborts, the build listing warns and falls back to field-path
// headers.
type CountMismatchError struct {
	Names   int
	Columns int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("Number of column names (%d) doesn't match number of columns (%d).", e.Names, e.Columns)
}

// ResolveColumns merges the configured CSV column and column-name lists
// with the section defaults into an ordered display schema.
//
// Configured names only apply when their count matches the field count;
// otherwise a CountMismatchError is returned alongside the resolved
// fields so lenient callers can still render with fallback headers.
func ResolveColumns(columnsCSV, namesCSV string, defaultFields, defaultNames []string) (fields, names []string, err error) {
	if columnsCSV == "" {
		fields = slices.Clone(defaultFields)
	} else {
		fields = splitCSV(columnsCSV)
	}

	if namesCSV == "" {
		if slices.Equal(fields, defaultFields) {
			return fields, slices.Clone(defaultNames), nil
		}

		// Field paths double as headers.
		return fields, slices.Clone(fields), nil
	}

	names = splitCSV(namesCSV)
	if len(names) != len(fields) {
		return fields, nil, &CountMismatchError{Names: len(names), Columns: len(fields)}
	}

	return fields, names, nil
}

func splitCSV(csv string) []string {
	parts := strings.Split(csv, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}
