package loader

import (
	"strings"
)

// columnMap resolves canonical column names to positions in a header row.
type columnMap map[string]int

// resolveColumns maps canonical names to header positions. Synonyms are
// tried in order; header matching is case-insensitive after trimming.
// A required canonical name with no accepted synonym fails the load.
func resolveColumns(header []string, synonyms map[string][]string, required []string, file string) (columnMap, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(columnMap, len(synonyms))
	for canonical, names := range synonyms {
		for _, n := range names {
			if i, ok := index[n]; ok {
				cols[canonical] = i
				break
			}
		}
	}

	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, &LoadError{File: file, Column: name, Err: ErrMissingColumn}
		}
	}
	return cols, nil
}

// field returns the trimmed cell for a resolved column, or "" when the
// optional column is absent.
func (c columnMap) field(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
