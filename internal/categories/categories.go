package categories

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set provides normalized membership lookup over the green category list.
type Set struct {
	names   []string
	members map[string]struct{}
}

// Normalize lowercases and trims a category name. Matching against the set
// is exact on the normalized form.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New creates a Set from category names. Duplicates collapse; order of Names
// is the normalized, deduplicated input order.
func New(names []string) Set {
	members := make(map[string]struct{}, len(names))
	var kept []string
	for _, n := range names {
		norm := Normalize(n)
		if norm == "" {
			continue
		}
		if _, ok := members[norm]; ok {
			continue
		}
		members[norm] = struct{}{}
		kept = append(kept, norm)
	}
	return Set{names: kept, members: members}
}

// Contains reports whether a transaction category is in the green list.
func (s Set) Contains(category string) bool {
	_, ok := s.members[Normalize(category)]
	return ok
}

// Names returns the normalized category names.
func (s Set) Names() []string {
	return s.names
}

// Len returns the number of categories in the set.
func (s Set) Len() int {
	return len(s.members)
}

type assetFile struct {
	Categories []string `yaml:"categories"`
}

// Load reads a green category list from a YAML asset file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("reading green categories: %w", err)
	}

	var file assetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Set{}, fmt.Errorf("parsing green categories: %w", err)
	}
	return New(file.Categories), nil
}

// Save writes the set to a YAML asset file, sorted for stable diffs.
func Save(path string, set Set) error {
	names := append([]string(nil), set.names...)
	sort.Strings(names)

	data, err := yaml.Marshal(assetFile{Categories: names})
	if err != nil {
		return fmt.Errorf("marshaling green categories: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing green categories: %w", err)
	}
	return nil
}
