package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	tomlSection  = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	tomlKeyValue = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// Load parses JSON, YAML, or TOML into a value [Detect] accepts. JSON and
// YAML come back as a *yaml.Node so mapping order survives. TOML decodes
// into maps, whose keys are visited sorted; a TOML document holding a single
// array of tables yields that array.
func Load(data []byte) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrArgument)
	}
	// A JSON array such as ["a"] is also a valid TOML table header.
	if !json.Valid(data) && isLikelyTOML(data) {
		if v, err := loadTOML(data); err == nil {
			return v, nil
		}
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON or YAML: %w", err)
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

func loadTOML(data []byte) (any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	if len(m) == 1 {
		for _, v := range m {
			if tables, ok := v.([]any); ok && len(tables) > 0 {
				if _, ok := tables[0].(map[string]any); ok {
					return tables, nil
				}
			}
		}
	}
	return m, nil
}

// isLikelyTOML reports TOML when a section header is present or most
// non-comment lines are key = value pairs.
func isLikelyTOML(data []byte) bool {
	var sections, pairs, lines int
	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}
		lines++
		if tomlSection.Match(line) {
			sections++
		}
		if tomlKeyValue.Match(line) {
			pairs++
		}
	}
	return sections > 0 || (lines > 0 && pairs > lines/2)
}
