package profile

import (
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/saveactions/internal/action"
)

// document is the shared YAML/TOML profile shape:
//
//	actions:
//	  reformat: true
//	  organizeImports: false
type document struct {
	Actions map[string]bool `yaml:"actions" toml:"actions"`
}

func parseYAML(data []byte) (map[action.Action]bool, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return toActions(doc.Actions)
}

func parseTOML(data []byte) (map[action.Action]bool, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return toActions(doc.Actions)
}
