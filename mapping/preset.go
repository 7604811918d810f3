package mapping

import (
	"fmt"
	"os"

	"github.com/binzume/vrmrig/humanoid"
	yaml "gopkg.in/yaml.v2"
)

// ConventionPreset is a user-defined convention table, loadable from YAML:
//
//	name: MyRig
//	version: "1.0"
//	bones:
//	  - {name: pelvis, bone: hips}
//	  - {name: chest_01, bone: chest}
type ConventionPreset struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Bones   []struct {
		Name string `yaml:"name"`
		Bone string `yaml:"bone"`
	} `yaml:"bones"`
}

// Table converts the preset into a convention table, validating every bone
// name against the selected spec version.
func (p *ConventionPreset) Table() (*Table, error) {
	var specs *humanoid.Specifications
	switch p.Version {
	case "", "1", "1.0":
		specs = humanoid.VRM1
	case "0", "0.0":
		specs = humanoid.VRM0
	default:
		return nil, fmt.Errorf("mapping: preset %q: unknown version %q", p.Name, p.Version)
	}
	seen := map[string]bool{}
	var entries []Entry
	for _, b := range p.Bones {
		spec := specs.Lookup(humanoid.BoneName(b.Bone))
		if spec == nil {
			return nil, fmt.Errorf("mapping: preset %q: unknown human bone %q", p.Name, b.Bone)
		}
		key := Canonicalize(b.Name)
		if seen[key] {
			return nil, fmt.Errorf("mapping: preset %q: duplicate bone name %q", p.Name, b.Name)
		}
		seen[key] = true
		entries = append(entries, Entry{Name: b.Name, Bone: spec.Name})
	}
	return NewTable(p.Name, specs, entries), nil
}

// LoadConventionFile reads a YAML convention preset.
func LoadConventionFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConvention(data)
}

// ParseConvention parses a YAML convention preset.
func ParseConvention(data []byte) (*Table, error) {
	var preset ConventionPreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, err
	}
	if preset.Name == "" {
		return nil, fmt.Errorf("mapping: convention preset without a name")
	}
	return preset.Table()
}
