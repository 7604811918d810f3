package vrm

import (
	"fmt"

	"github.com/binzume/vrmrig/humanoid"
	"github.com/binzume/vrmrig/mapping"
)

// The thumb chain is the only difference between the 0.x and 1.0 humanoid
// tables. "leftThumbProximal" exists in both but names a different joint,
// so the rename is keyed on the source version, not on name collisions.
var thumbTo0 = map[humanoid.BoneName]humanoid.BoneName{
	humanoid.LeftThumbMetacarpal:  humanoid.LeftThumbProximal,
	humanoid.LeftThumbProximal:    humanoid.LeftThumbIntermediate,
	humanoid.RightThumbMetacarpal: humanoid.RightThumbProximal,
	humanoid.RightThumbProximal:   humanoid.RightThumbIntermediate,
}

var thumbTo1 = map[humanoid.BoneName]humanoid.BoneName{
	humanoid.LeftThumbProximal:      humanoid.LeftThumbMetacarpal,
	humanoid.LeftThumbIntermediate:  humanoid.LeftThumbProximal,
	humanoid.RightThumbProximal:     humanoid.RightThumbMetacarpal,
	humanoid.RightThumbIntermediate: humanoid.RightThumbProximal,
}

// ConvertBoneName renames a bone from one humanoid table version to
// another. Returns "" when the bone has no equivalent in the target table.
func ConvertBoneName(name humanoid.BoneName, from, to *humanoid.Specifications) humanoid.BoneName {
	if from.Version == to.Version {
		return name
	}
	renames := thumbTo1
	if to.Version == humanoid.VRM0.Version {
		renames = thumbTo0
	}
	if renamed, ok := renames[name]; ok {
		return renamed
	}
	if to.Lookup(name) != nil {
		return name
	}
	return ""
}

// DetectHumanoid maps the node hierarchy onto the humanoid bone table using
// the known naming conventions plus any extra tables.
func (doc *Document) DetectHumanoid(extra ...*mapping.Table) ([]mapping.Assignment, error) {
	g, err := doc.BuildSkeleton()
	if err != nil {
		return nil, err
	}
	assignments := mapping.CreateHumanBoneMapping(g, extra...)
	if assignments == nil {
		return nil, fmt.Errorf("no known bone naming convention matched")
	}
	return assignments, nil
}

// ApplyHumanoid writes the assignments into the document's humanoid
// extension, 1.0 or 0.x depending on which extension the document carries.
// Bones with no equivalent in the target table are skipped.
func (doc *Document) ApplyHumanoid(assignments []mapping.Assignment) {
	nodes := map[string]int{}
	for i, name := range doc.NodeNames() {
		nodes[name] = i
	}
	if doc.IsVRM1() {
		ext := doc.VRM1()
		ext.Humanoid.HumanBones = map[string]*HumanBone1{}
		for _, a := range assignments {
			name := ConvertBoneName(a.Spec.Name, a.Spec.Table(), humanoid.VRM1)
			if name == "" {
				continue
			}
			ext.Humanoid.HumanBones[string(name)] = &HumanBone1{Node: nodes[a.BoneName]}
		}
		return
	}
	ext := doc.VRM()
	ext.Humanoid.Bones = nil
	for _, a := range assignments {
		name := ConvertBoneName(a.Spec.Name, a.Spec.Table(), humanoid.VRM0)
		if name == "" {
			continue
		}
		ext.Humanoid.Bones = append(ext.Humanoid.Bones, &Bone{
			Bone:             string(name),
			Node:             nodes[a.BoneName],
			UseDefaultValues: true,
		})
	}
}

// HumanoidBoneNodes reads the humanoid table of whichever extension the
// document carries, as bone name to node index.
func (doc *Document) HumanoidBoneNodes() map[humanoid.BoneName]int {
	result := map[humanoid.BoneName]int{}
	if doc.IsVRM1() {
		for name, b := range doc.VRM1().Humanoid.HumanBones {
			result[humanoid.BoneName(name)] = b.Node
		}
		return result
	}
	if ext, ok := doc.Extensions[ExtensionName].(*VRM); ok {
		for _, b := range ext.Humanoid.Bones {
			result[humanoid.BoneName(b.Bone)] = b.Node
		}
	}
	return result
}
