package mapping

import (
	"sort"

	"github.com/binzume/vrmrig/humanoid"
	"github.com/binzume/vrmrig/skeleton"
)

// Assignment binds one skeleton bone to a human bone specification.
type Assignment struct {
	BoneName string
	Spec     *humanoid.Specification
}

// nameIndex resolves canonicalized names back to raw skeleton bone names.
// When several raw names collapse to the same canonical form, the
// lexically smallest wins so that resolution stays deterministic.
type nameIndex map[string]string

func newNameIndex(g *skeleton.Graph) nameIndex {
	idx := nameIndex{}
	for _, name := range g.SortedNames() {
		key := Canonicalize(name)
		if _, exists := idx[key]; !exists {
			idx[key] = name
		}
	}
	return idx
}

// MatchMapping reports whether every mandatory entry of the table is present
// in the skeleton with a consistent hierarchy. A table with no mandatory
// entries never matches.
func MatchMapping(g *skeleton.Graph, table *Table) bool {
	return matchMapping(g, newNameIndex(g), table)
}

func matchMapping(g *skeleton.Graph, idx nameIndex, table *Table) bool {
	matched := 0
	for _, e := range table.Entries() {
		spec := table.Specs.Get(e.Bone)
		if !spec.Requirement {
			continue
		}
		matched++
		boneName, ok := idx[Canonicalize(e.Name)]
		if !ok {
			return false
		}
		if !hierarchyConsistent(g, table, boneName, spec) {
			return false
		}
	}
	return matched > 0
}

// hierarchyConsistent checks that the first mapped mandatory ancestor of
// boneName in the skeleton is exactly spec's nearest mandatory ancestor in
// the human bone tree.
func hierarchyConsistent(g *skeleton.Graph, table *Table, boneName string, spec *humanoid.Specification) bool {
	requiredParent := spec.RequiredAncestor()
	for _, ancestor := range g.Ancestors(boneName) {
		other := table.Lookup(Canonicalize(ancestor))
		if other == nil || !other.Requirement {
			continue
		}
		return other == requiredParent
	}
	return requiredParent == nil
}

// CreateHumanBoneMapping tries every known convention in priority order and
// returns the assignments of the first one whose mandatory bones all match,
// mandatory entries first. Extra tables (e.g. loaded from preset files) are
// tried after the built-ins. A nil result means no convention was
// recognized; callers fall back to manual assignment.
func CreateHumanBoneMapping(g *skeleton.Graph, extra ...*Table) []Assignment {
	idx := newNameIndex(g)
	for _, table := range append(Conventions(g), extra...) {
		if !matchMapping(g, idx, table) {
			continue
		}
		var required, optional []Assignment
		for _, e := range table.Entries() {
			boneName, ok := idx[Canonicalize(e.Name)]
			if !ok {
				continue
			}
			a := Assignment{BoneName: boneName, Spec: table.Specs.Get(e.Bone)}
			if a.Spec.Requirement {
				required = append(required, a)
			} else {
				optional = append(optional, a)
			}
		}
		return append(required, optional...)
	}
	return nil
}

// ToMap flattens assignments into a bone-name keyed map.
func ToMap(assignments []Assignment) map[string]*humanoid.Specification {
	dst := map[string]*humanoid.Specification{}
	for _, a := range assignments {
		dst[a.BoneName] = a.Spec
	}
	return dst
}

// FindBoneCandidates returns the skeleton bones that could legally be
// assigned to target, given the bones already assigned to other
// specifications. Results are sorted.
func FindBoneCandidates(g *skeleton.Graph, target *humanoid.Specification, assigned map[string]*humanoid.Specification) []string {
	candidates := map[string]bool{}
	for _, name := range g.Names() {
		candidates[name] = true
	}

	names := make([]string, 0, len(assigned))
	for name := range assigned {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := assigned[name]
		if spec == nil || spec.Name == target.Name || !g.Contains(name) {
			continue
		}
		switch {
		case spec.IsAncestorOf(target):
			// target must live inside this bone's subtree; everything
			// else (the bone itself, its ancestors, all sibling
			// branches) is out.
			inSubtree := map[string]bool{}
			for _, d := range g.Descendants(name) {
				inSubtree[d] = true
			}
			for c := range candidates {
				if !inSubtree[c] {
					delete(candidates, c)
				}
			}
		case target.IsAncestorOf(spec):
			delete(candidates, name)
			for _, d := range g.Descendants(name) {
				delete(candidates, d)
			}
		default:
			delete(candidates, name)
			for _, d := range g.Descendants(name) {
				delete(candidates, d)
			}
			for _, a := range g.Ancestors(name) {
				delete(candidates, a)
			}
		}
	}

	dst := make([]string, 0, len(candidates))
	for name := range candidates {
		dst = append(dst, name)
	}
	sort.Strings(dst)
	return dst
}
