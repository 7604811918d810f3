package humanoid

import (
	"fmt"
	"strings"
	"unicode"
)

// Specification describes a single canonical human bone within one spec
// version: its position in the tree and whether an avatar must define it.
type Specification struct {
	Name             BoneName
	Title            string
	Label            string
	LabelNoLeftRight string

	// Requirement reports whether the bone is mandatory for a valid avatar.
	Requirement bool
	// ParentRequirement reports whether the tree parent must also be
	// assigned whenever this bone is assigned (VRM1 only; always false
	// for VRM0 specifications).
	ParentRequirement bool

	parentName    BoneName // "" for the root
	childrenNames []BoneName
	table         *Specifications
}

// Specifications is the complete bone table of one VRM spec version.
type Specifications struct {
	Version string
	byName  map[BoneName]*Specification
	ordered []*Specification
	root    *Specification
}

type boneDef struct {
	name              BoneName
	parent            BoneName
	requirement       bool
	parentRequirement bool
}

func newSpecifications(version string, defs []boneDef) *Specifications {
	t := &Specifications{
		Version: version,
		byName:  map[BoneName]*Specification{},
	}
	for _, def := range defs {
		if _, exists := t.byName[def.name]; exists {
			panic(fmt.Sprintf("humanoid: duplicate bone %q in %s table", def.name, version))
		}
		s := &Specification{
			Name:              def.name,
			Title:             boneTitle(def.name),
			Requirement:       def.requirement,
			ParentRequirement: def.parentRequirement,
			parentName:        def.parent,
			table:             t,
		}
		s.Label = s.Title
		s.LabelNoLeftRight = strings.TrimPrefix(strings.TrimPrefix(s.Title, "Left "), "Right ")
		t.byName[def.name] = s
		t.ordered = append(t.ordered, s)
	}
	for _, s := range t.ordered {
		if s.parentName == "" {
			if t.root != nil {
				panic(fmt.Sprintf("humanoid: multiple roots in %s table: %s, %s", version, t.root.Name, s.Name))
			}
			t.root = s
			continue
		}
		p, ok := t.byName[s.parentName]
		if !ok {
			panic(fmt.Sprintf("humanoid: unknown parent %q of %q in %s table", s.parentName, s.Name, version))
		}
		p.childrenNames = append(p.childrenNames, s.Name)
	}
	if t.root == nil {
		panic("humanoid: no root bone in " + version + " table")
	}
	return t
}

// boneTitle turns "leftUpperArm" into "Left Upper Arm".
func boneTitle(name BoneName) string {
	var b strings.Builder
	for i, r := range string(name) {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Get returns the specification for name. Unknown names indicate a bug in
// the caller and panic.
func (t *Specifications) Get(name BoneName) *Specification {
	s, ok := t.byName[name]
	if !ok {
		panic(fmt.Sprintf("humanoid: unknown bone name %q (%s)", name, t.Version))
	}
	return s
}

// Lookup returns the specification for name, or nil if the name is not part
// of this spec version.
func (t *Specifications) Lookup(name BoneName) *Specification {
	return t.byName[name]
}

// All returns every specification in definition order (parents before
// children).
func (t *Specifications) All() []*Specification {
	return append([]*Specification(nil), t.ordered...)
}

// Required returns the mandatory bones in definition order.
func (t *Specifications) Required() []*Specification {
	var dst []*Specification
	for _, s := range t.ordered {
		if s.Requirement {
			dst = append(dst, s)
		}
	}
	return dst
}

// Root returns the tree root (hips).
func (t *Specifications) Root() *Specification {
	return t.root
}

// Table returns the spec version table this bone belongs to.
func (s *Specification) Table() *Specifications {
	return s.table
}

// Parent returns the tree parent, or nil for the root.
func (s *Specification) Parent() *Specification {
	if s.parentName == "" {
		return nil
	}
	return s.table.Get(s.parentName)
}

// ParentName returns the tree parent's name, or "" for the root.
func (s *Specification) ParentName() BoneName {
	return s.parentName
}

// Children returns the direct children in definition order.
func (s *Specification) Children() []*Specification {
	dst := make([]*Specification, 0, len(s.childrenNames))
	for _, name := range s.childrenNames {
		dst = append(dst, s.table.Get(name))
	}
	return dst
}

// Connected returns the children plus the parent, if any.
func (s *Specification) Connected() []*Specification {
	dst := s.Children()
	if p := s.Parent(); p != nil {
		dst = append(dst, p)
	}
	return dst
}

// IsAncestorOf walks other's parent chain and reports whether s appears in
// it. A bone is not its own ancestor.
func (s *Specification) IsAncestorOf(other *Specification) bool {
	for p := other.Parent(); p != nil; p = p.Parent() {
		if p == s {
			return true
		}
	}
	return false
}

// RequiredAncestor returns the nearest mandatory ancestor, skipping optional
// bones, or nil if no mandatory bone exists above s.
func (s *Specification) RequiredAncestor() *Specification {
	for p := s.Parent(); p != nil; p = p.Parent() {
		if p.Requirement {
			return p
		}
	}
	return nil
}
