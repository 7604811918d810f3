// Package skeleton is a host-independent view of an armature: named bones
// with parent links, built fresh from the host's live hierarchy for each
// mapping or simulation setup.
package skeleton

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Bone is one input record. Parent is empty for roots. Head is the world
// rest position of the bone's head; it is only needed by consumers that
// simulate, mapping works from names alone.
type Bone struct {
	Name   string
	Parent string
	Head   mgl64.Vec3
}

type node struct {
	bone     Bone
	parent   *node
	children []string
}

// Graph is a read-only skeleton snapshot. It always forms a forest: New
// rejects duplicate names, unknown parents and parent cycles, so ancestor
// walks over a Graph terminate.
type Graph struct {
	nodes map[string]*node
	names []string
	roots []string
}

// New builds a Graph from bone records.
func New(bones []Bone) (*Graph, error) {
	g := &Graph{nodes: map[string]*node{}}
	for _, b := range bones {
		if b.Name == "" {
			return nil, fmt.Errorf("skeleton: bone with empty name")
		}
		if _, exists := g.nodes[b.Name]; exists {
			return nil, fmt.Errorf("skeleton: duplicate bone name %q", b.Name)
		}
		g.nodes[b.Name] = &node{bone: b}
		g.names = append(g.names, b.Name)
	}
	for _, name := range g.names {
		n := g.nodes[name]
		if n.bone.Parent == "" {
			g.roots = append(g.roots, name)
			continue
		}
		p, ok := g.nodes[n.bone.Parent]
		if !ok {
			return nil, fmt.Errorf("skeleton: bone %q has unknown parent %q", name, n.bone.Parent)
		}
		n.parent = p
		p.children = append(p.children, name)
	}
	// Every bone must reach a root in at most len(bones) steps; anything
	// else is on a parent cycle.
	for _, name := range g.names {
		steps := 0
		for n := g.nodes[name].parent; n != nil; n = n.parent {
			steps++
			if steps > len(g.names) {
				return nil, fmt.Errorf("skeleton: parent cycle involving %q", name)
			}
		}
	}
	return g, nil
}

// Names returns every bone name in input order.
func (g *Graph) Names() []string {
	return append([]string(nil), g.names...)
}

// Roots returns the names of all parentless bones in input order.
func (g *Graph) Roots() []string {
	return append([]string(nil), g.roots...)
}

// Len returns the number of bones.
func (g *Graph) Len() int {
	return len(g.names)
}

// Contains reports whether a bone with the given name exists.
func (g *Graph) Contains(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Get returns the bone record, or false if the name is unknown.
func (g *Graph) Get(name string) (Bone, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return Bone{}, false
	}
	return n.bone, true
}

// Parent returns the parent bone's name, or "" if name is a root or unknown.
func (g *Graph) Parent(name string) string {
	n, ok := g.nodes[name]
	if !ok || n.parent == nil {
		return ""
	}
	return n.parent.bone.Name
}

// Children returns the direct children of name in input order.
func (g *Graph) Children(name string) []string {
	n, ok := g.nodes[name]
	if !ok {
		return nil
	}
	return append([]string(nil), n.children...)
}

// Ancestors returns the parent chain of name, nearest first.
func (g *Graph) Ancestors(name string) []string {
	n, ok := g.nodes[name]
	if !ok {
		return nil
	}
	var dst []string
	for p := n.parent; p != nil; p = p.parent {
		dst = append(dst, p.bone.Name)
	}
	return dst
}

// Descendants returns every bone below name, breadth first.
func (g *Graph) Descendants(name string) []string {
	n, ok := g.nodes[name]
	if !ok {
		return nil
	}
	var dst []string
	queue := append([]string(nil), n.children...)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		dst = append(dst, c)
		queue = append(queue, g.nodes[c].children...)
	}
	return dst
}

// IsAncestorOf reports whether a is a strict ancestor of b.
func (g *Graph) IsAncestorOf(a, b string) bool {
	n, ok := g.nodes[b]
	if !ok {
		return false
	}
	for p := n.parent; p != nil; p = p.parent {
		if p.bone.Name == a {
			return true
		}
	}
	return false
}

// SortedNames returns every bone name in lexical order. Useful for
// deterministic iteration when the input order is not meaningful.
func (g *Graph) SortedNames() []string {
	dst := g.Names()
	sort.Strings(dst)
	return dst
}
