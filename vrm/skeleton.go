package vrm

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"

	"github.com/binzume/vrmrig/skeleton"
)

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

func localMatrix(node *gltf.Node) mgl64.Mat4 {
	if node.Matrix != identityMatrix && node.Matrix != ([16]float64{}) {
		// Both are column major.
		return mgl64.Mat4(node.Matrix)
	}
	rot := mgl64.QuatIdent()
	if node.Rotation != ([4]float64{}) {
		r := node.Rotation
		rot = mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}.Normalize()
	}
	scale := node.Scale
	if scale == ([3]float64{}) {
		scale = [3]float64{1, 1, 1}
	}
	t := node.Translation
	return mgl64.Translate3D(t[0], t[1], t[2]).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

// NodeParents returns, per node, the index of its parent or -1 for roots.
// If a node is listed as a child more than once the first reference wins.
func (doc *Document) NodeParents() []int {
	parents := make([]int, len(doc.Nodes))
	for i := range parents {
		parents[i] = -1
	}
	for i, node := range doc.Nodes {
		for _, c := range node.Children {
			if int(c) < len(parents) && parents[c] == -1 && int(c) != i {
				parents[c] = i
			}
		}
	}
	return parents
}

// NodeWorldTransforms computes the world matrix of every node.
func (doc *Document) NodeWorldTransforms() []mgl64.Mat4 {
	parents := doc.NodeParents()
	world := make([]mgl64.Mat4, len(doc.Nodes))
	done := make([]bool, len(doc.Nodes))
	var resolve func(i int) mgl64.Mat4
	resolve = func(i int) mgl64.Mat4 {
		if !done[i] {
			done[i] = true // set before recursing to break malformed cycles
			local := localMatrix(doc.Nodes[i])
			if p := parents[i]; p >= 0 {
				world[i] = resolve(p).Mul4(local)
			} else {
				world[i] = local
			}
		}
		return world[i]
	}
	for i := range doc.Nodes {
		resolve(i)
	}
	return world
}

// NodeNames returns a unique name per node. Unnamed nodes and duplicates get
// index-derived names so they can participate in the skeleton graph.
func (doc *Document) NodeNames() []string {
	names := make([]string, len(doc.Nodes))
	taken := map[string]bool{}
	for i, node := range doc.Nodes {
		name := node.Name
		if name == "" {
			name = fmt.Sprintf("node%d", i)
		}
		if taken[name] {
			name = fmt.Sprintf("%s_%d", name, i)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

// NodeIndex returns the index of the first node with the given (unique)
// name, or -1.
func (doc *Document) NodeIndex(name string) int {
	for i, n := range doc.NodeNames() {
		if n == name {
			return i
		}
	}
	return -1
}

// BuildSkeleton converts the node hierarchy into a skeleton graph with
// world-space head positions.
func (doc *Document) BuildSkeleton() (*skeleton.Graph, error) {
	names := doc.NodeNames()
	parents := doc.NodeParents()
	world := doc.NodeWorldTransforms()
	bones := make([]skeleton.Bone, len(doc.Nodes))
	for i := range doc.Nodes {
		parent := ""
		if parents[i] >= 0 {
			parent = names[parents[i]]
		}
		bones[i] = skeleton.Bone{
			Name:   names[i],
			Parent: parent,
			Head:   world[i].Col(3).Vec3(),
		}
	}
	return skeleton.New(bones)
}
