package vrm

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// testDoc builds a document from (name, parent name) pairs. Parents must be
// listed before children.
func testDoc(bones [][2]string) *Document {
	doc := &Document{}
	index := map[string]int{}
	for _, b := range bones {
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: b[0]})
		index[b[0]] = len(doc.Nodes) - 1
		if b[1] != "" {
			p := doc.Nodes[index[b[1]]]
			p.Children = append(p.Children, uint32(len(doc.Nodes)-1))
		}
	}
	return doc
}

func TestBuildSkeleton(t *testing.T) {
	doc := testDoc([][2]string{
		{"root", ""},
		{"child", "root"},
		{"leaf", "child"},
		{"other", "root"},
	})
	doc.Nodes[0].Translation = [3]float64{0, 1, 0}
	doc.Nodes[1].Translation = [3]float64{0, 0.5, 0}
	doc.Nodes[2].Translation = [3]float64{0, 0.5, 0}

	g, err := doc.BuildSkeleton()
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 4 {
		t.Fatal("bones:", g.Names())
	}
	if p := g.Parent("leaf"); p != "child" {
		t.Error("parent of leaf:", p)
	}
	if leaf, _ := g.Get("leaf"); leaf.Head != (mgl64.Vec3{0, 2, 0}) {
		t.Error("leaf head:", leaf.Head)
	}
}

func TestBuildSkeletonRotatedParent(t *testing.T) {
	doc := testDoc([][2]string{{"root", ""}, {"tip", "root"}})
	// 90 degrees around Z: +Y maps to -X.
	s := math.Sqrt(0.5)
	doc.Nodes[0].Rotation = [4]float64{0, 0, s, s}
	doc.Nodes[1].Translation = [3]float64{0, 1, 0}

	g, err := doc.BuildSkeleton()
	if err != nil {
		t.Fatal(err)
	}
	tip, _ := g.Get("tip")
	want := mgl64.Vec3{-1, 0, 0}
	if tip.Head.Sub(want).Len() > 1e-9 {
		t.Error("tip head:", tip.Head)
	}
}

func TestNodeNamesUnique(t *testing.T) {
	doc := &Document{}
	doc.Nodes = []*gltf.Node{{Name: "bone"}, {Name: "bone"}, {Name: ""}}
	names := doc.NodeNames()
	seen := map[string]bool{}
	for _, n := range names {
		if n == "" || seen[n] {
			t.Fatal("names not unique:", names)
		}
		seen[n] = true
	}
	if names[0] != "bone" {
		t.Error("first name changed:", names)
	}
}

func TestNodeWorldTransformsMatrixNode(t *testing.T) {
	doc := testDoc([][2]string{{"root", ""}, {"tip", "root"}})
	doc.Nodes[0].Matrix = [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		3, 0, 0, 1,
	}
	doc.Nodes[1].Translation = [3]float64{0, 2, 0}
	world := doc.NodeWorldTransforms()
	if got := world[1].Col(3).Vec3(); got != (mgl64.Vec3{3, 2, 0}) {
		t.Error("tip world:", got)
	}
}
