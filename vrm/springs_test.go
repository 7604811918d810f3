package vrm

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/binzume/vrmrig/springbone"
)

func springTestDoc() *Document {
	doc := testDoc([][2]string{
		{"root", ""},
		{"hair_root", "root"},
		{"hair_1", "hair_root"},
		{"hair_2", "hair_1"},
		{"body", "root"},
	})
	doc.Nodes[1].Translation = [3]float64{0, 1, 0}
	doc.Nodes[2].Translation = [3]float64{0, 0.2, 0}
	doc.Nodes[3].Translation = [3]float64{0, 0.2, 0}
	return doc
}

func TestImportExportSprings1(t *testing.T) {
	const eps = 1e-6
	doc := springTestDoc()
	ext := doc.SpringBone()
	ext.Colliders = []*Collider1{
		{Node: 4, Shape: ColliderShape{Sphere: &SphereShape{Offset: [3]float64{0, 0.1, 0}, Radius: 0.08}}},
		{Node: 4, Shape: ColliderShape{Capsule: &CapsuleShape{Offset: [3]float64{0, 0, 0}, Tail: [3]float64{0, 0.3, 0}, Radius: 0.05}}},
	}
	ext.ColliderGroups = []*ColliderGroup1{{Name: "body", Colliders: []int{0, 1}}}
	center := 0
	ext.Springs = []*Spring1{{
		Name: "hair",
		Joints: []*SpringJoint1{
			{Node: 1, HitRadius: 0.01, Stiffness: 0.9, GravityPower: 0.05, GravityDir: [3]float64{0, -1, 0}, DragForce: 0.4},
			{Node: 2, HitRadius: 0.01, Stiffness: 0.8, GravityPower: 0.05, GravityDir: [3]float64{0, -1, 0}, DragForce: 0.4},
			{Node: 3},
		},
		ColliderGroups: []int{0},
		Center:         &center,
	}}

	springs, groups, err := doc.ImportSprings()
	if err != nil {
		t.Fatal(err)
	}
	if len(springs) != 1 || len(groups) != 1 {
		t.Fatal("springs:", springs, "groups:", groups)
	}
	s := springs[0]
	if s.Name != "hair" || s.Center != "root" || len(s.Joints) != 3 {
		t.Fatal("spring:", s)
	}
	if s.Joints[1].Name != "hair_1" || s.Joints[1].Head.Sub(mgl64.Vec3{0, 1.2, 0}).Len() > eps {
		t.Error("joint 1:", s.Joints[1])
	}
	if s.Joints[0].Stiffness != 0.9 || s.Joints[1].DragForce != 0.4 {
		t.Error("joint params:", s.Joints)
	}
	sphere, ok := groups[0].Colliders[0].Shape.(*springbone.Sphere)
	if !ok || sphere.Offset.Sub(mgl64.Vec3{0, 0.1, 0}).Len() > eps || sphere.Radius != 0.08 {
		t.Error("sphere collider:", groups[0].Colliders[0].Shape)
	}
	capsule, ok := groups[0].Colliders[1].Shape.(*springbone.Capsule)
	if !ok || capsule.Tail.Sub(mgl64.Vec3{0, 0.3, 0}).Len() > eps {
		t.Error("capsule collider:", groups[0].Colliders[1].Shape)
	}

	// Exporting and importing again must preserve every value.
	out := springTestDoc()
	out.VRM1()
	if err := out.ExportSprings(springs, groups); err != nil {
		t.Fatal(err)
	}
	springs2, groups2, err := out.ImportSprings()
	if err != nil {
		t.Fatal(err)
	}
	if len(springs2) != 1 || len(groups2) != 1 {
		t.Fatal("round trip lost data")
	}
	for i, j := range springs2[0].Joints {
		orig := springs[0].Joints[i]
		if j.Name != orig.Name ||
			j.Head.Sub(orig.Head).Len() > eps ||
			math.Abs(j.Stiffness-orig.Stiffness) > eps ||
			math.Abs(j.GravityPower-orig.GravityPower) > eps ||
			j.GravityDir.Sub(orig.GravityDir).Len() > eps ||
			math.Abs(j.DragForce-orig.DragForce) > eps ||
			math.Abs(j.HitRadius-orig.HitRadius) > eps {
			t.Error("joint", i, "changed:", j, orig)
		}
	}
	if springs2[0].Center != "root" {
		t.Error("center:", springs2[0].Center)
	}
	sphere2 := groups2[0].Colliders[0].Shape.(*springbone.Sphere)
	if sphere2.Offset.Sub(sphere.Offset).Len() > eps || math.Abs(sphere2.Radius-sphere.Radius) > eps {
		t.Error("sphere changed:", sphere2)
	}
	capsule2 := groups2[0].Colliders[1].Shape.(*springbone.Capsule)
	if capsule2.Offset.Sub(capsule.Offset).Len() > eps || capsule2.Tail.Sub(capsule.Tail).Len() > eps {
		t.Error("capsule changed:", capsule2)
	}
}

func TestImportSpringsWithoutCoreExtension(t *testing.T) {
	doc := springTestDoc()
	ext := doc.SpringBone()
	ext.Springs = []*Spring1{{
		Name:   "hair",
		Joints: []*SpringJoint1{{Node: 1, Stiffness: 0.9}, {Node: 2}},
	}}
	if doc.IsVRM1() {
		t.Fatal("document should not carry the core 1.0 extension")
	}

	springs, _, err := doc.ImportSprings()
	if err != nil {
		t.Fatal(err)
	}
	if len(springs) != 1 || len(springs[0].Joints) != 2 {
		t.Fatal("springs dropped:", springs)
	}
	if springs[0].Joints[0].Stiffness != 0.9 {
		t.Error("joint:", springs[0].Joints[0])
	}

	// Exporting back keeps the 1.0 schema.
	if err := doc.ExportSprings(springs, nil); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.Extensions[ExtensionName]; ok {
		t.Error("export fell back to secondaryAnimation")
	}
	if len(doc.SpringBone().Springs) != 1 {
		t.Error("springs:", doc.SpringBone().Springs)
	}
}

func TestImportSprings0CyclicChildren(t *testing.T) {
	doc := springTestDoc()
	// Malformed input: the chain leaf names its ancestor as a child.
	doc.Nodes[3].Children = []uint32{1}
	ext := doc.VRM()
	ext.SecondaryAnimation = &SecondaryAnimation{
		BoneGroups: []*SecondaryAnimationBoneGroup{{Center: -1, Bones: []int{1}}},
	}

	springs, _, err := doc.ImportSprings()
	if err != nil {
		t.Fatal(err)
	}
	if len(springs) != 1 || len(springs[0].Joints) != 3 {
		t.Error("chain walk did not stop at the visited node:", springs[0].Joints)
	}
}

func TestImportSprings0(t *testing.T) {
	const eps = 1e-6
	doc := springTestDoc()
	ext := doc.VRM()
	ext.SecondaryAnimation = &SecondaryAnimation{
		BoneGroups: []*SecondaryAnimationBoneGroup{{
			Comment:        "hair",
			Stiffness:      1.2,
			GravityPower:   0.3,
			GravityDir:     &Vector3{Y: -1},
			DragForce:      0.5,
			Center:         -1,
			HitRadius:      0.02,
			Bones:          []int{1},
			ColliderGroups: []int{0},
		}},
		ColliderGroups: []*SecondaryAnimationColliderGroup{{
			Node:      4,
			Colliders: []*SecondaryAnimationCollider{{Offset: &Vector3{Y: 0.1}, Radius: 0.07}},
		}},
	}

	springs, groups, err := doc.ImportSprings()
	if err != nil {
		t.Fatal(err)
	}
	if len(springs) != 1 {
		t.Fatal("springs:", springs)
	}
	s := springs[0]
	// The chain is walked from the listed root down to the leaf.
	if len(s.Joints) != 3 || s.Joints[2].Name != "hair_2" {
		t.Fatal("chain walk:", s.Joints)
	}
	if s.Joints[2].Head.Sub(mgl64.Vec3{0, 1.4, 0}).Len() > eps {
		t.Error("leaf head:", s.Joints[2].Head)
	}
	for _, j := range s.Joints {
		if j.Stiffness != 1.2 || j.DragForce != 0.5 || j.HitRadius != 0.02 {
			t.Error("group params not applied:", j)
		}
	}
	if s.Center != "" {
		t.Error("center:", s.Center)
	}
	sphere := groups[0].Colliders[0].Shape.(*springbone.Sphere)
	if sphere.Offset.Sub(mgl64.Vec3{0, 0.1, 0}).Len() > eps || sphere.Radius != 0.07 {
		t.Error("collider:", sphere)
	}

	// 0.x round trip: sphere colliders and per chain parameters survive.
	out := springTestDoc()
	if err := out.ExportSprings(springs, groups); err != nil {
		t.Fatal(err)
	}
	springs2, _, err := out.ImportSprings()
	if err != nil {
		t.Fatal(err)
	}
	if len(springs2) != 1 || len(springs2[0].Joints) != 3 {
		t.Fatal("round trip:", springs2)
	}
	if springs2[0].Joints[0].Stiffness != 1.2 || springs2[0].Name != "hair" {
		t.Error("round trip params:", springs2[0])
	}
}
