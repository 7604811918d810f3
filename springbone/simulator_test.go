package springbone

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func near(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a.X()-b.X()) < eps && math.Abs(a.Y()-b.Y()) < eps && math.Abs(a.Z()-b.Z()) < eps
}

func verticalChain() *Spring {
	gravity := mgl64.Vec3{0, 0, -1}
	return &Spring{
		Name: "chain",
		Joints: []Joint{
			{Name: "joint0", Head: mgl64.Vec3{0, 1, 0}, GravityPower: 1, GravityDir: gravity, DragForce: 1},
			{Name: "joint1", Head: mgl64.Vec3{0, 2, 0}, GravityPower: 1, GravityDir: gravity, DragForce: 1},
		},
	}
}

func TestAdvanceGravity(t *testing.T) {
	const eps = 1e-4
	sim := NewSimulator([]*Spring{verticalChain()}, nil)

	sim.Advance(1)
	pos := sim.Positions(0)
	if !near(pos[0], mgl64.Vec3{0, 1, 0}, eps) {
		t.Error("joint0 moved:", pos[0])
	}
	if !near(pos[1], mgl64.Vec3{0, 1.7071, -0.7071}, eps) {
		t.Error("joint1 after 1s:", pos[1])
	}

	// A huge single step must settle, not diverge.
	sim.Advance(100000)
	pos = sim.Positions(0)
	if !near(pos[1], mgl64.Vec3{0, 1, -1}, eps) {
		t.Error("joint1 after 100000s:", pos[1])
	}
}

func TestAdvanceStiffnessRestoresRestPose(t *testing.T) {
	const eps = 1e-4
	spring := verticalChain()
	for i := range spring.Joints {
		spring.Joints[i].GravityPower = 0
		spring.Joints[i].Stiffness = 1
	}
	sim := NewSimulator([]*Spring{spring}, nil)

	// Perturb the tail, then let stiffness pull it back.
	sim.states[0][0].current = mgl64.Vec3{0, 1.7071, -0.7071}
	sim.states[0][0].previous = sim.states[0][0].current
	for i := 0; i < 300; i++ {
		sim.Advance(0.1)
	}
	pos := sim.Positions(0)
	if !near(pos[1], mgl64.Vec3{0, 2, 0}, eps) {
		t.Error("tail not restored:", pos[1])
	}
}

func TestAdvanceChainPropagation(t *testing.T) {
	gravity := mgl64.Vec3{0, 0, -1}
	joints := make([]Joint, 4)
	for i := range joints {
		joints[i] = Joint{
			Head:         mgl64.Vec3{0, float64(i), 0},
			GravityPower: 1,
			GravityDir:   gravity,
			DragForce:    1,
		}
	}
	sim := NewSimulator([]*Spring{{Name: "long", Joints: joints}}, nil)
	sim.Advance(100000)
	pos := sim.Positions(0)
	// Fully settled: every segment hangs in the gravity direction at rest
	// length 1 from its parent.
	for i := 1; i < len(pos); i++ {
		d := pos[i].Sub(pos[i-1])
		if math.Abs(d.Len()-1) > 1e-6 {
			t.Error("segment", i, "length:", d.Len())
		}
	}
	if !near(pos[3], mgl64.Vec3{0, 0, -3}, 1e-3) {
		t.Error("tip not settled:", pos[3])
	}
}

func TestAdvanceSphereCollision(t *testing.T) {
	const eps = 1e-4
	spring := verticalChain()
	spring.ColliderGroups = []int{0}
	groups := []*ColliderGroup{{
		Name: "block",
		Colliders: []Collider{
			{Node: "block", Shape: &Sphere{Offset: mgl64.Vec3{0, 2, -2}, Radius: 1.5}},
		},
	}}
	sim := NewSimulator([]*Spring{spring}, groups)
	sim.Advance(1)
	// Candidate (0,2,-1) penetrates the sphere and is pushed to
	// (0,2,-0.5) before the length re-projection around (0,1,0).
	pos := sim.Positions(0)
	if !near(pos[1], mgl64.Vec3{0, 1.894427, -0.447214}, eps) {
		t.Error("collided tail:", pos[1])
	}
}

func TestAdvanceCapsuleCollision(t *testing.T) {
	capsule := &Capsule{Offset: mgl64.Vec3{-1, 1, -1}, Tail: mgl64.Vec3{1, 1, -1}, Radius: 0.5}
	p, hit := capsule.Exclude(mgl64.Vec3{0.5, 1, -1.1}, 0)
	if !hit {
		t.Fatal("no correction applied")
	}
	if d := p.Sub(mgl64.Vec3{0.5, 1, -1}).Len(); math.Abs(d-0.5) > 1e-9 {
		t.Error("not on surface:", p, d)
	}

	// Beyond the segment end the exclusion is spherical around the tip.
	p, hit = capsule.Exclude(mgl64.Vec3{1.2, 1, -1.1}, 0)
	if !hit {
		t.Fatal("no correction near cap")
	}
	if d := p.Sub(mgl64.Vec3{1, 1, -1}).Len(); math.Abs(d-0.5) > 1e-9 {
		t.Error("cap exclusion:", p, d)
	}
}

func TestZeroRadiusCollider(t *testing.T) {
	s := &Sphere{Offset: mgl64.Vec3{0, 0, 0}}
	if _, hit := s.Exclude(mgl64.Vec3{1, 0, 0}, 0.5); hit {
		t.Error("outside point corrected")
	}
	p, hit := s.Exclude(mgl64.Vec3{0.25, 0, 0}, 0.5)
	if !hit || math.Abs(p.Len()-0.5) > 1e-9 {
		t.Error("point collider exclusion:", p)
	}
}

func TestDegenerateSegments(t *testing.T) {
	// Zero-length rest bone: the joint must stay put, no NaNs.
	spring := &Spring{
		Joints: []Joint{
			{Head: mgl64.Vec3{0, 1, 0}, GravityPower: 1, GravityDir: mgl64.Vec3{0, 0, -1}, DragForce: 1},
			{Head: mgl64.Vec3{0, 1, 0}},
		},
	}
	sim := NewSimulator([]*Spring{spring}, nil)
	sim.Advance(1)
	pos := sim.Positions(0)
	if !near(pos[1], mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Error("degenerate joint moved:", pos[1])
	}

	// Zero gravity direction contributes nothing instead of NaN.
	spring2 := verticalChain()
	spring2.Joints[0].GravityDir = mgl64.Vec3{}
	sim2 := NewSimulator([]*Spring{spring2}, nil)
	sim2.Advance(1)
	if !near(sim2.Positions(0)[1], mgl64.Vec3{0, 2, 0}, 1e-12) {
		t.Error("zero gravity dir moved the tail")
	}

	// Springs with fewer than two joints are valid no-ops.
	sim3 := NewSimulator([]*Spring{{Joints: []Joint{{Head: mgl64.Vec3{1, 2, 3}}}}}, nil)
	sim3.Advance(1)
	if got := sim3.Positions(0); len(got) != 1 {
		t.Error("positions:", got)
	}
}

func TestRotations(t *testing.T) {
	sim := NewSimulator([]*Spring{verticalChain()}, nil)
	sim.Advance(100000)
	rots := sim.Rotations(0)
	if len(rots) != 1 {
		t.Fatal("rotations:", rots)
	}
	// Rest direction +Y rotated onto the settled direction.
	got := rots[0].Rotate(mgl64.Vec3{0, 1, 0})
	if !near(got, mgl64.Vec3{0, 0, -1}, 1e-4) {
		t.Error("rotation:", got)
	}
}
