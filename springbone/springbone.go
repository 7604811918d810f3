// Package springbone simulates secondary animation ("jiggle") bone chains:
// damped, gravity-driven joints with sphere/capsule collider exclusion,
// driven by the host's frame loop.
package springbone

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Joint is one bone of a spring chain. Head is the world rest position of
// the joint; the remaining fields are the authored simulation parameters.
// The parameters of a joint drive the segment between it and the next
// joint in the chain.
type Joint struct {
	Name         string
	Head         mgl64.Vec3
	HitRadius    float64
	Stiffness    float64
	GravityPower float64
	GravityDir   mgl64.Vec3
	DragForce    float64
}

// Spring is a named chain of joints, root to tip, plus the collider groups
// that apply to every joint in the chain.
type Spring struct {
	Name           string
	Joints         []Joint
	ColliderGroups []int  // indexes into the simulator's group list
	Center         string // carried through for the host, not simulated
}

// Shape is a collision volume in world space.
type Shape interface {
	// Exclude pushes pos out of the shape surface inflated by radius and
	// reports whether a correction was applied.
	Exclude(pos mgl64.Vec3, radius float64) (mgl64.Vec3, bool)
}

// Sphere is a sphere collision volume. A zero Radius is a point collider.
type Sphere struct {
	Offset mgl64.Vec3
	Radius float64
}

func (s *Sphere) Exclude(pos mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	return sphereExclude(s.Offset, s.Radius+radius, pos)
}

// Capsule is a capsule collision volume: a segment from Offset to Tail
// inflated by Radius.
type Capsule struct {
	Offset mgl64.Vec3
	Tail   mgl64.Vec3
	Radius float64
}

func (c *Capsule) Exclude(pos mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	axis := c.Tail.Sub(c.Offset)
	lenSqr := axis.Dot(axis)
	center := c.Offset
	if lenSqr > 0 {
		t := pos.Sub(c.Offset).Dot(axis) / lenSqr
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		center = c.Offset.Add(axis.Mul(t))
	}
	return sphereExclude(center, c.Radius+radius, pos)
}

func sphereExclude(center mgl64.Vec3, minDist float64, pos mgl64.Vec3) (mgl64.Vec3, bool) {
	delta := pos.Sub(center)
	dist := delta.Len()
	if dist >= minDist {
		return pos, false
	}
	if dist == 0 {
		// Exactly at the center: no separating axis to push along.
		return pos, false
	}
	return center.Add(delta.Mul(minDist / dist)), true
}

// Collider attaches a shape to a skeleton node. The shape is expressed in
// world space; the host refreshes it from the node's transform before each
// Advance call.
type Collider struct {
	Node  string
	Shape Shape
}

// ColliderGroup is a named set of colliders referenced by springs.
type ColliderGroup struct {
	Name      string
	Colliders []Collider
}
