package springbone

import (
	"github.com/go-gl/mathgl/mgl64"
)

// tailState is the persistent simulation state of one chain segment.
type tailState struct {
	current  mgl64.Vec3
	previous mgl64.Vec3
}

// Simulator advances spring chains by explicit time deltas. It owns the
// per-segment tail state; joint and collider data is borrowed from the
// caller for the duration of each Advance call. Reset re-derives the state
// from the rest pose and must be called whenever the rig structure changes.
//
// A chain of N joints has N-1 simulated segments; the first joint's head is
// pinned to the skeleton. The length constraint re-projects every segment
// onto its rest length each tick, which keeps the integration stable for
// arbitrarily large deltas.
type Simulator struct {
	Springs        []*Spring
	ColliderGroups []*ColliderGroup

	states [][]tailState
}

// NewSimulator builds a simulator with state initialized from the joints'
// rest positions.
func NewSimulator(springs []*Spring, groups []*ColliderGroup) *Simulator {
	s := &Simulator{Springs: springs, ColliderGroups: groups}
	s.Reset()
	return s
}

// Reset re-initializes every segment tail to its rest position.
func (s *Simulator) Reset() {
	s.states = make([][]tailState, len(s.Springs))
	for i, spring := range s.Springs {
		if len(spring.Joints) < 2 {
			continue
		}
		states := make([]tailState, len(spring.Joints)-1)
		for j := range states {
			rest := spring.Joints[j+1].Head
			states[j] = tailState{current: rest, previous: rest}
		}
		s.states[i] = states
	}
}

// Advance steps every chain by dt seconds, root to tip, so that a parent
// segment's corrected position is visible to its child within the same
// tick. dt may be arbitrarily large; a huge single step settles the chain
// at its steady state instead of diverging.
func (s *Simulator) Advance(dt float64) {
	for i, spring := range s.Springs {
		s.advanceSpring(spring, s.states[i], dt)
	}
}

func (s *Simulator) advanceSpring(spring *Spring, states []tailState, dt float64) {
	if len(states) == 0 {
		return
	}
	head := spring.Joints[0].Head
	parentRot := mgl64.QuatIdent()
	for j := range states {
		joint := &spring.Joints[j]
		restAxis := spring.Joints[j+1].Head.Sub(joint.Head)
		length := restAxis.Len()
		if length == 0 {
			// Degenerate zero-length segment: keep it where it is.
			head = states[j].current
			continue
		}
		restDir := restAxis.Mul(1 / length)

		st := &states[j]
		inertia := st.current.Sub(st.previous).Mul(1 - joint.DragForce)
		stiffness := parentRot.Rotate(restDir).Mul(joint.Stiffness * dt)
		gravity := safeNormalize(joint.GravityDir).Mul(joint.GravityPower * dt)
		next := st.current.Add(inertia).Add(stiffness).Add(gravity)

		// Single pass over the colliders in listed order; corrections are
		// not re-validated against earlier colliders.
		for _, gi := range spring.ColliderGroups {
			if gi < 0 || gi >= len(s.ColliderGroups) {
				continue
			}
			for _, collider := range s.ColliderGroups[gi].Colliders {
				next, _ = collider.Shape.Exclude(next, joint.HitRadius)
			}
		}

		// Re-project onto the rest length around the (possibly moved) head.
		dir := next.Sub(head)
		if dir.Len() == 0 {
			dir = st.current.Sub(head)
		}
		if dir.Len() == 0 {
			dir = parentRot.Rotate(restDir)
		}
		next = head.Add(dir.Normalize().Mul(length))

		st.previous = st.current
		st.current = next

		parentRot = mgl64.QuatBetweenVectors(restDir, dir)
		head = next
	}
}

// Positions returns the current world head positions of every joint in
// spring i, including the pinned first joint.
func (s *Simulator) Positions(i int) []mgl64.Vec3 {
	spring := s.Springs[i]
	if len(spring.Joints) == 0 {
		return nil
	}
	dst := make([]mgl64.Vec3, len(spring.Joints))
	dst[0] = spring.Joints[0].Head
	for j, st := range s.states[i] {
		dst[j+1] = st.current
	}
	return dst
}

// Rotations returns, per segment of spring i, the rotation mapping the
// segment's rest direction onto its simulated direction.
func (s *Simulator) Rotations(i int) []mgl64.Quat {
	spring := s.Springs[i]
	states := s.states[i]
	dst := make([]mgl64.Quat, len(states))
	head := spring.Joints[0].Head
	for j, st := range states {
		restAxis := spring.Joints[j+1].Head.Sub(spring.Joints[j].Head)
		dir := st.current.Sub(head)
		if restAxis.Len() == 0 || dir.Len() == 0 {
			dst[j] = mgl64.QuatIdent()
		} else {
			dst[j] = mgl64.QuatBetweenVectors(restAxis, dir)
		}
		head = st.current
	}
	return dst
}

func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
