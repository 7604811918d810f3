package vrm

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/binzume/vrmrig/springbone"
)

func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func (doc *Document) hasSpringBone1() bool {
	_, ok := doc.Extensions[SpringBoneExtensionName].(*SpringBone)
	return ok
}

// ImportSprings builds simulator inputs from the document's spring bone
// configuration: VRMC_springBone when present, secondaryAnimation
// otherwise. VRMC_springBone may appear without the VRMC_vrm core
// extension, so the import keys on the spring extension itself. Joint
// heads and collider shapes are converted to world space.
func (doc *Document) ImportSprings() ([]*springbone.Spring, []*springbone.ColliderGroup, error) {
	names := doc.NodeNames()
	world := doc.NodeWorldTransforms()
	if doc.hasSpringBone1() {
		return doc.importSprings1(names, world)
	}
	return doc.importSprings0(names, world)
}

func (doc *Document) nodeName(names []string, index int) (string, error) {
	if index < 0 || index >= len(names) {
		return "", fmt.Errorf("node index out of range: %d", index)
	}
	return names[index], nil
}

func (doc *Document) importSprings1(names []string, world []mgl64.Mat4) ([]*springbone.Spring, []*springbone.ColliderGroup, error) {
	ext, ok := doc.Extensions[SpringBoneExtensionName].(*SpringBone)
	if !ok {
		return nil, nil, nil
	}
	colliders := make([]springbone.Collider, len(ext.Colliders))
	for i, c := range ext.Colliders {
		name, err := doc.nodeName(names, c.Node)
		if err != nil {
			return nil, nil, err
		}
		m := world[c.Node]
		var shape springbone.Shape
		switch {
		case c.Shape.Sphere != nil:
			s := c.Shape.Sphere
			shape = &springbone.Sphere{
				Offset: transformPoint(m, mgl64.Vec3(s.Offset)),
				Radius: s.Radius,
			}
		case c.Shape.Capsule != nil:
			s := c.Shape.Capsule
			shape = &springbone.Capsule{
				Offset: transformPoint(m, mgl64.Vec3(s.Offset)),
				Tail:   transformPoint(m, mgl64.Vec3(s.Tail)),
				Radius: s.Radius,
			}
		default:
			return nil, nil, fmt.Errorf("collider %d: no shape", i)
		}
		colliders[i] = springbone.Collider{Node: name, Shape: shape}
	}

	groups := make([]*springbone.ColliderGroup, len(ext.ColliderGroups))
	for i, g := range ext.ColliderGroups {
		group := &springbone.ColliderGroup{Name: g.Name}
		for _, ci := range g.Colliders {
			if ci < 0 || ci >= len(colliders) {
				return nil, nil, fmt.Errorf("collider group %q: collider index out of range: %d", g.Name, ci)
			}
			group.Colliders = append(group.Colliders, colliders[ci])
		}
		groups[i] = group
	}

	springs := make([]*springbone.Spring, len(ext.Springs))
	for i, s := range ext.Springs {
		spring := &springbone.Spring{
			Name:           s.Name,
			ColliderGroups: append([]int(nil), s.ColliderGroups...),
		}
		if s.Center != nil {
			name, err := doc.nodeName(names, *s.Center)
			if err != nil {
				return nil, nil, err
			}
			spring.Center = name
		}
		for _, j := range s.Joints {
			name, err := doc.nodeName(names, j.Node)
			if err != nil {
				return nil, nil, err
			}
			spring.Joints = append(spring.Joints, springbone.Joint{
				Name:         name,
				Head:         world[j.Node].Col(3).Vec3(),
				HitRadius:    j.HitRadius,
				Stiffness:    j.Stiffness,
				GravityPower: j.GravityPower,
				GravityDir:   mgl64.Vec3(j.GravityDir),
				DragForce:    j.DragForce,
			})
		}
		springs[i] = spring
	}
	return springs, groups, nil
}

func (doc *Document) importSprings0(names []string, world []mgl64.Mat4) ([]*springbone.Spring, []*springbone.ColliderGroup, error) {
	ext, ok := doc.Extensions[ExtensionName].(*VRM)
	if !ok || ext.SecondaryAnimation == nil {
		return nil, nil, nil
	}
	sa := ext.SecondaryAnimation

	groups := make([]*springbone.ColliderGroup, len(sa.ColliderGroups))
	for i, g := range sa.ColliderGroups {
		name, err := doc.nodeName(names, g.Node)
		if err != nil {
			return nil, nil, err
		}
		group := &springbone.ColliderGroup{Name: name}
		for _, c := range g.Colliders {
			offset := mgl64.Vec3{}
			if c.Offset != nil {
				offset = mgl64.Vec3{c.Offset.X, c.Offset.Y, c.Offset.Z}
			}
			group.Colliders = append(group.Colliders, springbone.Collider{
				Node: name,
				Shape: &springbone.Sphere{
					Offset: transformPoint(world[g.Node], offset),
					Radius: c.Radius,
				},
			})
		}
		groups[i] = group
	}

	var springs []*springbone.Spring
	for _, bg := range sa.BoneGroups {
		gravityDir := mgl64.Vec3{0, -1, 0}
		if bg.GravityDir != nil {
			gravityDir = mgl64.Vec3{bg.GravityDir.X, bg.GravityDir.Y, bg.GravityDir.Z}
		}
		center := ""
		if bg.Center >= 0 {
			name, err := doc.nodeName(names, bg.Center)
			if err != nil {
				return nil, nil, err
			}
			center = name
		}
		// Each listed bone is the root of one chain following first
		// children down to a leaf.
		for _, root := range bg.Bones {
			if _, err := doc.nodeName(names, root); err != nil {
				return nil, nil, err
			}
			spring := &springbone.Spring{
				Name:           bg.Comment,
				ColliderGroups: append([]int(nil), bg.ColliderGroups...),
				Center:         center,
			}
			if spring.Name == "" {
				spring.Name = names[root]
			}
			visited := map[int]bool{}
			for node := root; !visited[node]; {
				visited[node] = true
				spring.Joints = append(spring.Joints, springbone.Joint{
					Name:         names[node],
					Head:         world[node].Col(3).Vec3(),
					HitRadius:    bg.HitRadius,
					Stiffness:    bg.Stiffness,
					GravityPower: bg.GravityPower,
					GravityDir:   gravityDir,
					DragForce:    bg.DragForce,
				})
				children := doc.Nodes[node].Children
				if len(children) == 0 || int(children[0]) >= len(doc.Nodes) {
					break
				}
				node = int(children[0])
			}
			springs = append(springs, spring)
		}
	}
	return springs, groups, nil
}

// ExportSprings writes simulator configuration back into the document's
// spring bone extension, converting world space shapes to node local space.
func (doc *Document) ExportSprings(springs []*springbone.Spring, groups []*springbone.ColliderGroup) error {
	nodes := map[string]int{}
	for i, name := range doc.NodeNames() {
		nodes[name] = i
	}
	world := doc.NodeWorldTransforms()
	if doc.IsVRM1() || doc.hasSpringBone1() {
		return doc.exportSprings1(springs, groups, nodes, world)
	}
	return doc.exportSprings0(springs, groups, nodes, world)
}

func nodeIndexOf(nodes map[string]int, name string) (int, error) {
	index, ok := nodes[name]
	if !ok {
		return 0, fmt.Errorf("unknown node: %q", name)
	}
	return index, nil
}

func (doc *Document) exportSprings1(springs []*springbone.Spring, groups []*springbone.ColliderGroup, nodes map[string]int, world []mgl64.Mat4) error {
	ext := doc.SpringBone()
	ext.Colliders = nil
	ext.ColliderGroups = nil
	ext.Springs = nil

	for _, g := range groups {
		group := &ColliderGroup1{Name: g.Name}
		for _, c := range g.Colliders {
			index, err := nodeIndexOf(nodes, c.Node)
			if err != nil {
				return err
			}
			inv := world[index].Inv()
			var shape ColliderShape
			switch s := c.Shape.(type) {
			case *springbone.Sphere:
				shape.Sphere = &SphereShape{
					Offset: [3]float64(transformPoint(inv, s.Offset)),
					Radius: s.Radius,
				}
			case *springbone.Capsule:
				shape.Capsule = &CapsuleShape{
					Offset: [3]float64(transformPoint(inv, s.Offset)),
					Tail:   [3]float64(transformPoint(inv, s.Tail)),
					Radius: s.Radius,
				}
			default:
				return fmt.Errorf("unsupported collider shape: %T", c.Shape)
			}
			group.Colliders = append(group.Colliders, len(ext.Colliders))
			ext.Colliders = append(ext.Colliders, &Collider1{Node: index, Shape: shape})
		}
		ext.ColliderGroups = append(ext.ColliderGroups, group)
	}

	for _, s := range springs {
		spring := &Spring1{
			Name:           s.Name,
			ColliderGroups: append([]int(nil), s.ColliderGroups...),
		}
		if s.Center != "" {
			index, err := nodeIndexOf(nodes, s.Center)
			if err != nil {
				return err
			}
			spring.Center = &index
		}
		for _, j := range s.Joints {
			index, err := nodeIndexOf(nodes, j.Name)
			if err != nil {
				return err
			}
			spring.Joints = append(spring.Joints, &SpringJoint1{
				Node:         index,
				HitRadius:    j.HitRadius,
				Stiffness:    j.Stiffness,
				GravityPower: j.GravityPower,
				GravityDir:   [3]float64(j.GravityDir),
				DragForce:    j.DragForce,
			})
		}
		ext.Springs = append(ext.Springs, spring)
	}
	return nil
}

func (doc *Document) exportSprings0(springs []*springbone.Spring, groups []*springbone.ColliderGroup, nodes map[string]int, world []mgl64.Mat4) error {
	ext := doc.VRM()
	sa := &SecondaryAnimation{
		BoneGroups:     []*SecondaryAnimationBoneGroup{},
		ColliderGroups: []*SecondaryAnimationColliderGroup{},
	}
	ext.SecondaryAnimation = sa

	for _, g := range groups {
		group := &SecondaryAnimationColliderGroup{Node: -1}
		for _, c := range g.Colliders {
			index, err := nodeIndexOf(nodes, c.Node)
			if err != nil {
				return err
			}
			sphere, ok := c.Shape.(*springbone.Sphere)
			if !ok {
				// The 0.x schema only has sphere colliders.
				continue
			}
			if group.Node == -1 {
				group.Node = index
			}
			offset := transformPoint(world[group.Node].Inv(), sphere.Offset)
			group.Colliders = append(group.Colliders, &SecondaryAnimationCollider{
				Offset: &Vector3{X: offset.X(), Y: offset.Y(), Z: offset.Z()},
				Radius: sphere.Radius,
			})
		}
		sa.ColliderGroups = append(sa.ColliderGroups, group)
	}

	for _, s := range springs {
		if len(s.Joints) == 0 {
			continue
		}
		root, err := nodeIndexOf(nodes, s.Joints[0].Name)
		if err != nil {
			return err
		}
		center := -1
		if s.Center != "" {
			if center, err = nodeIndexOf(nodes, s.Center); err != nil {
				return err
			}
		}
		// Per chain parameters come from the root joint; the 0.x schema has
		// no per joint values.
		j := s.Joints[0]
		sa.BoneGroups = append(sa.BoneGroups, &SecondaryAnimationBoneGroup{
			Comment:        s.Name,
			Stiffness:      j.Stiffness,
			GravityPower:   j.GravityPower,
			GravityDir:     &Vector3{X: j.GravityDir.X(), Y: j.GravityDir.Y(), Z: j.GravityDir.Z()},
			DragForce:      j.DragForce,
			Center:         center,
			HitRadius:      j.HitRadius,
			Bones:          []int{root},
			ColliderGroups: append([]int(nil), s.ColliderGroups...),
		})
	}
	return nil
}
