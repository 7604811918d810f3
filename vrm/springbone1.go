package vrm

// https://github.com/vrm-c/vrm-specification/tree/master/specification/VRMC_springBone-1.0

import (
	"encoding/json"

	"github.com/qmuntal/gltf"
)

const SpringBoneExtensionName = "VRMC_springBone"

func init() {
	gltf.RegisterExtension(SpringBoneExtensionName, UnmarshalSpringBone)
}

type SphereShape struct {
	Offset [3]float64 `json:"offset"`
	Radius float64    `json:"radius"`
}

type CapsuleShape struct {
	Offset [3]float64 `json:"offset"`
	Radius float64    `json:"radius"`
	Tail   [3]float64 `json:"tail"`
}

// ColliderShape holds exactly one of its members.
type ColliderShape struct {
	Sphere  *SphereShape  `json:"sphere,omitempty"`
	Capsule *CapsuleShape `json:"capsule,omitempty"`
}

type Collider1 struct {
	Node  int           `json:"node"`
	Shape ColliderShape `json:"shape"`
}

type ColliderGroup1 struct {
	Name      string `json:"name,omitempty"`
	Colliders []int  `json:"colliders"`
}

type SpringJoint1 struct {
	Node         int        `json:"node"`
	HitRadius    float64    `json:"hitRadius,omitempty"`
	Stiffness    float64    `json:"stiffness"`
	GravityPower float64    `json:"gravityPower,omitempty"`
	GravityDir   [3]float64 `json:"gravityDir"`
	DragForce    float64    `json:"dragForce"`
}

// UnmarshalJSON fills the schema defaults for omitted fields, so a joint
// that only names its node still swings: stiffness 1.0, dragForce 0.5,
// gravityDir straight down.
func (j *SpringJoint1) UnmarshalJSON(data []byte) error {
	type springJoint1 SpringJoint1
	tmp := springJoint1{Stiffness: 1, DragForce: 0.5, GravityDir: [3]float64{0, -1, 0}}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*j = SpringJoint1(tmp)
	return nil
}

type Spring1 struct {
	Name           string          `json:"name,omitempty"`
	Joints         []*SpringJoint1 `json:"joints"`
	ColliderGroups []int           `json:"colliderGroups,omitempty"`
	Center         *int            `json:"center,omitempty"`
}

type SpringBone struct {
	SpecVersion    string            `json:"specVersion"`
	Colliders      []*Collider1      `json:"colliders,omitempty"`
	ColliderGroups []*ColliderGroup1 `json:"colliderGroups,omitempty"`
	Springs        []*Spring1        `json:"springs,omitempty"`
}

func NewSpringBone() *SpringBone {
	return &SpringBone{SpecVersion: "1.0"}
}

func UnmarshalSpringBone(data []byte) (interface{}, error) {
	var ext SpringBone
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, err
	}
	return &ext, nil
}
