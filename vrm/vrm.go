package vrm

// https://vrm.dev/
// https://github.com/vrm-c/vrm-specification/blob/master/specification/0.0/README.ja.md

import (
	"encoding/json"

	"github.com/qmuntal/gltf"

	"github.com/binzume/vrmrig/humanoid"
)

const (
	ExtensionName   = "VRM"
	ExporterVersion = "vrmrig-0.1"
)

func init() {
	gltf.RegisterExtension(ExtensionName, Unmarshal)
}

type Metadata struct {
	Title   string `json:"title"`
	Version string `json:"version"`
	Author  string `json:"author"`

	LicenseName     string `json:"licenseName,omitempty"`
	OtherLicenseUrl string `json:"otherLicenseUrl,omitempty"`
}

// Vector3 is the {x,y,z} object form used by the 0.x schema.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Bone struct {
	Bone             string   `json:"bone"`
	Node             int      `json:"node"`
	UseDefaultValues bool     `json:"useDefaultValues"`
	Min              *Vector3 `json:"min,omitempty"`
	Max              *Vector3 `json:"max,omitempty"`
	Center           *Vector3 `json:"center,omitempty"`
	AxisLength       float64  `json:"axisLength,omitempty"`
}

type Humanoid struct {
	Bones []*Bone `json:"humanBones"`
}

// SecondaryAnimationBoneGroup is one spring chain. "stiffiness" is the
// official spelling in the 0.x schema.
type SecondaryAnimationBoneGroup struct {
	Comment        string   `json:"comment"`
	Stiffness      float64  `json:"stiffiness"`
	GravityPower   float64  `json:"gravityPower"`
	GravityDir     *Vector3 `json:"gravityDir"`
	DragForce      float64  `json:"dragForce"`
	Center         int      `json:"center"`
	HitRadius      float64  `json:"hitRadius"`
	Bones          []int    `json:"bones"`
	ColliderGroups []int    `json:"colliderGroups"`
}

type SecondaryAnimationCollider struct {
	Offset *Vector3 `json:"offset"`
	Radius float64  `json:"radius"`
}

type SecondaryAnimationColliderGroup struct {
	Node      int                           `json:"node"`
	Colliders []*SecondaryAnimationCollider `json:"colliders"`
}

type SecondaryAnimation struct {
	BoneGroups     []*SecondaryAnimationBoneGroup     `json:"boneGroups"`
	ColliderGroups []*SecondaryAnimationColliderGroup `json:"colliderGroups"`
}

type BlendShapeGroup struct {
	Name       string        `json:"name"`
	PresetName string        `json:"presetName"`
	Binds      []interface{} `json:"binds"`
}

type BlendShapeMaster struct {
	BlendShapeGroups []*BlendShapeGroup `json:"blendShapeGroups"`
}

type MaterialProperty struct {
	Name              string                 `json:"name"`
	Shader            string                 `json:"shader"`
	RenderQueue       int                    `json:"renderQueue"`
	FloatProperties   map[string]float64     `json:"floatProperties"`
	VectorProperties  map[string]interface{} `json:"vectorProperties"`
	TextureProperties map[string]interface{} `json:"textureProperties"`
	KeywordMap        map[string]interface{} `json:"keywordMap"`
	TagMap            map[string]interface{} `json:"tagMap"`
}

type VRM struct {
	ExporterVersion string   `json:"exporterVersion"`
	SpecVersion     string   `json:"specVersion,omitempty"`
	Meta            Metadata `json:"meta"`
	Humanoid        Humanoid `json:"humanoid"`

	FirstPerson        interface{}         `json:"firstPerson,omitempty"`
	BlendShapeMaster   BlendShapeMaster    `json:"blendShapeMaster"`
	SecondaryAnimation *SecondaryAnimation `json:"secondaryAnimation,omitempty"`
	MaterialProperties []*MaterialProperty `json:"materialProperties"`
}

func NewVRM() *VRM {
	return &VRM{ExporterVersion: ExporterVersion, SpecVersion: "0.0"}
}

func Unmarshal(data []byte) (interface{}, error) {
	var vrmext VRM
	if err := json.Unmarshal(data, &vrmext); err != nil {
		return nil, err
	}
	return &vrmext, nil
}

// CheckRequiredBones returns the names of mandatory bones missing from the
// humanoid table.
func (v *VRM) CheckRequiredBones() []string {
	assigned := map[string]bool{}
	for _, bone := range v.Humanoid.Bones {
		assigned[bone.Bone] = true
	}
	var missing []string
	for _, spec := range humanoid.VRM0.Required() {
		if !assigned[string(spec.Name)] {
			missing = append(missing, string(spec.Name))
		}
	}
	return missing
}
