package vrm

// https://github.com/vrm-c/vrm-specification/tree/master/specification/VRMC_vrm-1.0

import (
	"encoding/json"

	"github.com/qmuntal/gltf"
)

const VRM1ExtensionName = "VRMC_vrm"

func init() {
	gltf.RegisterExtension(VRM1ExtensionName, UnmarshalVRM1)
}

type Metadata1 struct {
	Name    string   `json:"name"`
	Version string   `json:"version,omitempty"`
	Authors []string `json:"authors"`

	LicenseUrl         string `json:"licenseUrl,omitempty"`
	ThirdPartyLicenses string `json:"thirdPartyLicenses,omitempty"`
}

// HumanBone1 is one entry of the 1.0 humanBones object.
type HumanBone1 struct {
	Node int `json:"node"`
}

type Humanoid1 struct {
	HumanBones map[string]*HumanBone1 `json:"humanBones"`
}

type VRM1 struct {
	SpecVersion string    `json:"specVersion"`
	Meta        Metadata1 `json:"meta"`
	Humanoid    Humanoid1 `json:"humanoid"`

	FirstPerson interface{} `json:"firstPerson,omitempty"`
	LookAt      interface{} `json:"lookAt,omitempty"`
	Expressions interface{} `json:"expressions,omitempty"`
}

func NewVRM1() *VRM1 {
	return &VRM1{SpecVersion: "1.0", Humanoid: Humanoid1{HumanBones: map[string]*HumanBone1{}}}
}

func UnmarshalVRM1(data []byte) (interface{}, error) {
	var ext VRM1
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, err
	}
	return &ext, nil
}
