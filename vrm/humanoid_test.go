package vrm

import (
	"testing"

	"github.com/binzume/vrmrig/humanoid"
)

func mixamoDoc() *Document {
	return testDoc([][2]string{
		{"mixamorig:Hips", ""},
		{"mixamorig:Spine", "mixamorig:Hips"},
		{"mixamorig:Spine1", "mixamorig:Spine"},
		{"mixamorig:Spine2", "mixamorig:Spine1"},
		{"mixamorig:Neck", "mixamorig:Spine2"},
		{"mixamorig:Head", "mixamorig:Neck"},
		{"mixamorig:LeftArm", "mixamorig:Spine2"},
		{"mixamorig:LeftForeArm", "mixamorig:LeftArm"},
		{"mixamorig:LeftHand", "mixamorig:LeftForeArm"},
		{"mixamorig:RightArm", "mixamorig:Spine2"},
		{"mixamorig:RightForeArm", "mixamorig:RightArm"},
		{"mixamorig:RightHand", "mixamorig:RightForeArm"},
		{"mixamorig:LeftUpLeg", "mixamorig:Hips"},
		{"mixamorig:LeftLeg", "mixamorig:LeftUpLeg"},
		{"mixamorig:LeftFoot", "mixamorig:LeftLeg"},
		{"mixamorig:RightUpLeg", "mixamorig:Hips"},
		{"mixamorig:RightLeg", "mixamorig:RightUpLeg"},
		{"mixamorig:RightFoot", "mixamorig:RightLeg"},
	})
}

func TestDetectHumanoid(t *testing.T) {
	doc := mixamoDoc()
	assignments, err := doc.DetectHumanoid()
	if err != nil {
		t.Fatal(err)
	}

	doc.VRM1() // mark as 1.0 before applying
	doc.ApplyHumanoid(assignments)
	bones := doc.HumanoidBoneNodes()
	if bones[humanoid.Hips] != 0 {
		t.Error("hips node:", bones[humanoid.Hips])
	}
	if bones[humanoid.LeftLowerArm] != 7 {
		t.Error("leftLowerArm node:", bones[humanoid.LeftLowerArm])
	}
}

func TestDetectHumanoidNoMatch(t *testing.T) {
	doc := testDoc([][2]string{{"a", ""}, {"b", "a"}})
	if _, err := doc.DetectHumanoid(); err == nil {
		t.Error("expected error for unknown naming convention")
	}
}

func TestApplyHumanoid0(t *testing.T) {
	doc := mixamoDoc()
	assignments, err := doc.DetectHumanoid()
	if err != nil {
		t.Fatal(err)
	}
	doc.ApplyHumanoid(assignments)
	ext := doc.VRM()
	// chest (Spine2) is optional in 0.x but present in the rig; the neck
	// requirement is satisfiable too, so validation must pass.
	if err := doc.ValidateBones(); err != nil {
		t.Error(err)
	}
	found := map[string]int{}
	for _, b := range ext.Humanoid.Bones {
		found[b.Bone] = b.Node
	}
	if found["hips"] != 0 || found["head"] != 5 {
		t.Error("humanoid:", found)
	}
}

func TestConvertBoneName(t *testing.T) {
	if got := ConvertBoneName(humanoid.LeftThumbMetacarpal, humanoid.VRM1, humanoid.VRM0); got != humanoid.LeftThumbProximal {
		t.Error("metacarpal:", got)
	}
	if got := ConvertBoneName(humanoid.LeftThumbProximal, humanoid.VRM1, humanoid.VRM0); got != humanoid.LeftThumbIntermediate {
		t.Error("vrm1 proximal:", got)
	}
	if got := ConvertBoneName(humanoid.LeftThumbProximal, humanoid.VRM0, humanoid.VRM1); got != humanoid.LeftThumbMetacarpal {
		t.Error("vrm0 proximal:", got)
	}
	if got := ConvertBoneName(humanoid.Hips, humanoid.VRM0, humanoid.VRM1); got != humanoid.Hips {
		t.Error("hips:", got)
	}
	if got := ConvertBoneName(humanoid.LeftThumbDistal, humanoid.VRM0, humanoid.VRM1); got != humanoid.LeftThumbDistal {
		t.Error("distal:", got)
	}
}
