package mapping

import (
	"fmt"

	"github.com/binzume/vrmrig/humanoid"
	"github.com/binzume/vrmrig/skeleton"
)

// Entry associates one raw bone name of a rig convention with a human bone.
type Entry struct {
	Name string
	Bone humanoid.BoneName
}

// Table is the bone-name dictionary of one rig convention. Entries keep
// their definition order; lookups go through canonicalized names. A Table
// is read-only once built.
type Table struct {
	Name    string
	Specs   *humanoid.Specifications
	entries []Entry
	byCanon map[string]*humanoid.Specification
}

// NewTable builds a convention table. Entries whose canonicalized names
// collide, or that reference bones outside the spec version, indicate a
// broken table definition and panic.
func NewTable(name string, specs *humanoid.Specifications, entries []Entry) *Table {
	t := &Table{
		Name:    name,
		Specs:   specs,
		entries: entries,
		byCanon: map[string]*humanoid.Specification{},
	}
	for _, e := range entries {
		key := Canonicalize(e.Name)
		if _, exists := t.byCanon[key]; exists {
			panic(fmt.Sprintf("mapping: %s: duplicate canonical name %q", name, key))
		}
		t.byCanon[key] = specs.Get(e.Bone)
	}
	return t
}

// Entries returns the table entries in definition order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Lookup returns the specification mapped to an already-canonicalized name,
// or nil.
func (t *Table) Lookup(canonical string) *humanoid.Specification {
	return t.byCanon[canonical]
}

// Conventions returns the built-in tables in resolution priority order.
// MMD tables depend on the skeleton (specified vs. romanized bone names),
// hence the graph parameter.
func Conventions(g *skeleton.Graph) []*Table {
	return []*Table{
		MMDConvention(g),
		mixamo,
		readyPlayerMe,
		catsFixedModel,
		rocketboxBip01,
		rocketboxBip02,
		rigifyMetarig,
		vrm1Native,
		vrm0Native,
	}
}

// nativeTable maps a spec version's own bone names onto themselves, for
// models authored with VRM naming in the first place.
func nativeTable(name string, specs *humanoid.Specifications) *Table {
	var entries []Entry
	for _, s := range specs.All() {
		entries = append(entries, Entry{Name: string(s.Name), Bone: s.Name})
	}
	return NewTable(name, specs, entries)
}

var vrm0Native = nativeTable("VRM0", humanoid.VRM0)
var vrm1Native = nativeTable("VRM1", humanoid.VRM1)

var mixamo = NewTable("Mixamo", humanoid.VRM1, []Entry{
	{"mixamorig:Hips", humanoid.Hips},
	{"mixamorig:Spine", humanoid.Spine},
	{"mixamorig:Spine1", humanoid.Chest},
	{"mixamorig:Spine2", humanoid.UpperChest},
	{"mixamorig:Neck", humanoid.Neck},
	{"mixamorig:Head", humanoid.Head},
	{"mixamorig:LeftShoulder", humanoid.LeftShoulder},
	{"mixamorig:LeftArm", humanoid.LeftUpperArm},
	{"mixamorig:LeftForeArm", humanoid.LeftLowerArm},
	{"mixamorig:LeftHand", humanoid.LeftHand},
	{"mixamorig:LeftHandThumb1", humanoid.LeftThumbMetacarpal},
	{"mixamorig:LeftHandThumb2", humanoid.LeftThumbProximal},
	{"mixamorig:LeftHandThumb3", humanoid.LeftThumbDistal},
	{"mixamorig:LeftHandIndex1", humanoid.LeftIndexProximal},
	{"mixamorig:LeftHandIndex2", humanoid.LeftIndexIntermediate},
	{"mixamorig:LeftHandIndex3", humanoid.LeftIndexDistal},
	{"mixamorig:LeftHandMiddle1", humanoid.LeftMiddleProximal},
	{"mixamorig:LeftHandMiddle2", humanoid.LeftMiddleIntermediate},
	{"mixamorig:LeftHandMiddle3", humanoid.LeftMiddleDistal},
	{"mixamorig:LeftHandRing1", humanoid.LeftRingProximal},
	{"mixamorig:LeftHandRing2", humanoid.LeftRingIntermediate},
	{"mixamorig:LeftHandRing3", humanoid.LeftRingDistal},
	{"mixamorig:LeftHandPinky1", humanoid.LeftLittleProximal},
	{"mixamorig:LeftHandPinky2", humanoid.LeftLittleIntermediate},
	{"mixamorig:LeftHandPinky3", humanoid.LeftLittleDistal},
	{"mixamorig:RightShoulder", humanoid.RightShoulder},
	{"mixamorig:RightArm", humanoid.RightUpperArm},
	{"mixamorig:RightForeArm", humanoid.RightLowerArm},
	{"mixamorig:RightHand", humanoid.RightHand},
	{"mixamorig:RightHandThumb1", humanoid.RightThumbMetacarpal},
	{"mixamorig:RightHandThumb2", humanoid.RightThumbProximal},
	{"mixamorig:RightHandThumb3", humanoid.RightThumbDistal},
	{"mixamorig:RightHandIndex1", humanoid.RightIndexProximal},
	{"mixamorig:RightHandIndex2", humanoid.RightIndexIntermediate},
	{"mixamorig:RightHandIndex3", humanoid.RightIndexDistal},
	{"mixamorig:RightHandMiddle1", humanoid.RightMiddleProximal},
	{"mixamorig:RightHandMiddle2", humanoid.RightMiddleIntermediate},
	{"mixamorig:RightHandMiddle3", humanoid.RightMiddleDistal},
	{"mixamorig:RightHandRing1", humanoid.RightRingProximal},
	{"mixamorig:RightHandRing2", humanoid.RightRingIntermediate},
	{"mixamorig:RightHandRing3", humanoid.RightRingDistal},
	{"mixamorig:RightHandPinky1", humanoid.RightLittleProximal},
	{"mixamorig:RightHandPinky2", humanoid.RightLittleIntermediate},
	{"mixamorig:RightHandPinky3", humanoid.RightLittleDistal},
	{"mixamorig:LeftUpLeg", humanoid.LeftUpperLeg},
	{"mixamorig:LeftLeg", humanoid.LeftLowerLeg},
	{"mixamorig:LeftFoot", humanoid.LeftFoot},
	{"mixamorig:LeftToeBase", humanoid.LeftToes},
	{"mixamorig:RightUpLeg", humanoid.RightUpperLeg},
	{"mixamorig:RightLeg", humanoid.RightLowerLeg},
	{"mixamorig:RightFoot", humanoid.RightFoot},
	{"mixamorig:RightToeBase", humanoid.RightToes},
})

// Ready Player Me rigs use Mixamo naming without the prefix.
var readyPlayerMe = NewTable("ReadyPlayerMe", humanoid.VRM1, []Entry{
	{"Hips", humanoid.Hips},
	{"Spine", humanoid.Spine},
	{"Spine1", humanoid.Chest},
	{"Spine2", humanoid.UpperChest},
	{"Neck", humanoid.Neck},
	{"Head", humanoid.Head},
	{"LeftEye", humanoid.LeftEye},
	{"RightEye", humanoid.RightEye},
	{"LeftShoulder", humanoid.LeftShoulder},
	{"LeftArm", humanoid.LeftUpperArm},
	{"LeftForeArm", humanoid.LeftLowerArm},
	{"LeftHand", humanoid.LeftHand},
	{"LeftHandThumb1", humanoid.LeftThumbMetacarpal},
	{"LeftHandThumb2", humanoid.LeftThumbProximal},
	{"LeftHandThumb3", humanoid.LeftThumbDistal},
	{"LeftHandIndex1", humanoid.LeftIndexProximal},
	{"LeftHandIndex2", humanoid.LeftIndexIntermediate},
	{"LeftHandIndex3", humanoid.LeftIndexDistal},
	{"LeftHandMiddle1", humanoid.LeftMiddleProximal},
	{"LeftHandMiddle2", humanoid.LeftMiddleIntermediate},
	{"LeftHandMiddle3", humanoid.LeftMiddleDistal},
	{"LeftHandRing1", humanoid.LeftRingProximal},
	{"LeftHandRing2", humanoid.LeftRingIntermediate},
	{"LeftHandRing3", humanoid.LeftRingDistal},
	{"LeftHandPinky1", humanoid.LeftLittleProximal},
	{"LeftHandPinky2", humanoid.LeftLittleIntermediate},
	{"LeftHandPinky3", humanoid.LeftLittleDistal},
	{"RightShoulder", humanoid.RightShoulder},
	{"RightArm", humanoid.RightUpperArm},
	{"RightForeArm", humanoid.RightLowerArm},
	{"RightHand", humanoid.RightHand},
	{"RightHandThumb1", humanoid.RightThumbMetacarpal},
	{"RightHandThumb2", humanoid.RightThumbProximal},
	{"RightHandThumb3", humanoid.RightThumbDistal},
	{"RightHandIndex1", humanoid.RightIndexProximal},
	{"RightHandIndex2", humanoid.RightIndexIntermediate},
	{"RightHandIndex3", humanoid.RightIndexDistal},
	{"RightHandMiddle1", humanoid.RightMiddleProximal},
	{"RightHandMiddle2", humanoid.RightMiddleIntermediate},
	{"RightHandMiddle3", humanoid.RightMiddleDistal},
	{"RightHandRing1", humanoid.RightRingProximal},
	{"RightHandRing2", humanoid.RightRingIntermediate},
	{"RightHandRing3", humanoid.RightRingDistal},
	{"RightHandPinky1", humanoid.RightLittleProximal},
	{"RightHandPinky2", humanoid.RightLittleIntermediate},
	{"RightHandPinky3", humanoid.RightLittleDistal},
	{"LeftUpLeg", humanoid.LeftUpperLeg},
	{"LeftLeg", humanoid.LeftLowerLeg},
	{"LeftFoot", humanoid.LeftFoot},
	{"LeftToeBase", humanoid.LeftToes},
	{"RightUpLeg", humanoid.RightUpperLeg},
	{"RightLeg", humanoid.RightLowerLeg},
	{"RightFoot", humanoid.RightFoot},
	{"RightToeBase", humanoid.RightToes},
})

var catsFixedModel = NewTable("CatsFixedModel", humanoid.VRM0, []Entry{
	{"Hips", humanoid.Hips},
	{"Spine", humanoid.Spine},
	{"Chest", humanoid.Chest},
	{"Upper Chest", humanoid.UpperChest},
	{"Neck", humanoid.Neck},
	{"Head", humanoid.Head},
	{"Eye_L", humanoid.LeftEye},
	{"Eye_R", humanoid.RightEye},
	{"Left shoulder", humanoid.LeftShoulder},
	{"Left arm", humanoid.LeftUpperArm},
	{"Left elbow", humanoid.LeftLowerArm},
	{"Left wrist", humanoid.LeftHand},
	{"Thumb0_L", humanoid.LeftThumbProximal},
	{"Thumb1_L", humanoid.LeftThumbIntermediate},
	{"Thumb2_L", humanoid.LeftThumbDistal},
	{"IndexFinger1_L", humanoid.LeftIndexProximal},
	{"IndexFinger2_L", humanoid.LeftIndexIntermediate},
	{"IndexFinger3_L", humanoid.LeftIndexDistal},
	{"MiddleFinger1_L", humanoid.LeftMiddleProximal},
	{"MiddleFinger2_L", humanoid.LeftMiddleIntermediate},
	{"MiddleFinger3_L", humanoid.LeftMiddleDistal},
	{"RingFinger1_L", humanoid.LeftRingProximal},
	{"RingFinger2_L", humanoid.LeftRingIntermediate},
	{"RingFinger3_L", humanoid.LeftRingDistal},
	{"LittleFinger1_L", humanoid.LeftLittleProximal},
	{"LittleFinger2_L", humanoid.LeftLittleIntermediate},
	{"LittleFinger3_L", humanoid.LeftLittleDistal},
	{"Right shoulder", humanoid.RightShoulder},
	{"Right arm", humanoid.RightUpperArm},
	{"Right elbow", humanoid.RightLowerArm},
	{"Right wrist", humanoid.RightHand},
	{"Thumb0_R", humanoid.RightThumbProximal},
	{"Thumb1_R", humanoid.RightThumbIntermediate},
	{"Thumb2_R", humanoid.RightThumbDistal},
	{"IndexFinger1_R", humanoid.RightIndexProximal},
	{"IndexFinger2_R", humanoid.RightIndexIntermediate},
	{"IndexFinger3_R", humanoid.RightIndexDistal},
	{"MiddleFinger1_R", humanoid.RightMiddleProximal},
	{"MiddleFinger2_R", humanoid.RightMiddleIntermediate},
	{"MiddleFinger3_R", humanoid.RightMiddleDistal},
	{"RingFinger1_R", humanoid.RightRingProximal},
	{"RingFinger2_R", humanoid.RightRingIntermediate},
	{"RingFinger3_R", humanoid.RightRingDistal},
	{"LittleFinger1_R", humanoid.RightLittleProximal},
	{"LittleFinger2_R", humanoid.RightLittleIntermediate},
	{"LittleFinger3_R", humanoid.RightLittleDistal},
	{"Left leg", humanoid.LeftUpperLeg},
	{"Left knee", humanoid.LeftLowerLeg},
	{"Left ankle", humanoid.LeftFoot},
	{"Left toe", humanoid.LeftToes},
	{"Right leg", humanoid.RightUpperLeg},
	{"Right knee", humanoid.RightLowerLeg},
	{"Right ankle", humanoid.RightFoot},
	{"Right toe", humanoid.RightToes},
})

// rocketboxTable builds the Microsoft Rocketbox biped table for one rig
// prefix ("Bip01" or "Bip02").
func rocketboxTable(prefix string) *Table {
	side := func(s, name string) string { return prefix + " " + s + " " + name }
	entries := []Entry{
		{prefix + " Pelvis", humanoid.Hips},
		{prefix + " Spine", humanoid.Spine},
		{prefix + " Spine1", humanoid.Chest},
		{prefix + " Spine2", humanoid.UpperChest},
		{prefix + " Neck", humanoid.Neck},
		{prefix + " Head", humanoid.Head},
	}
	sides := []struct {
		marker string
		bones  []humanoid.BoneName
	}{
		{"L", []humanoid.BoneName{
			humanoid.LeftShoulder, humanoid.LeftUpperArm, humanoid.LeftLowerArm, humanoid.LeftHand,
			humanoid.LeftThumbMetacarpal, humanoid.LeftThumbProximal, humanoid.LeftThumbDistal,
			humanoid.LeftIndexProximal, humanoid.LeftIndexIntermediate, humanoid.LeftIndexDistal,
			humanoid.LeftMiddleProximal, humanoid.LeftMiddleIntermediate, humanoid.LeftMiddleDistal,
			humanoid.LeftRingProximal, humanoid.LeftRingIntermediate, humanoid.LeftRingDistal,
			humanoid.LeftLittleProximal, humanoid.LeftLittleIntermediate, humanoid.LeftLittleDistal,
			humanoid.LeftUpperLeg, humanoid.LeftLowerLeg, humanoid.LeftFoot, humanoid.LeftToes,
		}},
		{"R", []humanoid.BoneName{
			humanoid.RightShoulder, humanoid.RightUpperArm, humanoid.RightLowerArm, humanoid.RightHand,
			humanoid.RightThumbMetacarpal, humanoid.RightThumbProximal, humanoid.RightThumbDistal,
			humanoid.RightIndexProximal, humanoid.RightIndexIntermediate, humanoid.RightIndexDistal,
			humanoid.RightMiddleProximal, humanoid.RightMiddleIntermediate, humanoid.RightMiddleDistal,
			humanoid.RightRingProximal, humanoid.RightRingIntermediate, humanoid.RightRingDistal,
			humanoid.RightLittleProximal, humanoid.RightLittleIntermediate, humanoid.RightLittleDistal,
			humanoid.RightUpperLeg, humanoid.RightLowerLeg, humanoid.RightFoot, humanoid.RightToes,
		}},
	}
	names := []string{
		"Clavicle", "UpperArm", "Forearm", "Hand",
		"Finger0", "Finger01", "Finger02",
		"Finger1", "Finger11", "Finger12",
		"Finger2", "Finger21", "Finger22",
		"Finger3", "Finger31", "Finger32",
		"Finger4", "Finger41", "Finger42",
		"Thigh", "Calf", "Foot", "Toe0",
	}
	for _, s := range sides {
		for i, n := range names {
			entries = append(entries, Entry{side(s.marker, n), s.bones[i]})
		}
	}
	return NewTable("Rocketbox"+prefix, humanoid.VRM1, entries)
}

var rocketboxBip01 = rocketboxTable("Bip01")
var rocketboxBip02 = rocketboxTable("Bip02")

var rigifyMetarig = NewTable("RigifyMetarig", humanoid.VRM1, []Entry{
	{"spine", humanoid.Hips},
	{"spine.001", humanoid.Spine},
	{"spine.002", humanoid.Chest},
	{"spine.003", humanoid.UpperChest},
	{"spine.004", humanoid.Neck},
	{"spine.006", humanoid.Head},
	{"eye.L", humanoid.LeftEye},
	{"eye.R", humanoid.RightEye},
	{"shoulder.L", humanoid.LeftShoulder},
	{"upper_arm.L", humanoid.LeftUpperArm},
	{"forearm.L", humanoid.LeftLowerArm},
	{"hand.L", humanoid.LeftHand},
	{"thumb.01.L", humanoid.LeftThumbMetacarpal},
	{"thumb.02.L", humanoid.LeftThumbProximal},
	{"thumb.03.L", humanoid.LeftThumbDistal},
	{"f_index.01.L", humanoid.LeftIndexProximal},
	{"f_index.02.L", humanoid.LeftIndexIntermediate},
	{"f_index.03.L", humanoid.LeftIndexDistal},
	{"f_middle.01.L", humanoid.LeftMiddleProximal},
	{"f_middle.02.L", humanoid.LeftMiddleIntermediate},
	{"f_middle.03.L", humanoid.LeftMiddleDistal},
	{"f_ring.01.L", humanoid.LeftRingProximal},
	{"f_ring.02.L", humanoid.LeftRingIntermediate},
	{"f_ring.03.L", humanoid.LeftRingDistal},
	{"f_pinky.01.L", humanoid.LeftLittleProximal},
	{"f_pinky.02.L", humanoid.LeftLittleIntermediate},
	{"f_pinky.03.L", humanoid.LeftLittleDistal},
	{"shoulder.R", humanoid.RightShoulder},
	{"upper_arm.R", humanoid.RightUpperArm},
	{"forearm.R", humanoid.RightLowerArm},
	{"hand.R", humanoid.RightHand},
	{"thumb.01.R", humanoid.RightThumbMetacarpal},
	{"thumb.02.R", humanoid.RightThumbProximal},
	{"thumb.03.R", humanoid.RightThumbDistal},
	{"f_index.01.R", humanoid.RightIndexProximal},
	{"f_index.02.R", humanoid.RightIndexIntermediate},
	{"f_index.03.R", humanoid.RightIndexDistal},
	{"f_middle.01.R", humanoid.RightMiddleProximal},
	{"f_middle.02.R", humanoid.RightMiddleIntermediate},
	{"f_middle.03.R", humanoid.RightMiddleDistal},
	{"f_ring.01.R", humanoid.RightRingProximal},
	{"f_ring.02.R", humanoid.RightRingIntermediate},
	{"f_ring.03.R", humanoid.RightRingDistal},
	{"f_pinky.01.R", humanoid.RightLittleProximal},
	{"f_pinky.02.R", humanoid.RightLittleIntermediate},
	{"f_pinky.03.R", humanoid.RightLittleDistal},
	{"thigh.L", humanoid.LeftUpperLeg},
	{"shin.L", humanoid.LeftLowerLeg},
	{"foot.L", humanoid.LeftFoot},
	{"toe.L", humanoid.LeftToes},
	{"thigh.R", humanoid.RightUpperLeg},
	{"shin.R", humanoid.RightLowerLeg},
	{"foot.R", humanoid.RightFoot},
	{"toe.R", humanoid.RightToes},
})
