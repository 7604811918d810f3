package mapping

import (
	"github.com/binzume/vrmrig/humanoid"
	"github.com/binzume/vrmrig/skeleton"
)

// mmdSpecified is the semi-standard Japanese bone set used by most MMD
// models. センター keeps the hips role so that 上半身 (a sibling of 下半身
// under センター) still has its mapped ancestor above it.
var mmdSpecified = NewTable("MMD", humanoid.VRM0, []Entry{
	{"センター", humanoid.Hips},
	{"上半身", humanoid.Spine},
	{"上半身2", humanoid.Chest},
	{"首", humanoid.Neck},
	{"頭", humanoid.Head},
	{"左目", humanoid.LeftEye},
	{"右目", humanoid.RightEye},
	{"左肩", humanoid.LeftShoulder},
	{"左腕", humanoid.LeftUpperArm},
	{"左ひじ", humanoid.LeftLowerArm},
	{"左手首", humanoid.LeftHand},
	{"左親指０", humanoid.LeftThumbProximal},
	{"左親指１", humanoid.LeftThumbIntermediate},
	{"左親指２", humanoid.LeftThumbDistal},
	{"左人指１", humanoid.LeftIndexProximal},
	{"左人指２", humanoid.LeftIndexIntermediate},
	{"左人指３", humanoid.LeftIndexDistal},
	{"左中指１", humanoid.LeftMiddleProximal},
	{"左中指２", humanoid.LeftMiddleIntermediate},
	{"左中指３", humanoid.LeftMiddleDistal},
	{"左薬指１", humanoid.LeftRingProximal},
	{"左薬指２", humanoid.LeftRingIntermediate},
	{"左薬指３", humanoid.LeftRingDistal},
	{"左小指１", humanoid.LeftLittleProximal},
	{"左小指２", humanoid.LeftLittleIntermediate},
	{"左小指３", humanoid.LeftLittleDistal},
	{"右肩", humanoid.RightShoulder},
	{"右腕", humanoid.RightUpperArm},
	{"右ひじ", humanoid.RightLowerArm},
	{"右手首", humanoid.RightHand},
	{"右親指０", humanoid.RightThumbProximal},
	{"右親指１", humanoid.RightThumbIntermediate},
	{"右親指２", humanoid.RightThumbDistal},
	{"右人指１", humanoid.RightIndexProximal},
	{"右人指２", humanoid.RightIndexIntermediate},
	{"右人指３", humanoid.RightIndexDistal},
	{"右中指１", humanoid.RightMiddleProximal},
	{"右中指２", humanoid.RightMiddleIntermediate},
	{"右中指３", humanoid.RightMiddleDistal},
	{"右薬指１", humanoid.RightRingProximal},
	{"右薬指２", humanoid.RightRingIntermediate},
	{"右薬指３", humanoid.RightRingDistal},
	{"右小指１", humanoid.RightLittleProximal},
	{"右小指２", humanoid.RightLittleIntermediate},
	{"右小指３", humanoid.RightLittleDistal},
	{"左足", humanoid.LeftUpperLeg},
	{"左ひざ", humanoid.LeftLowerLeg},
	{"左足首", humanoid.LeftFoot},
	{"左つま先", humanoid.LeftToes},
	{"右足", humanoid.RightUpperLeg},
	{"右ひざ", humanoid.RightLowerLeg},
	{"右足首", humanoid.RightFoot},
	{"右つま先", humanoid.RightToes},
})

// mmdRomanized covers English-patched PMX exports.
var mmdRomanized = NewTable("MMD-en", humanoid.VRM0, []Entry{
	{"center", humanoid.Hips},
	{"upper body", humanoid.Spine},
	{"upper body2", humanoid.Chest},
	{"neck", humanoid.Neck},
	{"head", humanoid.Head},
	{"eye_L", humanoid.LeftEye},
	{"eye_R", humanoid.RightEye},
	{"shoulder_L", humanoid.LeftShoulder},
	{"arm_L", humanoid.LeftUpperArm},
	{"elbow_L", humanoid.LeftLowerArm},
	{"wrist_L", humanoid.LeftHand},
	{"thumb0_L", humanoid.LeftThumbProximal},
	{"thumb1_L", humanoid.LeftThumbIntermediate},
	{"thumb2_L", humanoid.LeftThumbDistal},
	{"fore1_L", humanoid.LeftIndexProximal},
	{"fore2_L", humanoid.LeftIndexIntermediate},
	{"fore3_L", humanoid.LeftIndexDistal},
	{"middle1_L", humanoid.LeftMiddleProximal},
	{"middle2_L", humanoid.LeftMiddleIntermediate},
	{"middle3_L", humanoid.LeftMiddleDistal},
	{"third1_L", humanoid.LeftRingProximal},
	{"third2_L", humanoid.LeftRingIntermediate},
	{"third3_L", humanoid.LeftRingDistal},
	{"little1_L", humanoid.LeftLittleProximal},
	{"little2_L", humanoid.LeftLittleIntermediate},
	{"little3_L", humanoid.LeftLittleDistal},
	{"shoulder_R", humanoid.RightShoulder},
	{"arm_R", humanoid.RightUpperArm},
	{"elbow_R", humanoid.RightLowerArm},
	{"wrist_R", humanoid.RightHand},
	{"thumb0_R", humanoid.RightThumbProximal},
	{"thumb1_R", humanoid.RightThumbIntermediate},
	{"thumb2_R", humanoid.RightThumbDistal},
	{"fore1_R", humanoid.RightIndexProximal},
	{"fore2_R", humanoid.RightIndexIntermediate},
	{"fore3_R", humanoid.RightIndexDistal},
	{"middle1_R", humanoid.RightMiddleProximal},
	{"middle2_R", humanoid.RightMiddleIntermediate},
	{"middle3_R", humanoid.RightMiddleDistal},
	{"third1_R", humanoid.RightRingProximal},
	{"third2_R", humanoid.RightRingIntermediate},
	{"third3_R", humanoid.RightRingDistal},
	{"little1_R", humanoid.RightLittleProximal},
	{"little2_R", humanoid.RightLittleIntermediate},
	{"little3_R", humanoid.RightLittleDistal},
	{"leg_L", humanoid.LeftUpperLeg},
	{"knee_L", humanoid.LeftLowerLeg},
	{"ankle_L", humanoid.LeftFoot},
	{"toe_L", humanoid.LeftToes},
	{"leg_R", humanoid.RightUpperLeg},
	{"knee_R", humanoid.RightLowerLeg},
	{"ankle_R", humanoid.RightFoot},
	{"toe_R", humanoid.RightToes},
})

// MMDConvention selects the MMD table variant for a skeleton: the Japanese
// semi-standard names when the model carries them, otherwise the romanized
// ones. The table data itself is static either way.
func MMDConvention(g *skeleton.Graph) *Table {
	if g != nil {
		for _, name := range g.Names() {
			if Canonicalize(name) == "センター" {
				return mmdSpecified
			}
		}
	}
	return mmdRomanized
}
