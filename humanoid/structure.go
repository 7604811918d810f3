package humanoid

// Bone tables for both spec versions. The torso/limb shape is shared; the
// versions differ in thumb joint naming and in which bones are mandatory.

// VRM0 is the bone table of VRM 0.x.
var VRM0 = newSpecifications("0.0", []boneDef{
	{name: Hips, requirement: true},
	{name: Spine, parent: Hips, requirement: true},
	{name: Chest, parent: Spine, requirement: true},
	{name: UpperChest, parent: Chest},
	{name: Neck, parent: UpperChest, requirement: true},
	{name: Head, parent: Neck, requirement: true},
	{name: LeftEye, parent: Head},
	{name: RightEye, parent: Head},
	{name: Jaw, parent: Head},

	{name: LeftShoulder, parent: UpperChest},
	{name: LeftUpperArm, parent: LeftShoulder, requirement: true},
	{name: LeftLowerArm, parent: LeftUpperArm, requirement: true},
	{name: LeftHand, parent: LeftLowerArm, requirement: true},
	{name: LeftThumbProximal, parent: LeftHand},
	{name: LeftThumbIntermediate, parent: LeftThumbProximal},
	{name: LeftThumbDistal, parent: LeftThumbIntermediate},
	{name: LeftIndexProximal, parent: LeftHand},
	{name: LeftIndexIntermediate, parent: LeftIndexProximal},
	{name: LeftIndexDistal, parent: LeftIndexIntermediate},
	{name: LeftMiddleProximal, parent: LeftHand},
	{name: LeftMiddleIntermediate, parent: LeftMiddleProximal},
	{name: LeftMiddleDistal, parent: LeftMiddleIntermediate},
	{name: LeftRingProximal, parent: LeftHand},
	{name: LeftRingIntermediate, parent: LeftRingProximal},
	{name: LeftRingDistal, parent: LeftRingIntermediate},
	{name: LeftLittleProximal, parent: LeftHand},
	{name: LeftLittleIntermediate, parent: LeftLittleProximal},
	{name: LeftLittleDistal, parent: LeftLittleIntermediate},

	{name: RightShoulder, parent: UpperChest},
	{name: RightUpperArm, parent: RightShoulder, requirement: true},
	{name: RightLowerArm, parent: RightUpperArm, requirement: true},
	{name: RightHand, parent: RightLowerArm, requirement: true},
	{name: RightThumbProximal, parent: RightHand},
	{name: RightThumbIntermediate, parent: RightThumbProximal},
	{name: RightThumbDistal, parent: RightThumbIntermediate},
	{name: RightIndexProximal, parent: RightHand},
	{name: RightIndexIntermediate, parent: RightIndexProximal},
	{name: RightIndexDistal, parent: RightIndexIntermediate},
	{name: RightMiddleProximal, parent: RightHand},
	{name: RightMiddleIntermediate, parent: RightMiddleProximal},
	{name: RightMiddleDistal, parent: RightMiddleIntermediate},
	{name: RightRingProximal, parent: RightHand},
	{name: RightRingIntermediate, parent: RightRingProximal},
	{name: RightRingDistal, parent: RightRingIntermediate},
	{name: RightLittleProximal, parent: RightHand},
	{name: RightLittleIntermediate, parent: RightLittleProximal},
	{name: RightLittleDistal, parent: RightLittleIntermediate},

	{name: LeftUpperLeg, parent: Hips, requirement: true},
	{name: LeftLowerLeg, parent: LeftUpperLeg, requirement: true},
	{name: LeftFoot, parent: LeftLowerLeg, requirement: true},
	{name: LeftToes, parent: LeftFoot},
	{name: RightUpperLeg, parent: Hips, requirement: true},
	{name: RightLowerLeg, parent: RightUpperLeg, requirement: true},
	{name: RightFoot, parent: RightLowerLeg, requirement: true},
	{name: RightToes, parent: RightFoot},
})

// VRM1 is the bone table of VRM 1.0.
var VRM1 = newSpecifications("1.0", []boneDef{
	{name: Hips, requirement: true},
	{name: Spine, parent: Hips, requirement: true},
	{name: Chest, parent: Spine},
	{name: UpperChest, parent: Chest, parentRequirement: true},
	{name: Neck, parent: UpperChest},
	{name: Head, parent: Neck, requirement: true},
	{name: LeftEye, parent: Head},
	{name: RightEye, parent: Head},
	{name: Jaw, parent: Head},

	{name: LeftShoulder, parent: UpperChest},
	{name: LeftUpperArm, parent: LeftShoulder, requirement: true},
	{name: LeftLowerArm, parent: LeftUpperArm, requirement: true},
	{name: LeftHand, parent: LeftLowerArm, requirement: true},
	{name: LeftThumbMetacarpal, parent: LeftHand},
	{name: LeftThumbProximal, parent: LeftThumbMetacarpal, parentRequirement: true},
	{name: LeftThumbDistal, parent: LeftThumbProximal, parentRequirement: true},
	{name: LeftIndexProximal, parent: LeftHand},
	{name: LeftIndexIntermediate, parent: LeftIndexProximal, parentRequirement: true},
	{name: LeftIndexDistal, parent: LeftIndexIntermediate, parentRequirement: true},
	{name: LeftMiddleProximal, parent: LeftHand},
	{name: LeftMiddleIntermediate, parent: LeftMiddleProximal, parentRequirement: true},
	{name: LeftMiddleDistal, parent: LeftMiddleIntermediate, parentRequirement: true},
	{name: LeftRingProximal, parent: LeftHand},
	{name: LeftRingIntermediate, parent: LeftRingProximal, parentRequirement: true},
	{name: LeftRingDistal, parent: LeftRingIntermediate, parentRequirement: true},
	{name: LeftLittleProximal, parent: LeftHand},
	{name: LeftLittleIntermediate, parent: LeftLittleProximal, parentRequirement: true},
	{name: LeftLittleDistal, parent: LeftLittleIntermediate, parentRequirement: true},

	{name: RightShoulder, parent: UpperChest},
	{name: RightUpperArm, parent: RightShoulder, requirement: true},
	{name: RightLowerArm, parent: RightUpperArm, requirement: true},
	{name: RightHand, parent: RightLowerArm, requirement: true},
	{name: RightThumbMetacarpal, parent: RightHand},
	{name: RightThumbProximal, parent: RightThumbMetacarpal, parentRequirement: true},
	{name: RightThumbDistal, parent: RightThumbProximal, parentRequirement: true},
	{name: RightIndexProximal, parent: RightHand},
	{name: RightIndexIntermediate, parent: RightIndexProximal, parentRequirement: true},
	{name: RightIndexDistal, parent: RightIndexIntermediate, parentRequirement: true},
	{name: RightMiddleProximal, parent: RightHand},
	{name: RightMiddleIntermediate, parent: RightMiddleProximal, parentRequirement: true},
	{name: RightMiddleDistal, parent: RightMiddleIntermediate, parentRequirement: true},
	{name: RightRingProximal, parent: RightHand},
	{name: RightRingIntermediate, parent: RightRingProximal, parentRequirement: true},
	{name: RightRingDistal, parent: RightRingIntermediate, parentRequirement: true},
	{name: RightLittleProximal, parent: RightHand},
	{name: RightLittleIntermediate, parent: RightLittleProximal, parentRequirement: true},
	{name: RightLittleDistal, parent: RightLittleIntermediate, parentRequirement: true},

	{name: LeftUpperLeg, parent: Hips, requirement: true},
	{name: LeftLowerLeg, parent: LeftUpperLeg, requirement: true},
	{name: LeftFoot, parent: LeftLowerLeg, requirement: true},
	{name: LeftToes, parent: LeftFoot},
	{name: RightUpperLeg, parent: Hips, requirement: true},
	{name: RightLowerLeg, parent: RightUpperLeg, requirement: true},
	{name: RightFoot, parent: RightLowerLeg, requirement: true},
	{name: RightToes, parent: RightFoot},
})
