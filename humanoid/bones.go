package humanoid

// https://github.com/vrm-c/vrm-specification/tree/master/specification

// BoneName identifies one canonical joint of the VRM humanoid skeleton.
type BoneName string

const (
	Hips       BoneName = "hips"
	Spine      BoneName = "spine"
	Chest      BoneName = "chest"
	UpperChest BoneName = "upperChest"
	Neck       BoneName = "neck"
	Head       BoneName = "head"
	LeftEye    BoneName = "leftEye"
	RightEye   BoneName = "rightEye"
	Jaw        BoneName = "jaw"

	LeftShoulder  BoneName = "leftShoulder"
	LeftUpperArm  BoneName = "leftUpperArm"
	LeftLowerArm  BoneName = "leftLowerArm"
	LeftHand      BoneName = "leftHand"
	RightShoulder BoneName = "rightShoulder"
	RightUpperArm BoneName = "rightUpperArm"
	RightLowerArm BoneName = "rightLowerArm"
	RightHand     BoneName = "rightHand"

	LeftUpperLeg  BoneName = "leftUpperLeg"
	LeftLowerLeg  BoneName = "leftLowerLeg"
	LeftFoot      BoneName = "leftFoot"
	LeftToes      BoneName = "leftToes"
	RightUpperLeg BoneName = "rightUpperLeg"
	RightLowerLeg BoneName = "rightLowerLeg"
	RightFoot     BoneName = "rightFoot"
	RightToes     BoneName = "rightToes"

	// VRM1 thumb joints.
	LeftThumbMetacarpal  BoneName = "leftThumbMetacarpal"
	RightThumbMetacarpal BoneName = "rightThumbMetacarpal"

	// VRM0 thumb joints.
	LeftThumbIntermediate  BoneName = "leftThumbIntermediate"
	RightThumbIntermediate BoneName = "rightThumbIntermediate"

	LeftThumbProximal  BoneName = "leftThumbProximal"
	LeftThumbDistal    BoneName = "leftThumbDistal"
	RightThumbProximal BoneName = "rightThumbProximal"
	RightThumbDistal   BoneName = "rightThumbDistal"

	LeftIndexProximal      BoneName = "leftIndexProximal"
	LeftIndexIntermediate  BoneName = "leftIndexIntermediate"
	LeftIndexDistal        BoneName = "leftIndexDistal"
	LeftMiddleProximal     BoneName = "leftMiddleProximal"
	LeftMiddleIntermediate BoneName = "leftMiddleIntermediate"
	LeftMiddleDistal       BoneName = "leftMiddleDistal"
	LeftRingProximal       BoneName = "leftRingProximal"
	LeftRingIntermediate   BoneName = "leftRingIntermediate"
	LeftRingDistal         BoneName = "leftRingDistal"
	LeftLittleProximal     BoneName = "leftLittleProximal"
	LeftLittleIntermediate BoneName = "leftLittleIntermediate"
	LeftLittleDistal       BoneName = "leftLittleDistal"

	RightIndexProximal      BoneName = "rightIndexProximal"
	RightIndexIntermediate  BoneName = "rightIndexIntermediate"
	RightIndexDistal        BoneName = "rightIndexDistal"
	RightMiddleProximal     BoneName = "rightMiddleProximal"
	RightMiddleIntermediate BoneName = "rightMiddleIntermediate"
	RightMiddleDistal       BoneName = "rightMiddleDistal"
	RightRingProximal       BoneName = "rightRingProximal"
	RightRingIntermediate   BoneName = "rightRingIntermediate"
	RightRingDistal         BoneName = "rightRingDistal"
	RightLittleProximal     BoneName = "rightLittleProximal"
	RightLittleIntermediate BoneName = "rightLittleIntermediate"
	RightLittleDistal       BoneName = "rightLittleDistal"
)
