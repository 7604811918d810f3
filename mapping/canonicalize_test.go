package mapping

import (
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// Full-width digits and letter mixed in.
		{"UpperArmL.０１２MN__ABC  . de_ｆ", "upper.arm.left.012.mn.abc.de.f"},
		{"UpperArmL", "upper.arm.left"},
		{"upper_arm_R", "upper.arm.right"},
		{"Left Shoulder", "left.shoulder"},
		{"mixamorig:Hips", "mixamorig.hips"},
		{"spine.001", "spine.001"},
		{"左腕", "左腕"},
		{"左親指０", "左親指0"},
		{"", ""},
		{"___", ""},
		{"Thumb0_L", "thumb0.left"},
	}
	for _, test := range tests {
		if got := Canonicalize(test.in); got != test.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"UpperArmL.０１２MN__ABC  . de_ｆ",
		"mixamorig:LeftHandThumb1",
		"Bip01 L Finger02",
		"右つま先",
		"f_index.01.L",
		"",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		if twice := Canonicalize(once); twice != once {
			t.Errorf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
