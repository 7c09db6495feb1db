// Code generated by "stringer -linecomment -type=Flag"; DO NOT EDIT.

package cpu

import "strconv"

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[FLAG_C-0]
	_ = x[FLAG_Z-1]
	_ = x[FLAG_N-2]
	_ = x[FLAG_V-3]
	_ = x[FLAG_S-4]
	_ = x[FLAG_H-5]
	_ = x[FLAG_T-6]
	_ = x[FLAG_I-7]
}

const _Flag_name = "cznvshti"

var _Flag_index = [...]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}

func (i Flag) String() string {
	idx := int(i) - 0
	if idx >= len(_Flag_index)-1 {
		return "Flag(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _Flag_name[_Flag_index[idx]:_Flag_index[idx+1]]
}
