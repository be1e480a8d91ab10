package gltf

import "strconv"

// fieldAt formats a JSON-pointer-ish field name for an indexed array element,
// e.g. fieldAt("accessors", 3, "type") -> "accessors[3].type", used to
// populate Error.Field so a caller can locate the offending element without
// needing positional information encoded in the error message itself.
func fieldAt(array string, index int, field string) string {
	return array + "[" + strconv.Itoa(index) + "]." + field
}
