// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Comparers for generated log field values.

package differs

import "strings"

// AnyString matches any string, for fields like trace ids whose value
// is random but must be present.
func AnyString() CustomComparer {
	return stringf(func(string) bool { return true })
}

// CaptureString matches whatever string it sees first and from then on
// only that same string. Use one instance for a field that has to stay
// the same across several entries, such as a run id.
func CaptureString() CustomComparer {
	var captured *string
	return stringf(func(s string) bool {
		if captured == nil {
			captured = &s
		}
		return *captured == s
	})
}

// Contains matches strings holding sub.
func Contains(sub string) CustomComparer {
	return stringf(func(s string) bool {
		return strings.Contains(s, sub)
	})
}

// FloatRange matches a JSON number in [lo, hi].
func FloatRange(lo, hi float64) CustomComparer {
	return Customf(func(o interface{}) bool {
		f, ok := o.(float64)
		return ok && lo <= f && f <= hi
	})
}
