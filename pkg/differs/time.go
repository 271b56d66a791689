// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Comparers related to time

package differs

import (
	"regexp"
	"time"
)

// secondsPattern is the "%.3f" rendering of a non-negative duration.
var secondsPattern = regexp.MustCompile(`^\d+\.\d{3}$`)

// RFC3339NanoTime matches any RFC3339Nano timestamp string.
func RFC3339NanoTime() CustomComparer {
	return stringf(func(s string) bool {
		_, err := time.Parse(time.RFC3339Nano, s)
		return err == nil
	})
}

// Seconds matches a non-negative number of seconds printed with exactly
// three decimals, such as "0.104".
func Seconds() CustomComparer {
	return stringf(secondsPattern.MatchString)
}
