package vars

import "strings"

// StrToBool parses the usual spellings of yes and no. Anything else is false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
