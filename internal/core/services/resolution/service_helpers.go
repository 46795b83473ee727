package resolution

import "strings"

/*
SplitName parses a function name written in the prefix_method convention.

The name is split on "_" and empty segments from consecutive separators are
dropped. The first surviving segment, lower-cased, is the prefix; the rest
are rejoined with "_" to form the method name, preserving any underscores the
method name itself contains. Names with fewer than two surviving segments do
not follow the convention and return ok=false.

Example:

	SplitName("auth_check")     // "auth", "check", true
	SplitName("url_to_route")   // "url", "to_route", true
	SplitName("nounderscore")   // "", "", false
*/
func SplitName(name string) (prefix, method string, ok bool) {
	segments := make([]string, 0, 4)
	for _, seg := range strings.Split(name, "_") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) < 2 {
		return "", "", false
	}
	return strings.ToLower(segments[0]), strings.Join(segments[1:], "_"), true
}
