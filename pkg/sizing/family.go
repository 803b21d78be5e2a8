package sizing

import "regexp"

// datePattern matches the date suffix of rotated indices, eg the
// "-2018.09.14" in "logstash-2018.09.14". The leading hyphen is part of the
// match so the family is everything before it.
var datePattern = regexp.MustCompile(`-(\d+\.\d+\.\d+)`)

// Family derives the logical index family from a raw index name by
// stripping everything from the first date-like suffix onwards. Names
// without such a suffix belong to a foreign naming scheme and report
// ok=false; they take no part in sizing.
func Family(index string) (family string, ok bool) {
	loc := datePattern.FindStringIndex(index)
	if loc == nil {
		return "", false
	}
	return index[:loc[0]], true
}
