package input

import (
	"regexp"
	"strconv"
	"strings"
)

// number matches an optionally signed decimal, with '.' or ',' as separator.
var number = regexp.MustCompile(`^[-+]?(\d*[.,]\d+|\d+)$`)

// ParseLine turns one newline-terminated line into a value. Lines that are not
// a plain decimal number are rejected.
func ParseLine(line string) (float64, bool) {
	body, ok := strings.CutSuffix(line, "\n")
	if !ok || !number.MatchString(body) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(body, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
