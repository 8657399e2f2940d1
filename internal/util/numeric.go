package util

import "strconv"

// IsNumeric reports whether s is a number written with digits, so that values such as "-5" or
// "-1.5e3" can be told apart from short options. Spelled-out values such as "Inf" or "NaN" are not numbers.
func IsNumeric(s string) bool {
	body := s
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		body = body[1:]
	}
	if body == "" || !(body[0] >= '0' && body[0] <= '9' || body[0] == '.') {
		return false
	}
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
