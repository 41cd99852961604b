package zarinpal

import "regexp"

var (
	nonDigit    = regexp.MustCompile(`\D`)
	localMobile = regexp.MustCompile(`^09\d{9}$`)
	intlMobile  = regexp.MustCompile(`^989\d{9}$`)
	bareMobile  = regexp.MustCompile(`^9\d{9}$`)
)

// NormalizeMobile converts an Iranian mobile number to the 09XXXXXXXXX form
// the gateway accepts. ok is false when the input cannot be converted; the
// field must then be left out of the request.
func NormalizeMobile(phone string) (string, bool) {
	digits := nonDigit.ReplaceAllString(phone, "")

	switch {
	case localMobile.MatchString(digits):
		return digits, true
	case intlMobile.MatchString(digits):
		return "0" + digits[2:], true
	case bareMobile.MatchString(digits):
		return "0" + digits, true
	}
	return "", false
}
