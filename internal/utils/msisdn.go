package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// PREFIXES defines the valid prefixes for the supported Ugandan operators
var PREFIXES = struct {
	MTN    []int
	AIRTEL []int
}{
	MTN:    []int{76, 77, 78},
	AIRTEL: []int{70, 74, 75},
}

var msisdnPattern = buildPattern(append(PREFIXES.MTN, PREFIXES.AIRTEL...))

func buildPattern(prefixes []int) *regexp.Regexp {
	prefixesStr := make([]string, len(prefixes))
	for i, prefix := range prefixes {
		prefixesStr[i] = fmt.Sprintf("%d", prefix)
	}
	return regexp.MustCompile(fmt.Sprintf(`^(%s)\d{7}$`, strings.Join(prefixesStr, "|")))
}

// ValidateMSISDN validates a phone number format and checks it belongs to a
// supported Ugandan mobile network. Returns the number normalized with the
// 256 country code.
func ValidateMSISDN(msisdn string) (bool, string, error) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk prefix if present
	if strings.HasPrefix(stripped, "256") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !msisdnPattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid mobile number format or unsupported network")
	}

	// Format with country code
	formatted := "256" + stripped

	return true, formatted, nil
}

// DetectProvider returns the mobile money provider for a normalized MSISDN
func DetectProvider(msisdn string) string {
	stripped := strings.TrimPrefix(msisdn, "256")
	if len(stripped) < 2 {
		return ""
	}

	prefix := stripped[:2]
	for _, p := range PREFIXES.MTN {
		if prefix == fmt.Sprintf("%d", p) {
			return "MTN"
		}
	}
	for _, p := range PREFIXES.AIRTEL {
		if prefix == fmt.Sprintf("%d", p) {
			return "AIRTEL"
		}
	}
	return ""
}
