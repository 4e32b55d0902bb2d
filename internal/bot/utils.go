package bot

import (
	"strings"

	"github.com/keepmind9/framebot/pkg/constants"
)

// maskSecret masks sensitive information for logging
func maskSecret(s string) string {
	if len(s) <= constants.MinSecretLengthForMasking {
		return "***"
	}
	return s[:constants.SecretMaskPrefixLength] + "***" + s[len(s)-constants.SecretMaskSuffixLength:]
}

// maskLine hides the credential of a PASS line
func maskLine(line string) string {
	if token, ok := strings.CutPrefix(line, "PASS "); ok {
		return "PASS " + maskSecret(token)
	}
	return line
}
