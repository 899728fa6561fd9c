package fontload

import (
	"strings"
	"unicode"
)

// byteOrderMark is not covered by unicode.IsSpace but shows up in text assets
// saved by some editors.
const byteOrderMark = '\uFEFF'

// Clean removes every whitespace character from an encoded payload.
// Embedded text assets are often line-wrapped; base64 itself never contains
// whitespace, so stripping it is lossless. Clean is idempotent.
func Clean(payload string) string {
	if !strings.ContainsFunc(payload, isPayloadSpace) {
		return payload
	}
	return strings.Map(func(r rune) rune {
		if isPayloadSpace(r) {
			return -1
		}
		return r
	}, payload)
}

func isPayloadSpace(r rune) bool {
	return unicode.IsSpace(r) || r == byteOrderMark
}
