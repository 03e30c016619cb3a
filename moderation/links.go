package moderation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"world-chat/errors"
)

// Link checking severities. Each level includes the checks of the levels below it.
const (
	LinkCheckOff = iota
	// LinkCheckStructure requires every escape to be a complete |c|H|h|r link or a doubled pipe.
	LinkCheckStructure
	// LinkCheckData additionally requires numeric link data.
	LinkCheckData
	// LinkCheckName additionally requires a non-empty display name.
	LinkCheckName
)

var linkTypes = []string{
	"achievement", "battlepet", "currency", "enchant", "glyph", "instancelock",
	"item", "journal", "quest", "spell", "talent", "trade",
}

// ValidateLinks checks the hyperlink markup embedded in text:
//
//	|cffa335ee|Hitem:19019:0:0:0|h[Thunderfury]|h|r
//
// A doubled pipe is a literal pipe. Any other escape is rejected.
func ValidateLinks(text string, severity int) error {
	if severity <= LinkCheckOff {
		return nil
	}
	for i := 0; i < len(text); {
		if text[i] != '|' {
			i++
			continue
		}
		if strings.HasPrefix(text[i:], "||") {
			i += 2
			continue
		}
		n, err := parseLink(text[i:], severity)
		if err != nil {
			return fmt.Errorf("%w: %v at offset %d", errors.ErrInvalidLinkContent, err, i)
		}
		i += n
	}
	return nil
}

// parseLink reads one link starting at s and returns its length in bytes.
func parseLink(s string, severity int) (int, error) {
	pos := 0
	expect := func(token string) error {
		if !strings.HasPrefix(s[pos:], token) {
			return fmt.Errorf("expected %q", token)
		}
		pos += len(token)
		return nil
	}

	if err := expect("|c"); err != nil {
		return 0, err
	}
	if len(s) < pos+8 || !isHex(s[pos:pos+8]) {
		return 0, fmt.Errorf("bad color")
	}
	pos += 8
	if err := expect("|H"); err != nil {
		return 0, err
	}

	end := strings.Index(s[pos:], "|h")
	if end < 0 {
		return 0, fmt.Errorf("unterminated link data")
	}
	linkType, data, _ := strings.Cut(s[pos:pos+end], ":")
	if !lo.Contains(linkTypes, linkType) {
		return 0, fmt.Errorf("unknown link type %q", linkType)
	}
	if severity >= LinkCheckData && !isLinkData(data) {
		return 0, fmt.Errorf("bad %s data", linkType)
	}
	pos += end
	if err := expect("|h["); err != nil {
		return 0, err
	}

	end = strings.Index(s[pos:], "]|h|r")
	if end < 0 {
		return 0, fmt.Errorf("unterminated link name")
	}
	name := s[pos : pos+end]
	if strings.Contains(name, "|") {
		return 0, fmt.Errorf("escape inside link name")
	}
	if severity >= LinkCheckName && strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("empty link name")
	}
	pos += end + len("]|h|r")
	return pos, nil
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// isLinkData accepts colon separated, optionally negative, integers.
func isLinkData(data string) bool {
	if data == "" {
		return false
	}
	for _, field := range strings.Split(data, ":") {
		field = strings.TrimPrefix(field, "-")
		for _, r := range field {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
