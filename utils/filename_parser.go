package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var mediaExtRegex = regexp.MustCompile(`\.(png|jpg|jpeg|webp)$`)
var productIDRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ParseMediaFileName extracts the product id from a media filename following
// the pattern: PRODUCTID[.SEQUENCE].EXT
// Examples: chain-figaro-50.png, ring-signet-min.2.jpg
func ParseMediaFileName(filename string) (string, error) {
	// Remove extension (case-insensitive)
	lowered := strings.ToLower(filename)
	name := mediaExtRegex.ReplaceAllString(lowered, "")
	if name == lowered {
		return "", fmt.Errorf("unsupported media extension: %s", filename)
	}

	// Drop an optional numeric sequence suffix (e.g. ".2" for alternate shots)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		suffix := name[idx+1:]
		if suffix == "" {
			return "", fmt.Errorf("invalid filename format: empty sequence in %s", filename)
		}
		for _, r := range suffix {
			if r < '0' || r > '9' {
				return "", fmt.Errorf("invalid sequence suffix: expected digits, got %s", suffix)
			}
		}
		name = name[:idx]
	}

	if !productIDRegex.MatchString(name) {
		return "", fmt.Errorf("invalid product id in filename: %s", filename)
	}

	return name, nil
}
