// Package device turns User-Agent headers into short labels for login audit lines.
package device

import (
	"fmt"
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent returns a "Browser on Platform" label, or "Unknown Device"
// when the header is empty.
func ParseUserAgent(ua string) string {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return "Unknown Device"
	}
	parsed := useragent.New(ua)

	browser, _ := parsed.Browser()
	if parsed.Bot() {
		browser = "Bot"
	}
	if browser == "" {
		browser = "Unknown Browser"
	}

	platform := parsed.OS()
	if parsed.Mobile() && parsed.Platform() != "" {
		platform = parsed.Platform()
	}
	if platform == "" {
		platform = "Unknown OS"
	}
	return strings.TrimSpace(fmt.Sprintf("%s on %s", browser, platform))
}
