package capture

import (
	"net"
	"net/netip"
	"strings"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// UnknownIP is recorded when the client address cannot be determined.
const UnknownIP = "0.0.0.0"

// Screen width breakpoints used when the user agent is inconclusive.
const (
	mobileMaxWidth = 768
	tabletMaxWidth = 1024
)

// ClassifyDevice derives a coarse device class from the user agent, falling
// back to the reported screen width.
func ClassifyDevice(userAgent string, screenWidth int) domain.DeviceType {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"),
		strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"):
		return domain.DeviceTypeTablet
	case strings.Contains(ua, "mobi"), strings.Contains(ua, "iphone"), strings.Contains(ua, "android"):
		return domain.DeviceTypeMobile
	}

	switch {
	case screenWidth <= 0:
		return domain.DeviceTypeDesktop
	case screenWidth < mobileMaxWidth:
		return domain.DeviceTypeMobile
	case screenWidth < tabletMaxWidth:
		return domain.DeviceTypeTablet
	}
	return domain.DeviceTypeDesktop
}

// NormalizeIP returns the canonical form of raw, which may carry a port.
// Anything unparsable becomes UnknownIP.
func NormalizeIP(raw string) string {
	raw = strings.TrimSpace(raw)
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	addr, err := netip.ParseAddr(strings.Trim(raw, "[]"))
	if err != nil {
		return UnknownIP
	}
	return addr.Unmap().String()
}

func evidence(e Evidence) domain.SigningEvidence {
	return domain.SigningEvidence{
		IPAddress: NormalizeIP(e.IP),
		UserAgent: e.UserAgent,
		DeviceInfo: domain.DeviceInfo{
			Type:         ClassifyDevice(e.UserAgent, e.ScreenWidth),
			ScreenWidth:  e.ScreenWidth,
			ScreenHeight: e.ScreenHeight,
			UserAgent:    e.UserAgent,
		},
	}
}
