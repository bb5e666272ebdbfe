package utils

import (
	"context"
	"log"
	"net"
	"strings"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceInfo is the coarse client fingerprint stored with a login.
type DeviceInfo struct {
	DeviceType string
	Browser    string
	OS         string
}

// RecordLogin inserts a login_events row through the pgx pool. It is a no-op
// when the pool is not configured.
func RecordLogin(ctx context.Context, c *gin.Context, userID uuid.UUID) error {
	if config.StoreDB == nil {
		return nil
	}

	userAgent := c.GetHeader("User-Agent")
	device := ParseUserAgent(userAgent)
	ipAddress := GetClientIP(c)

	_, err := config.StoreDB.Exec(ctx, `
		INSERT INTO login_events (
			id, user_id, logged_in_at, ip_address, user_agent,
			device_type, browser, os
		) VALUES ($1, $2, NOW(), $3, $4, $5, $6, $7)`,
		uuid.Must(uuid.NewV7()).String(),
		userID.String(),
		ipAddress,
		userAgent,
		device.DeviceType,
		device.Browser,
		device.OS,
	)
	if err != nil {
		log.Printf("[auth.login] failed to record login event: %v", err)
		return err
	}

	log.Printf("[auth.login] login recorded for user %s from %s", userID, ipAddress)
	return nil
}

// ParseUserAgent classifies a User-Agent header.
func ParseUserAgent(userAgent string) DeviceInfo {
	ua := strings.ToLower(userAgent)
	return DeviceInfo{
		DeviceType: parseDeviceType(ua),
		Browser:    parseBrowser(ua),
		OS:         parseOS(ua),
	}
}

func parseDeviceType(ua string) string {
	if strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone") {
		return "mobile"
	}
	return "desktop"
}

func parseBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	default:
		return "Other"
	}
}

// Order matters: Android agents also say Linux, iOS agents also say Mac OS.
func parseOS(ua string) string {
	switch {
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	default:
		return "Other"
	}
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	return c.ClientIP()
}
