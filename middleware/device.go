package middleware

import (
	"github.com/gin-gonic/gin"
)

// DeviceIDHeader carries the caller's platform device identifier.
const DeviceIDHeader = "X-Device-ID"

const deviceIDKey = "device_id"

// DeviceIdentity stores the caller's device identifier in the context.
// The value is opaque and never validated; a missing header yields "".
func DeviceIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(deviceIDKey, c.GetHeader(DeviceIDHeader))
		c.Next()
	}
}

// GetDeviceID retrieves the device identifier from gin context
func GetDeviceID(c *gin.Context) string {
	if v, exists := c.Get(deviceIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.GetHeader(DeviceIDHeader)
}
