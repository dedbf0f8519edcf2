package utils

import (
	"fmt"
	"strconv"
	"time"
)

// GenerateBookingID returns a time-based unique booking id.
// Format: booking-<epoch millis>
func GenerateBookingID() string {
	return fmt.Sprintf("booking-%d", time.Now().UnixMilli())
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
