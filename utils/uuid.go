package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new unique request identifier
func GenerateRequestID() string {
	return uuid.New().String()
}
