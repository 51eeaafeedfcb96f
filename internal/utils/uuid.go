// Package utils holds small helpers shared by the service layer.
package utils

import "github.com/google/uuid"

// NewOrderedID returns a UUIDv7 string. Its leading bits carry the creation
// time, so history ids sort in insertion order. Falls back to a random v4 id
// if the v7 generator fails.
func NewOrderedID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
