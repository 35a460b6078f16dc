// Package id generates identifiers for tool invocations and audit records.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID generates a random UUIDv4 identifier.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return value.String(), nil
}
