// SPDX-License-Identifier: Apache-2.0

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers, used to correlate a
// gateway request log entry with its response log entry.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
