/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides token export format handling.
package schema

import (
	"fmt"
	"strings"
)

// Format identifies how a token export marks its tokens.
type Format int

const (
	// Unknown represents an undetected or unrecognized format.
	Unknown Format = iota

	// TokensStudio is the legacy Tokens Studio export using "type" and "value" keys.
	TokensStudio

	// DTCG is the Design Tokens Community Group format using "$type" and "$value".
	DTCG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case TokensStudio:
		return "tokens-studio"
	case DTCG:
		return "dtcg"
	default:
		return "unknown"
	}
}

// ValueKey returns the key holding a token's value.
func (f Format) ValueKey() string {
	if f == TokensStudio {
		return "value"
	}
	return "$value"
}

// TypeKey returns the key holding a token's type.
func (f Format) TypeKey() string {
	if f == TokensStudio {
		return "type"
	}
	return "$type"
}

// DescriptionKey returns the key holding a token's description.
func (f Format) DescriptionKey() string {
	if f == TokensStudio {
		return "description"
	}
	return "$description"
}

// IsMetadataKey reports whether key is token metadata rather than a child name.
// "$"-prefixed keys are always metadata; the legacy format adds its bare keys.
func (f Format) IsMetadataKey(key string) bool {
	if strings.HasPrefix(key, "$") {
		return true
	}
	if f == TokensStudio {
		switch key {
		case "value", "type", "description":
			return true
		}
	}
	return false
}

// FromString returns the format from a string representation.
func FromString(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Unknown, nil
	case "dtcg", "draft", "w3c":
		return DTCG, nil
	case "tokens-studio", "tokensstudio", "legacy", "figma-tokens":
		return TokensStudio, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}
