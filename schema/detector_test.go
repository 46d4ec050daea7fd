/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokencss/schema"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		config   *schema.DetectionConfig
		expected schema.Format
		wantErr  bool
	}{
		{
			name:     "explicit schema URL",
			content:  `{"$schema": "https://www.designtokens.org/schemas/draft.json"}`,
			expected: schema.DTCG,
		},
		{
			name:     "dollar-prefixed token",
			content:  `{"bg": {"primary": {"$type": "color", "$value": "#fff"}}}`,
			expected: schema.DTCG,
		},
		{
			name:     "legacy tokens studio token",
			content:  `{"bg": {"primary": {"type": "color", "value": "#fff"}}}`,
			expected: schema.TokensStudio,
		},
		{
			name:     "first token decides",
			content:  `{"a": {"x": {"type": "color", "value": "#fff"}}, "b": {"$type": "color", "$value": "#000"}}`,
			expected: schema.TokensStudio,
		},
		{
			name:     "value without type is not legacy",
			content:  `{"a": {"value": 1}}`,
			expected: schema.DTCG,
		},
		{
			name:     "config default when nothing found",
			content:  `{"empty": {}}`,
			config:   &schema.DetectionConfig{DefaultFormat: schema.TokensStudio},
			expected: schema.TokensStudio,
		},
		{
			name:     "yaml content",
			content:  "spacing:\n  sm:\n    type: spacing\n    value: 4\n",
			expected: schema.TokensStudio,
		},
		{
			name:     "empty document",
			content:  ``,
			expected: schema.DTCG,
		},
		{
			name:    "array root",
			content: `[1, 2, 3]`,
			wantErr: true,
		},
		{
			name:    "invalid content",
			content: `{"unterminated": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.DetectFormat([]byte(tt.content), tt.config)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected schema.Format
		wantErr  bool
	}{
		{"", schema.Unknown, false},
		{"auto", schema.Unknown, false},
		{"dtcg", schema.DTCG, false},
		{"DTCG", schema.DTCG, false},
		{"tokens-studio", schema.TokensStudio, false},
		{"legacy", schema.TokensStudio, false},
		{"yaml", schema.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := schema.FromString(tt.input)
			if tt.wantErr {
				if !errors.Is(err, schema.ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("FromString(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormat_Keys(t *testing.T) {
	if schema.DTCG.ValueKey() != "$value" || schema.DTCG.TypeKey() != "$type" {
		t.Error("unexpected DTCG keys")
	}
	if schema.TokensStudio.ValueKey() != "value" || schema.TokensStudio.TypeKey() != "type" {
		t.Error("unexpected Tokens Studio keys")
	}
	if !schema.TokensStudio.IsMetadataKey("description") {
		t.Error("expected description to be metadata in legacy format")
	}
	if schema.DTCG.IsMetadataKey("value") {
		t.Error("bare value key is a child name in DTCG")
	}
	if !schema.DTCG.IsMetadataKey("$extensions") {
		t.Error("expected $extensions to be metadata")
	}
}
