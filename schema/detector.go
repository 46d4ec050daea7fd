/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DetectionConfig provides configuration for format detection.
type DetectionConfig struct {
	// DefaultFormat is used when no token-like mapping is found.
	DefaultFormat Format
}

// DetectFormat detects the export format from file content.
// Priority order:
// 1. $schema field pointing at designtokens.org
// 2. Duck typing: the first token-like mapping in document order decides
// 3. Config default format
// 4. Default to DTCG
func DetectFormat(content []byte, config *DetectionConfig) (Format, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return Unknown, fmt.Errorf("invalid YAML/JSON: %w", err)
	}
	if len(doc.Content) == 0 {
		return fallback(config), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Unknown, ErrRootNotObject
	}

	if schemaURL := mappingValue(root, "$schema"); schemaURL != nil && schemaURL.Kind == yaml.ScalarNode {
		if strings.Contains(schemaURL.Value, "designtokens.org") {
			return DTCG, nil
		}
	}

	if f := DetectNode(root); f != Unknown {
		return f, nil
	}

	return fallback(config), nil
}

func fallback(config *DetectionConfig) Format {
	if config != nil && config.DefaultFormat != Unknown {
		return config.DefaultFormat
	}
	return DTCG
}

// DetectNode duck-types a parsed mapping node. A mapping carrying "$value"
// is DTCG; one carrying both "value" and "type" is Tokens Studio.
func DetectNode(node *yaml.Node) Format {
	if node == nil || node.Kind != yaml.MappingNode {
		return Unknown
	}
	if mappingValue(node, "$value") != nil {
		return DTCG
	}
	if mappingValue(node, "value") != nil && mappingValue(node, "type") != nil {
		return TokensStudio
	}
	for i := 1; i < len(node.Content); i += 2 {
		if f := DetectNode(node.Content[i]); f != Unknown {
			return f
		}
	}
	return Unknown
}

// mappingValue returns the value node for key in a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
