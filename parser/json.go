/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/schema"
	"bennypowers.dev/tokencss/token"
)

// ErrEmptyDocument indicates the input contained no data.
var ErrEmptyDocument = errors.New("empty token document")

// JSONParser parses JSON (with comments) or YAML token exports.
type JSONParser struct{}

// NewJSONParser creates a new JSON token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML token data and returns the token tree.
// Key order of the source document is preserved.
func (p *JSONParser) Parse(data []byte, opts Options) (*token.Tree, error) {
	root, err := decode(data)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == schema.Unknown {
		format = schema.DetectNode(root)
		if format == schema.Unknown {
			format = schema.DTCG
		}
	}

	e := &extractor{format: format}
	group := e.extractGroup(root, "", nil, "")
	group.Skipped = e.skipped

	return token.NewTree(group), nil
}

// ParseFile parses a token file and returns the token tree.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.Tree, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tree, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	tree.Source = path

	return tree, nil
}

// decode parses data into an ordered node graph and returns its root mapping.
func decode(data []byte) (*yaml.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var root *yaml.Node
	if isLikelyJSON(data) {
		// JSON path: strip comments and trailing commas, then stream tokens
		// so that object key order is kept
		node, err := decodeJSON(jsonc.ToJSON(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		root = node
	} else {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if len(doc.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		root = resolveAlias(doc.Content[0])
	}

	if root.Kind != yaml.MappingNode {
		return nil, schema.ErrRootNotObject
	}
	return root, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[':
			return true
		case '/':
			// leading comment, only valid in JSONC
			return true
		default:
			return false
		}
	}
	return false
}

// decodeJSON decodes a single JSON value into a yaml.Node graph.
func decodeJSON(data []byte) (*yaml.Node, error) {
	data = bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after top-level value", tok)
	}
	return node, nil
}

func decodeJSONValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return scalarNode("!!str", v), nil
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return scalarNode("!!int", v.String()), nil
		}
		return scalarNode("!!float", v.String()), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(v)), nil
	case nil:
		return scalarNode("!!null", "null"), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		// A repeated key overwrites the earlier value but keeps its position
		if i := keyIndex(node, key); i >= 0 {
			node.Content[i+1] = val
			continue
		}
		node.Content = append(node.Content, scalarNode("!!str", key), val)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func decodeJSONArray(dec *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for dec.More() {
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func keyIndex(mapping *yaml.Node, key string) int {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return i
		}
	}
	return -1
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	if i := keyIndex(mapping, key); i >= 0 {
		return resolveAlias(mapping.Content[i+1])
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// extractor converts the node graph into a token tree.
type extractor struct {
	format  schema.Format
	skipped []string
}

// extractGroup recursively extracts a group from a mapping node.
// inheritedType is passed down from parent groups for $type inheritance.
func (e *extractor) extractGroup(node *yaml.Node, name string, path []string, inheritedType string) *token.Group {
	g := token.NewGroup(name)
	g.Type = scalarString(mappingValue(node, e.format.TypeKey()))
	g.Description = scalarString(mappingValue(node, e.format.DescriptionKey()))

	currentType := inheritedType
	if g.Type != "" {
		currentType = g.Type
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if e.format.IsMetadataKey(key) {
			continue
		}
		child := resolveAlias(node.Content[i+1])
		childPath := slices.Clip(append(path, key))

		if child.Kind != yaml.MappingNode {
			value := convertValue(child)
			if value == nil {
				continue
			}
			g.Add(&token.Scalar{Name: key, Value: value})
			continue
		}

		if n := e.extractChild(child, key, childPath, currentType); n != nil {
			g.Add(n)
		}
	}

	return g
}

// extractChild decides whether a mapping is a leaf or a group. A mapping is
// a leaf iff it has a value field and a type, its own or inherited.
func (e *extractor) extractChild(node *yaml.Node, key string, path []string, inheritedType string) token.Node {
	valueNode := mappingValue(node, e.format.ValueKey())
	ownType := scalarString(mappingValue(node, e.format.TypeKey()))
	typ := ownType
	if typ == "" {
		typ = inheritedType
	}

	if valueNode != nil && typ != "" {
		leaf := &token.Leaf{
			Name:        key,
			Path:        path,
			Type:        typ,
			Value:       convertValue(valueNode),
			Description: scalarString(mappingValue(node, e.format.DescriptionKey())),
		}
		if leaf.Value == nil {
			e.skip(path, "null value")
		}
		return leaf
	}

	group := e.extractGroup(node, key, path, inheritedType)
	switch {
	case valueNode != nil:
		e.skip(path, "value without type")
	case ownType != "" && group.Len() == 0:
		e.skip(path, "type without value")
	}
	return group
}

func (e *extractor) skip(path []string, reason string) {
	dotPath := strings.Join(path, ".")
	logger.Debug("skipping token %s: %s", dotPath, reason)
	e.skipped = append(e.skipped, dotPath)
}

// convertValue converts a value node. Null yields nil.
func convertValue(node *yaml.Node) token.Value {
	node = resolveAlias(node)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return nil
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return token.String(node.Value)
			}
			return token.Number(f)
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return token.String(node.Value)
			}
			return token.Bool(b)
		default:
			return token.String(node.Value)
		}
	case yaml.MappingNode:
		obj := make(token.Object, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v := convertValue(node.Content[i+1])
			if v == nil {
				continue
			}
			obj = append(obj, token.Property{Name: node.Content[i].Value, Value: v})
		}
		return obj
	case yaml.SequenceNode:
		list := make(token.List, 0, len(node.Content))
		for _, item := range node.Content {
			if v := convertValue(item); v != nil {
				list = append(list, v)
			}
		}
		return list
	default:
		return nil
	}
}

func scalarString(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return ""
	}
	return node.Value
}
