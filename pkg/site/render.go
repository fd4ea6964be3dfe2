// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format of the rendered generator configuration
type Format string

const (
	// JSON renders indented JSON
	JSON Format = "json"
	// YAML renders block style YAML
	YAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(f string) (Format, error) {
	switch Format(f) {
	case JSON, YAML:
		return Format(f), nil
	}
	return "", fmt.Errorf("unknown format %q. Must be one of %v", f, []Format{JSON, YAML})
}

// Extension returns the file extension of the format
func (f Format) Extension() string {
	return "." + string(f)
}

type optimizeDeps struct {
	Include []string `json:"include"`
}

type vite struct {
	OptimizeDeps optimizeDeps `json:"optimizeDeps"`
}

type mermaid struct{}

// config is the generator configuration object
type config struct {
	*Site
	Vite    *vite    `json:"vite,omitempty"`
	Mermaid *mermaid `json:"mermaid,omitempty"`
}

func newConfig(s *Site) *config {
	c := &config{Site: s}
	for _, p := range s.Plugins {
		if p == PluginMermaid {
			c.Vite = &vite{OptimizeDeps: optimizeDeps{Include: []string{PluginMermaid}}}
			c.Mermaid = &mermaid{}
		}
	}
	return c
}

// Render returns the generator configuration object of a resolved site
func Render(s *Site, format Format) ([]byte, error) {
	b, err := marshalJSON(newConfig(s), "  ")
	if err != nil {
		return nil, err
	}
	switch format {
	case JSON:
		return b, nil
	case YAML:
		return jsonToYAML(b)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// marshalJSON encodes v without escaping HTML characters, links and labels
// are written as they are
func marshalJSON(v interface{}, indent string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// jsonToYAML re-encodes a JSON document in block style, keeping key order
func jsonToYAML(b []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	resetStyle(&node)
	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
