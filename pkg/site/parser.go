// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Parse renders the manifest as a Go template with variables and decodes
// the result into a Site. Unknown manifest fields are rejected.
func Parse(manifest []byte, variables map[string]string) (*Site, error) {
	tmpl, err := template.New("manifest").Option("missingkey=error").Parse(string(manifest))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest template: %w", err)
	}
	var b bytes.Buffer
	if variables == nil {
		variables = map[string]string{}
	}
	if err := tmpl.Execute(&b, variables); err != nil {
		return nil, fmt.Errorf("applying manifest variables: %w", err)
	}
	s := &Site{}
	dec := yaml.NewDecoder(&b)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return s, nil
}

