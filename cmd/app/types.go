// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/rhizome-lab/navforge/pkg/registry/repositoryhost"
)

// Options encapsulates the parameters of a navforge run
type Options struct {
	ManifestPath      string            `mapstructure:"manifest"`
	DestinationPath   string            `mapstructure:"destination"`
	OutputName        string            `mapstructure:"output-name"`
	Format            string            `mapstructure:"format"`
	Variables         map[string]string `mapstructure:"variables"`
	FrontmatterTitles bool              `mapstructure:"frontmatter-titles"`
	ValidateLinks     bool              `mapstructure:"validate-links"`
	ValidationWorkers int               `mapstructure:"validation-workers"`
	EnvFile           string            `mapstructure:"env-file"`
	FailFast          bool              `mapstructure:"fail-fast"`
	DryRun            bool              `mapstructure:"dry-run"`
	Metrics           bool              `mapstructure:"metrics"`
}

type options struct {
	Options                    `mapstructure:",squash"`
	repositoryhost.InitOptions `mapstructure:",squash"`
}
