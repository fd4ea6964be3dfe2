// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"context"
	"fmt"
	"io/fs"
	"time"
)

// ErrResourceNotFound indicated that a resource was not found
type ErrResourceNotFound string

// Error returns "resource r not found" error
func (e ErrResourceNotFound) Error() string {
	return fmt.Sprintf("resource %q not found", string(e))
}

// Is makes ErrResourceNotFound match fs.ErrNotExist
func (e ErrResourceNotFound) Is(target error) bool {
	return target == fs.ErrNotExist
}

// Interface lists and reads documentation sources under a root it accepts
//
//counterfeiter:generate . Interface
type Interface interface {
	// Accept reports whether this host can serve documentation rooted at root
	Accept(root string) bool
	// Exists reports whether dir is present under root
	Exists(ctx context.Context, root string, dir string) (bool, error)
	// List returns the entry names of dir under root, in the order the host reports them
	List(ctx context.Context, root string, dir string) ([]string, error)
	// Read returns the content of file under root
	Read(ctx context.Context, root string, file string) ([]byte, error)
	// Name of repository host
	Name() string
	// GetRateLimit returns rate limit and remaining API calls for the host backend (e.g. GitHub RateLimit)
	// returns negative values if RateLimit is not applicable
	GetRateLimit(ctx context.Context) (int, int, time.Time, error)
}

// InitOptions options for the repository hosts
type InitOptions struct {
	CacheHomeDir   string            `mapstructure:"cache-dir"`
	EnvCredentials map[string]string `mapstructure:"github-oauth-env-map"`
	UseGit         bool              `mapstructure:"use-git"`
}
