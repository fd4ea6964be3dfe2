// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"time"

	"github.com/rhizome-lab/navforge/pkg/osfakes/osshim"
	"github.com/rhizome-lab/navforge/pkg/osfakes/osshim/osshimfakes"
)

// Local serves documentation roots on the local file system
type Local struct {
	os osshim.Os
}

// NewLocalTest creates a local repository host backed by an embedded file system, used for testing
func NewLocalTest(localRepo embed.FS) Interface {
	os := &osshimfakes.FakeOs{}
	os.ReadFileCalls(func(name string) ([]byte, error) {
		return localRepo.ReadFile(filepath.ToSlash(name))
	})
	os.ReadDirNamesCalls(func(name string) ([]string, error) {
		entries, err := localRepo.ReadDir(filepath.ToSlash(name))
		if err != nil {
			return nil, err
		}
		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names, nil
	})
	os.IsNotExistCalls(func(err error) bool {
		return errors.Is(err, fs.ErrNotExist)
	})
	os.IsDirCalls(func(name string) (bool, error) {
		stat, err := fs.Stat(localRepo, filepath.ToSlash(name))
		if err != nil {
			return false, err
		}
		return stat.IsDir(), nil
	})
	return &Local{os}
}

// NewLocal creates a local repository host
func NewLocal(os osshim.Os) Interface {
	return &Local{os}
}

// Accept any root that is not a URL
func (l *Local) Accept(root string) bool {
	return root != "" && !IsRemoteRoot(root)
}

// Exists reports whether dir is present under root. It does not have to be a directory.
func (l *Local) Exists(_ context.Context, root string, dir string) (bool, error) {
	if _, err := l.os.IsDir(l.path(root, dir)); err != nil {
		if l.os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns the names in dir under root as reported by the file system
func (l *Local) List(_ context.Context, root string, dir string) ([]string, error) {
	p := l.path(root, dir)
	names, err := l.os.ReadDirNames(p)
	if err != nil {
		if l.os.IsNotExist(err) {
			return nil, ErrResourceNotFound(p)
		}
		return nil, fmt.Errorf("listing directory %s fails: %w", p, err)
	}
	return names, nil
}

// Read a file under root into a byte array
func (l *Local) Read(_ context.Context, root string, file string) ([]byte, error) {
	fn := l.path(root, file)
	cnt, err := l.os.ReadFile(fn)
	if err != nil {
		if l.os.IsNotExist(err) {
			return nil, ErrResourceNotFound(fn)
		}
		if isDir, err := l.os.IsDir(fn); err == nil && isDir {
			return nil, fmt.Errorf("not a file: %s", fn)
		}
		return nil, fmt.Errorf("reading file %s fails: %w", fn, err)
	}
	return cnt, nil
}

// Name returns "local"
func (l *Local) Name() string {
	return "local"
}

// GetRateLimit is not implemented
func (l *Local) GetRateLimit(ctx context.Context) (int, int, time.Time, error) {
	return 0, 0, time.Time{}, errors.New("not implemented")
}

func (l *Local) path(root string, elem string) string {
	return filepath.Join(root, filepath.FromSlash(path.Clean("/" + elem)))
}
