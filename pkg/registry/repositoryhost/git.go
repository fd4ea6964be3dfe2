// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"sync"
	"time"

	"github.com/rhizome-lab/navforge/pkg/git"
	"github.com/rhizome-lab/navforge/pkg/osfakes/osshim"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"k8s.io/klog/v2"
)

// State defines state of a git repo
type State int

const (
	_ State = iota
	// Prepared repo state
	Prepared
	// Failed repo state
	Failed
)

// Repository is a clone of a remote repository in the cache directory.
// It is prepared at most once per run.
type Repository struct {
	Auth          http.AuthMethod
	LocalPath     string
	RemoteURL     string
	State         State
	PreviousError error
	Git           git.Git

	mutex sync.Mutex
}

// Prepare clones or fetches the repository and checks out version.
// An empty version keeps the branch checked out by the clone.
func (r *Repository) Prepare(ctx context.Context, version string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	switch r.State {
	case Failed:
		return r.PreviousError
	case Prepared:
		return nil
	}

	if err := r.prepare(ctx, version); err != nil {
		r.State = Failed
		r.PreviousError = err
		return err
	}
	r.State = Prepared
	return nil
}

func (r *Repository) prepare(ctx context.Context, version string) error {
	repository, fetch, err := r.repository(ctx)
	if err != nil {
		return err
	}

	if fetch {
		klog.V(6).Infof("fetching %s into %s\n", r.RemoteURL, r.LocalPath)
		if err := repository.FetchContext(ctx, &gogit.FetchOptions{
			Auth:       r.Auth,
			RemoteName: gogit.DefaultRemoteName,
		}); err != nil && err != gogit.NoErrAlreadyUpToDate {
			if err == transport.ErrRepositoryNotFound {
				return ErrResourceNotFound(r.RemoteURL)
			}
			return fmt.Errorf("failed to fetch repository %s: %w", r.LocalPath, err)
		}
	}
	if version == "" {
		return nil
	}

	w, err := repository.Worktree()
	if err != nil {
		return err
	}

	var checkoutDestination plumbing.ReferenceName
	if _, err := repository.Reference(plumbing.NewRemoteReferenceName(gogit.DefaultRemoteName, version), true); err == nil {
		checkoutDestination = plumbing.NewRemoteReferenceName(gogit.DefaultRemoteName, version)
	} else if _, err := repository.Reference(plumbing.NewTagReferenceName(version), true); err == nil {
		checkoutDestination = plumbing.NewTagReferenceName(version)
	} else {
		return ErrResourceNotFound(fmt.Sprintf("%s@%s", r.RemoteURL, version))
	}

	if err := w.Checkout(&gogit.CheckoutOptions{
		Branch: checkoutDestination,
		Force:  true,
	}); err != nil {
		return fmt.Errorf("couldn't checkout version %s for repository %s: %w", version, r.LocalPath, err)
	}
	return nil
}

func (r *Repository) repository(ctx context.Context) (git.Repository, bool, error) {
	gitRepo, err := r.Git.PlainOpen(r.LocalPath)
	if err != nil {
		if err != gogit.ErrRepositoryNotExists {
			return nil, false, err
		}
		klog.V(6).Infof("cloning %s into %s\n", r.RemoteURL, r.LocalPath)
		if gitRepo, err = r.Git.PlainCloneContext(ctx, r.LocalPath, false, &gogit.CloneOptions{
			URL:        r.RemoteURL,
			RemoteName: gogit.DefaultRemoteName,
			Auth:       r.Auth,
		}); err != nil {
			if err == transport.ErrRepositoryNotFound {
				return nil, false, ErrResourceNotFound(r.RemoteURL)
			}
			return nil, false, fmt.Errorf("failed to prepare repo: %s, %w", r.LocalPath, err)
		}
		return gitRepo, false, nil
	}
	return gitRepo, true, nil
}

type gitHost struct {
	git           git.Git
	local         Interface
	cacheDir      string
	acceptedHosts []string
	tokens        map[string]string

	mutex        sync.Mutex
	repositories map[string]*Repository
}

// NewGit creates a repository host that clones repositories into cacheDir
// and lists documentation roots from the checked out worktree.
// tokens maps a host to the OAuth token used for cloning from it.
func NewGit(g git.Git, os osshim.Os, cacheDir string, acceptedHosts []string, tokens map[string]string) Interface {
	return &gitHost{
		git:           g,
		local:         NewLocal(os),
		cacheDir:      cacheDir,
		acceptedHosts: acceptedHosts,
		tokens:        tokens,
		repositories:  map[string]*Repository{},
	}
}

func (g *gitHost) Accept(root string) bool {
	r, err := url.Parse(root)
	if err != nil || r.Scheme != "https" {
		return false
	}
	for _, h := range g.acceptedHosts {
		if h == r.Host {
			_, err := NewResourceURL(root)
			return err == nil
		}
	}
	return false
}

func (g *gitHost) Exists(ctx context.Context, root string, dir string) (bool, error) {
	localRoot, err := g.checkout(ctx, root)
	if err != nil {
		return false, err
	}
	return g.local.Exists(ctx, localRoot, dir)
}

func (g *gitHost) List(ctx context.Context, root string, dir string) ([]string, error) {
	localRoot, err := g.checkout(ctx, root)
	if err != nil {
		return nil, err
	}
	return g.local.List(ctx, localRoot, dir)
}

func (g *gitHost) Read(ctx context.Context, root string, file string) ([]byte, error) {
	localRoot, err := g.checkout(ctx, root)
	if err != nil {
		return nil, err
	}
	return g.local.Read(ctx, localRoot, file)
}

func (g *gitHost) Name() string {
	return "git"
}

func (g *gitHost) GetRateLimit(ctx context.Context) (int, int, time.Time, error) {
	return 0, 0, time.Time{}, errors.New("not implemented")
}

// checkout prepares the repository of root and returns the local path of the root tree
func (g *gitHost) checkout(ctx context.Context, root string) (string, error) {
	r, err := NewResourceURL(root)
	if err != nil {
		return "", err
	}
	repo := g.repository(r)
	if err := repo.Prepare(ctx, r.GetRef()); err != nil {
		return "", err
	}
	return filepath.Join(repo.LocalPath, filepath.FromSlash(r.GetResourcePath())), nil
}

func (g *gitHost) repository(r *URL) *Repository {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	ref := r.GetRef()
	if ref == "" {
		ref = "HEAD"
	}
	localPath := filepath.Join(g.cacheDir, "git", r.GetHost(), r.GetOwner(), r.GetRepo(), ref)
	if repo, ok := g.repositories[localPath]; ok {
		return repo
	}
	repo := &Repository{
		LocalPath: localPath,
		RemoteURL: r.RepositoryURL(),
		Git:       g.git,
	}
	if token, ok := g.tokens[r.GetHost()]; ok && token != "" {
		// any non-empty username works for token authentication
		repo.Auth = &http.BasicAuth{Username: "navforge", Password: token}
	}
	g.repositories[localPath] = repo
	return repo
}
