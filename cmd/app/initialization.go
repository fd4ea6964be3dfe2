// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/hashicorp/go-multierror"
	"github.com/peterbourgon/diskv"
	"github.com/rhizome-lab/navforge/pkg/git"
	"github.com/rhizome-lab/navforge/pkg/metrics"
	"github.com/rhizome-lab/navforge/pkg/osfakes/osshim"
	"github.com/rhizome-lab/navforge/pkg/registry/repositoryhost"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

const defaultHost = "github.com"

func initRepositoryHosts(ctx context.Context, o repositoryhost.InitOptions, instrument bool) ([]repositoryhost.Interface, error) {
	var rhs []repositoryhost.Interface
	var errs *multierror.Error

	tokens := map[string]string{}
	for host, envVar := range o.EnvCredentials {
		oAuthToken := os.Getenv(envVar)
		if oAuthToken == "" {
			return nil, fmt.Errorf("%s's OAUTH ENV variable is empty", host)
		}
		tokens[host] = oAuthToken
	}
	if _, ok := tokens[defaultHost]; !ok {
		klog.Infof("using unauthenticated %s access\n", defaultHost)
		tokens[defaultHost] = ""
	}
	hosts := make([]string, 0, len(tokens))
	for host := range tokens {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	for _, host := range hosts {
		instance := host
		if !strings.HasPrefix(instance, "https://") && !strings.HasPrefix(instance, "http://") {
			instance = "https://" + instance
		}
		u, err := url.Parse(instance)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("couldn't parse url: %s", instance))
			continue
		}
		if o.UseGit {
			gitCache := filepath.Join(o.CacheHomeDir, "repositories")
			rhs = append(rhs, repositoryhost.NewGit(git.NewGit(), &osshim.OsShim{}, gitCache, []string{u.Host}, map[string]string{u.Host: tokens[host]}))
			continue
		}
		cachePath := filepath.Join(o.CacheHomeDir, "diskv", u.Host)
		client, err := buildClient(ctx, tokens[host], instance, cachePath, instrument)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		rhs = append(rhs, repositoryhost.NewGHC(u.Host, client, client.Repositories, []string{u.Host}))
	}
	return rhs, errs.ErrorOrNil()
}

func buildClient(ctx context.Context, accessToken string, host string, cachePath string, instrument bool) (*github.Client, error) {
	base := http.DefaultTransport
	if len(accessToken) > 0 {
		// if token provided replace base RoundTripper
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		base = oauth2.NewClient(ctx, ts).Transport
	}
	if instrument {
		base = metrics.InstrumentClientRoundTripperDuration(&http.Client{Transport: base}).Transport
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024 * 1024,
	})

	cacheTransport := &httpcache.Transport{
		Transport:           base,
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}
	httpClient := cacheTransport.Client()

	if host == "https://"+defaultHost {
		return github.NewClient(httpClient), nil
	}
	return github.NewEnterpriseClient(host, "", httpClient)
}
