// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rhizome-lab/navforge/pkg/markdown"
	"github.com/rhizome-lab/navforge/pkg/metrics"
	"github.com/rhizome-lab/navforge/pkg/osfakes/osshim"
	"github.com/rhizome-lab/navforge/pkg/registry"
	"github.com/rhizome-lab/navforge/pkg/registry/repositoryhost"
	"github.com/rhizome-lab/navforge/pkg/sidebar"
	"github.com/rhizome-lab/navforge/pkg/site"
	"github.com/rhizome-lab/navforge/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, stdout io.Writer) error {
	var options options
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	format, err := site.ParseFormat(options.Format)
	if err != nil {
		return err
	}
	if options.ManifestPath == "" {
		return errors.New("manifest is not set: use --manifest, the manifest configuration key or NAVFORGE_MANIFEST")
	}
	klog.Infof("Manifest: %s", options.ManifestPath)
	manifest, err := os.ReadFile(options.ManifestPath)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	s, err := site.Parse(manifest, options.Variables)
	if err != nil {
		return fmt.Errorf("failed to parse manifest %s: %w", options.ManifestPath, err)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid manifest %s: %w", options.ManifestPath, err)
	}
	docsRoot := documentationRoot(options.ManifestPath, s.DocsRoot)
	klog.Infof("Documentation root: %s", docsRoot)

	if options.EnvFile != "" {
		if err := godotenv.Load(options.EnvFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", options.EnvFile, err)
		}
	}
	var gatherer *prometheus.Registry
	if options.Metrics {
		gatherer = prometheus.NewRegistry()
		metrics.RegisterClientMetrics(gatherer)
	}
	rhs, err := initRepositoryHosts(ctx, options.InitOptions, options.Metrics)
	if err != nil {
		return err
	}
	rhRegistry := registry.NewRegistry(append([]repositoryhost.Interface{repositoryhost.NewLocal(&osshim.OsShim{})}, rhs...)...)
	tree, err := rhRegistry.Tree(docsRoot)
	if err != nil {
		return err
	}

	if options.ValidateLinks {
		if err := site.CheckLinks(ctx, s, tree, options.ValidationWorkers); err != nil {
			if options.FailFast {
				return err
			}
			klog.Warningf("%v\n", err)
		}
	}

	var deriverOptions []sidebar.Option
	if options.FrontmatterTitles {
		deriverOptions = append(deriverOptions, sidebar.WithTitleSource(&markdown.Titles{Reader: tree}))
	}
	resolved, err := site.Resolve(ctx, s, sidebar.NewDeriver(tree, deriverOptions...))
	if err != nil {
		return fmt.Errorf("failed to resolve sidebars of %s: %w", options.ManifestPath, err)
	}
	out, err := site.Render(resolved, format)
	if err != nil {
		return err
	}

	name := options.OutputName + format.Extension()
	klog.Infof("Output: %s", filepath.Join(options.DestinationPath, name))
	if options.DryRun {
		dryRunWriters := writers.NewDryRunWritersFactory(stdout)
		if err := dryRunWriters.GetWriter(options.DestinationPath).Write(name, "", out); err != nil {
			return err
		}
		if err := dryRunWriters.Flush(); err != nil {
			return err
		}
	} else {
		w := &writers.FSWriter{Root: options.DestinationPath}
		if err := w.Write(name, "", out); err != nil {
			return err
		}
	}

	if repositoryhost.IsRemoteRoot(docsRoot) {
		rhRegistry.LogRateLimits(ctx)
	}
	if gatherer != nil {
		metrics.LogMetrics(gatherer)
	}
	return nil
}

// documentationRoot resolves a local documentation root against the manifest
// directory. Remote roots are returned unchanged and an empty root is the
// manifest directory itself.
func documentationRoot(manifestPath string, docsRoot string) string {
	if repositoryhost.IsRemoteRoot(docsRoot) || filepath.IsAbs(docsRoot) {
		return docsRoot
	}
	return filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(docsRoot))
}
