// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/rhizome-lab/navforge/cmd/gendocs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	// NavforgeHomeDir is the navforge home directory below the user's home
	NavforgeHomeDir = ".navforge"
	// ConfigEnv names the environment variable holding the configuration file path
	ConfigEnv = "NAVFORGE_CONFIG"
	// EnvPrefix prefixes environment variables overriding flags
	EnvPrefix = "NAVFORGE"
)

var vip *viper.Viper

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	vip = viper.New()
	cmd := &cobra.Command{
		Use:   "navforge",
		Short: "Forge the site configuration of a documentation website",
		Long: `navforge reads a site manifest, derives the autogenerated sidebar groups
from the documentation root and writes the configuration object of the site generator.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(vip)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}

	configureFlags(cmd)

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	AddFlags(cmd)

	return cmd
}

// AddFlags adds klog flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.Flags().AddGoFlagSet(klogFlags)
}

// loadConfig merges the configuration file and NAVFORGE_* environment
// variables below the flags bound to v. A missing default configuration
// file is not an error.
func loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configFile, found := os.LookupEnv(ConfigEnv); found {
		v.SetConfigFile(configFile)
		klog.V(2).Infof("reading configuration from %s\n", configFile)
		return v.ReadInConfig()
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(filepath.Join(userHomeDir, NavforgeHomeDir))
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	klog.V(2).Infof("reading configuration from %s\n", v.ConfigFileUsed())
	return nil
}
