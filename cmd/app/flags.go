// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func configureFlags(command *cobra.Command) {
	command.Flags().StringP("manifest", "f", "",
		"Site manifest path. Required, also accepted from the configuration file and NAVFORGE_MANIFEST.")
	_ = vip.BindPFlag("manifest", command.Flags().Lookup("manifest"))

	command.Flags().StringP("destination", "d", ".",
		"Destination path of the site configuration.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("output-name", "config",
		"File name of the site configuration, without extension.")
	_ = vip.BindPFlag("output-name", command.Flags().Lookup("output-name"))

	command.Flags().String("format", "json",
		"Format of the site configuration. One of json, yaml.")
	_ = vip.BindPFlag("format", command.Flags().Lookup("format"))

	command.Flags().StringToString("variables", map[string]string{},
		"Variables applied to parameterized (using Go template) manifest.")
	_ = vip.BindPFlag("variables", command.Flags().Lookup("variables"))

	command.Flags().StringToString("github-oauth-env-map", map[string]string{},
		"Map between GitHub instances and ENV variables holding the personal tokens authorizing read access to their repositories.")
	_ = vip.BindPFlag("github-oauth-env-map", command.Flags().Lookup("github-oauth-env-map"))

	command.Flags().String("env-file", "",
		"Dotenv file loaded into the environment before reading the OAuth ENV variables.")
	_ = vip.BindPFlag("env-file", command.Flags().Lookup("env-file"))

	command.Flags().Bool("use-git", false,
		"Clone remote documentation roots with git instead of reading them through the GitHub API.")
	_ = vip.BindPFlag("use-git", command.Flags().Lookup("use-git"))

	command.Flags().Bool("frontmatter-titles", false,
		"Prefer the frontmatter title of a document over the label derived from its file name.")
	_ = vip.BindPFlag("frontmatter-titles", command.Flags().Lookup("frontmatter-titles"))

	command.Flags().Bool("validate-links", false,
		"Check that root-relative nav and sidebar links point to documents.")
	_ = vip.BindPFlag("validate-links", command.Flags().Lookup("validate-links"))

	command.Flags().Int("validation-workers", 10,
		"Number of parallel workers to validate the nav and sidebar links.")
	_ = vip.BindPFlag("validation-workers", command.Flags().Lookup("validation-workers"))

	command.Flags().Bool("fail-fast", false,
		"Fail on broken links instead of reporting them as warnings.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file/folder hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().Bool("metrics", false,
		"Instrument outbound HTTP requests and log request totals at the end of the run.")
	_ = vip.BindPFlag("metrics", command.Flags().Lookup("metrics"))

	cacheDir := ""
	userHomeDir, err := os.UserHomeDir()
	if err == nil {
		// default value $HOME/.navforge
		cacheDir = filepath.Join(userHomeDir, NavforgeHomeDir)
	}
	command.Flags().String("cache-dir", cacheDir,
		"Cache directory, used for HTTP and repository cache.")
	_ = vip.BindPFlag("cache-dir", command.Flags().Lookup("cache-dir"))
}
