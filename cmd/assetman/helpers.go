// Shared helpers for assetman CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openpuyo/assetman/internal/folder"
	"github.com/openpuyo/assetman/pkg/assets"
	"github.com/openpuyo/assetman/pkg/bundle"
	"github.com/openpuyo/assetman/pkg/debuglog"
	"github.com/openpuyo/assetman/pkg/types"
)

// cliFrontend is the opaque front-end handle used for CLI resolution
// runs; no bundle implementation shipped here inspects it.
type cliFrontend struct{}

// newDebugLog builds the slog-backed debug log from config.yaml settings.
func newDebugLog() types.DebugLog {
	return debuglog.New(
		cliConfig.GetString(cfgKeyLogLevel),
		cliConfig.GetString(cfgKeyLogFormat),
		os.Stderr,
	)
}

// buildManager assembles an activated manager from the explicit bundle
// list in config.yaml, or by discovering sources in the bundle
// directory. The caller must defer manager.Close(). Invalid bundles are
// skipped with a warning rather than failing the command.
func buildManager() (*assets.Manager, error) {
	configs, err := bundleConfigs()
	if err != nil {
		return nil, err
	}

	m := assets.NewActivated(cliFrontend{}, newDebugLog())
	for _, cfg := range configs {
		b, err := bundle.New(cfg)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("bundle %s: %w", cfg.Path, err)
		}
		if !m.LoadBundle(b, 0) {
			b.Close()
			fmt.Fprintf(os.Stderr, "skipping invalid bundle %s\n", cfg.Path)
		}
	}
	return m, nil
}

// bundleConfigs returns the ordered bundle sources: the explicit
// `bundles:` list when present, discovery of the bundle dir otherwise.
func bundleConfigs() ([]types.Config, error) {
	if cliConfig.IsSet(cfgKeyBundles) {
		var configs []types.Config
		if err := cliConfig.UnmarshalKey(cfgKeyBundles, &configs); err != nil {
			return nil, fmt.Errorf("parse bundles list: %w", err)
		}
		for _, cfg := range configs {
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("bundle %s: %w", cfg.Path, err)
			}
		}
		return configs, nil
	}

	dir, err := resolveBundleDir()
	if err != nil {
		return nil, fmt.Errorf("resolve bundle dir: %w", err)
	}
	return discoverBundles(dir)
}

// discoverBundles scans dir in lexical order: subdirectories carrying a
// manifest.yaml load as folder bundles, *.pak files as packed bundles.
func discoverBundles(dir string) ([]types.Config, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan bundle dir: %w", err)
	}

	var configs []types.Config
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			if _, err := os.Stat(filepath.Join(path, folder.ManifestFileName)); err == nil {
				configs = append(configs, types.Config{Kind: types.KindFolder, Path: path})
			}
		case strings.HasSuffix(e.Name(), ".pak"):
			configs = append(configs, types.Config{Kind: types.KindPak, Path: path})
		}
	}
	return configs, nil
}

// bundleRoots returns the filesystem locations backing the configured
// bundles, for watching.
func bundleRoots() ([]string, error) {
	configs, err := bundleConfigs()
	if err != nil {
		return nil, err
	}
	var roots []string
	for _, cfg := range configs {
		if cfg.Kind == types.KindPak {
			roots = append(roots, filepath.Dir(cfg.Path))
		} else {
			roots = append(roots, cfg.Path)
		}
	}
	return roots, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// printNames writes a name list as lines or JSON per the --json flag.
func printNames(names []string) error {
	if flagJSON {
		return printJSON(names)
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
