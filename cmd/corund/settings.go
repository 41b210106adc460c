package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"corund/internal/config"
	"corund/internal/driver"
)

// resolveSettings merges corund.toml with command-line flags; flags that
// were set explicitly win.
func resolveSettings(cmd *cobra.Command, cfg config.Config) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: cfg.Resolve.MaxDiagnostics,
		Jobs:           cfg.Resolve.Jobs,
		CheckAliases:   cfg.Resolve.CheckAliases,
		WarnShadowing:  cfg.Resolve.WarnShadowing,
		CrateName:      cfg.Package.Name,
	}
	flags := cmd.Flags()
	var err error
	if flags.Changed("max-diagnostics") {
		if opts.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("check-aliases") {
		if opts.CheckAliases, err = flags.GetBool("check-aliases"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("warn-shadowing") {
		if opts.WarnShadowing, err = flags.GetBool("warn-shadowing"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("crate-name") {
		if opts.CrateName, err = flags.GetString("crate-name"); err != nil {
			return opts, err
		}
	}

	useCache := cfg.Cache.Enabled
	if flags.Changed("cache") {
		if useCache, err = flags.GetBool("cache"); err != nil {
			return opts, err
		}
	}
	if useCache {
		cache, err := openCache(cfg)
		if err != nil {
			return opts, err
		}
		opts.Cache = cache
	}
	return opts, nil
}

func openCache(cfg config.Config) (*driver.DiskCache, error) {
	if cfg.Cache.Dir == "" {
		return driver.OpenDiskCache("corund")
	}
	dir := cfg.Cache.Dir
	// относительный путь считается от corund.toml
	if !filepath.IsAbs(dir) && cfg.Path != "" {
		dir = filepath.Join(filepath.Dir(cfg.Path), dir)
	}
	cache, err := driver.NewDiskCache(dir)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return cache, nil
}
