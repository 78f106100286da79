package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap"
	"github.com/vietanhduong/wcap/pkg/dl"
	"github.com/vietanhduong/wcap/pkg/registry"
	"github.com/vietanhduong/wcap/pkg/syms"
	"github.com/vietanhduong/wcap/pkg/syms/cache"
	"github.com/vietanhduong/wcap/pkg/vk"
)

func runProbe(ctx context.Context, cfg *probeConfig, log logrus.FieldLogger) ([]tableReport, error) {
	reg, err := loadRegistry(cfg.Registry)
	if err != nil {
		return nil, err
	}
	r, closer, err := openResolver(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closer(); err != nil {
			log.WithError(err).Warn("Failed to close resolver")
		}
	}()

	var c *cache.Cache
	if cfg.CacheSize > 0 {
		if c, err = cache.New(r, cfg.CacheSize); err != nil {
			return nil, err
		}
		r = c
	}

	tables, err := probe(ctx, reg, r, wcap.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if c != nil {
		hits, misses := c.Stats()
		log.WithFields(logrus.Fields{"hits": hits, "misses": misses, "evicted": c.TotalEvicted()}).Debug("Cache stats")
	}
	// vkGetInstanceProcAddr(NULL, name) only answers for global commands
	return buildReports(tables, cfg.OnlyMissing, cfg.Source == sourceLoader), nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return vk.Registry()
	}
	return registry.Load(path)
}

func openResolver(cfg *probeConfig) (wcap.Resolver, func() error, error) {
	switch cfg.Source {
	case sourceDlsym:
		libs := cfg.Libraries
		if len(libs) == 0 {
			libs = vk.DefaultLibraries()
		}
		lib, err := dl.Open(libs...)
		if err != nil {
			return nil, nil, err
		}
		return lib, lib.Close, nil
	case sourceLoader:
		e, err := vk.NewEntryWithOptions(cfg.Libraries)
		if err != nil {
			return nil, nil, err
		}
		return e.GlobalResolver(), e.Close, nil
	case sourceProc:
		ps, err := syms.NewProcSymbol(cfg.Pid, &syms.SymbolOptions{
			DemangleType: cfg.Demangle,
			UseDebugFile: cfg.DebugFile,
			Modules:      cfg.Modules,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("pid %d: %w", cfg.Pid, err)
		}
		return ps, func() error { ps.Cleanup(); return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown source %q", cfg.Source)
}

// probe builds one raw table per group of reg, in parallel.
func probe(ctx context.Context, reg *registry.Registry, r wcap.Resolver, opts ...wcap.LoadOption) ([]wcap.Table, error) {
	loaders := make([]wcap.Loader, 0, len(reg.Groups))
	for _, g := range reg.Groups {
		loaders = append(loaders, func() wcap.Table {
			return wcap.LoadRaw(g.Name, g.TableScope(), g.Names(), r, opts...)
		})
	}
	tables, err := wcap.LoadAll(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", reg.Package, err)
	}
	return tables, nil
}
