package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/vietanhduong/wcap/pkg/syms"
)

const (
	registryFlag    = "registry"
	libraryFlag     = "library"
	sourceFlag      = "source"
	pidFlag         = "pid"
	modulesFlag     = "modules"
	demangleFlag    = "demangle"
	debugFileFlag   = "debug-file"
	cacheSizeFlag   = "cache-size"
	outputFlag      = "output"
	onlyMissingFlag = "only-missing"
)

const (
	sourceLoader = "loader"
	sourceDlsym  = "dlsym"
	sourceProc   = "proc"

	outputText = "text"
	outputJSON = "json"
)

type probeConfig struct {
	Registry    string
	Libraries   []string
	Source      string
	Pid         int
	Modules     []string
	Demangle    syms.DemangleType
	DebugFile   bool
	CacheSize   int
	Output      string
	OnlyMissing bool
}

func configFromViper(v *viper.Viper) (*probeConfig, error) {
	cfg := &probeConfig{
		Registry:    v.GetString(registryFlag),
		Libraries:   v.GetStringSlice(libraryFlag),
		Source:      v.GetString(sourceFlag),
		Pid:         v.GetInt(pidFlag),
		Modules:     v.GetStringSlice(modulesFlag),
		DebugFile:   v.GetBool(debugFileFlag),
		CacheSize:   v.GetInt(cacheSizeFlag),
		Output:      v.GetString(outputFlag),
		OnlyMissing: v.GetBool(onlyMissingFlag),
	}
	var err error
	if cfg.Demangle, err = syms.ParseDemangleType(v.GetString(demangleFlag)); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", demangleFlag, err)
	}
	switch cfg.Source {
	case sourceLoader, sourceDlsym, sourceProc:
	default:
		return nil, fmt.Errorf("invalid --%s %q", sourceFlag, cfg.Source)
	}
	switch cfg.Output {
	case outputText, outputJSON:
	default:
		return nil, fmt.Errorf("invalid --%s %q", outputFlag, cfg.Output)
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("invalid --%s %d", cacheSizeFlag, cfg.CacheSize)
	}
	if cfg.Pid <= 0 {
		cfg.Pid = os.Getpid()
	}
	return cfg, nil
}
