package main

import (
	"flag"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vietanhduong/wcap/pkg/logging"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
)

const envPrefix = "WCAP"

func newCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	this := &cobra.Command{
		Use:   "wcap-probe",
		Short: "Report which entry points of a registry are provided by a loader, a library or a process.",
		Long: `
Report which entry points of a registry are provided by a resolver. Every group
of the registry is built as a table and each entry point is listed with its
address, or as missing when the resolver does not provide it.

By default the embedded Vulkan registry is probed through the Vulkan loader.
Flags may also be set through WCAP_* environment variables or a config file.
		`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", configFile, err)
				}
			}
			logging.SetupLoggingWithViper(v)
			log := logging.DefaultLogger.WithField(logfields.LogComponent, "probe")

			cfg, err := configFromViper(v)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer cancel()

			reports, err := runProbe(ctx, cfg, log)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), cfg.Output, reports)
		},
	}

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	logging.RegisterFlags(fs)
	this.Flags().AddGoFlagSet(fs)
	// /proc and host path flags of the proc package
	this.Flags().AddGoFlagSet(flag.CommandLine)

	this.Flags().StringVarP(&configFile, "config", "c", "", "Config `file` (yaml, json or toml) with the same keys as the flags.")
	this.Flags().String(registryFlag, "", "Registry YAML to probe. Empty probes the embedded Vulkan registry.")
	this.Flags().StringSliceP(libraryFlag, "l", nil, "Libraries to open, first loadable wins. Defaults to the Vulkan loader of this platform.")
	this.Flags().StringP(sourceFlag, "s", sourceLoader, "Where names are resolved: 'loader' (vkGetInstanceProcAddr), 'dlsym' (library exports) or 'proc' (ELF symbols of a process).")
	this.Flags().IntP(pidFlag, "p", 0, "Process to read symbols from with --source=proc. 0 means this process.")
	this.Flags().StringSlice(modulesFlag, nil, "With --source=proc, only consider objects whose path contains one of these strings.")
	this.Flags().String(demangleFlag, "none", "With --source=proc, also match demangled names: none, simplified, templates or full.")
	this.Flags().Bool(debugFileFlag, false, "With --source=proc, prefer separate debug files when present.")
	this.Flags().Int(cacheSizeFlag, 0, "Cache up to this many lookups. 0 disables the cache.")
	this.Flags().StringP(outputFlag, "o", outputText, "Report format: 'text' or 'json'.")
	this.Flags().Bool(onlyMissingFlag, false, "Only list entry points the resolver does not provide.")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(this.Flags()); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
	return this
}
