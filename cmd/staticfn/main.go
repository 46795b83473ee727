package main

import (
	"fmt"
	"os"

	"github.com/tmpltools/staticfn/internal/adapters/aliasconfig"
	"github.com/tmpltools/staticfn/internal/core/services/inspection"
	"github.com/tmpltools/staticfn/internal/core/services/resolution"
	"github.com/tmpltools/staticfn/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

const defaultConfigPath = "staticfn.yaml"

func main() {
	configPath := os.Getenv("STATICFN_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	provider, err := aliasconfig.NewYAMLProvider(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing binding provider: %v\n", err)
		os.Exit(1)
	}

	bindings, err := provider.GetBindings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bindings from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	resolver := resolution.NewService(bindings)
	inspectionSvc := inspection.NewService(provider, resolver)
	rootCmd := cli.NewRootCommand(Version, inspectionSvc)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
