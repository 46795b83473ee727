package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tmpltools/staticfn/internal/core/ports"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	inspectionService ports.BindingInspectionService,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "staticfn",
		Short: "staticfn resolves template function names to aliased service methods.",
		Long: `staticfn maps template function calls like auth_check() onto methods of
statically aliased services (auth -> myapp/auth.Guard, method check).
Bindings are read from a YAML file; set STATICFN_CONFIG to override the
default ./staticfn.yaml location.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if inspectionService == nil && (cmd.Name() == "resolve" || cmd.Name() == "list" || cmd.Name() == "check") {
				return fmt.Errorf("binding inspection service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewResolveCommand(inspectionService))
	rootCmd.AddCommand(NewListCommand(inspectionService))
	rootCmd.AddCommand(NewCheckCommand(inspectionService))

	return rootCmd
}
