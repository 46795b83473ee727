package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tmpltools/staticfn/internal/core/ports"
	"github.com/tmpltools/staticfn/internal/handlers/ui"
)

// NewCheckCommand creates the 'check' subcommand.
func NewCheckCommand(inspectionService ports.BindingInspectionService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the configured bindings for entries that can never resolve.",
		Long: `Validates the binding tables: alias keys that can never match a call
prefix, shortcuts whose target does not resolve, and shortcut chains that
would need a second substitution pass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd, args, inspectionService)
		},
	}
	return cmd
}

func runCheckCmd(
	_ *cobra.Command,
	_ []string,
	inspectionService ports.BindingInspectionService,
) error {
	diagnostics, err := inspectionService.CheckBindings()
	if err != nil {
		return fmt.Errorf("could not check bindings: %w", err)
	}

	if len(diagnostics) == 0 {
		fmt.Println(ui.SuccessColor("Bindings look good."))
		return nil
	}

	errorCount := 0
	for _, d := range diagnostics {
		switch d.Level {
		case ports.DiagnosticError:
			errorCount++
			fmt.Printf("%s %s\n", ui.ErrorColor("error:"), d.Message)
		default:
			fmt.Printf("%s %s\n", ui.WarningColor("warning:"), d.Message)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("found %d error(s) in the configured bindings", errorCount)
	}
	return nil
}
