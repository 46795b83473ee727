package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmpltools/staticfn/internal/core/ports"
	"github.com/tmpltools/staticfn/internal/handlers/ui"
)

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(inspectionService ports.BindingInspectionService) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Resolve template function names against the configured bindings.",
		Long: `Resolves each name the way a template engine's unknown-function hook would,
printing the target and method it maps to, or why it does not resolve.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCmd(cmd, args, inspectionService)
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show every resolution step, not just the result.")

	return cmd
}

func runResolveCmd(
	cmd *cobra.Command,
	args []string,
	inspectionService ports.BindingInspectionService,
) error {
	explain, _ := cmd.Flags().GetBool("explain")

	unresolved := 0
	for _, name := range args {
		trace := inspectionService.Explain(name)
		printTrace(trace, explain)
		if !trace.Resolved {
			unresolved++
		}
	}

	if unresolved > 0 {
		return fmt.Errorf("%d of %d name(s) did not resolve", unresolved, len(args))
	}
	return nil
}

func printTrace(trace ports.ResolutionTrace, explain bool) {
	if trace.Resolved {
		fmt.Printf("%s %s %s.%s\n",
			ui.FuncNameColor(trace.Input),
			ui.SuccessColor("->"),
			ui.TargetColor(trace.Descriptor.Target),
			ui.MethodColor(trace.Descriptor.Method))
	} else {
		fmt.Printf("%s %s %s\n",
			ui.FuncNameColor(trace.Input),
			ui.ErrorColor("-> not resolved:"),
			trace.Reason)
	}

	if !explain {
		return
	}
	if trace.Substituted != strings.ToLower(trace.Input) {
		fmt.Println(ui.DetailColor(fmt.Sprintf("    shortcut: %s -> %s", trace.Input, trace.Substituted)))
	}
	if trace.Prefix != "" {
		fmt.Println(ui.DetailColor(fmt.Sprintf("    prefix:   %s", trace.Prefix)))
		fmt.Println(ui.DetailColor(fmt.Sprintf("    method:   %s", trace.Method)))
	}
}
