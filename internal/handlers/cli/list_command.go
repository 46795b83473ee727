package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tmpltools/staticfn/internal/core/ports"
	"github.com/tmpltools/staticfn/internal/handlers/ui"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(inspectionService ports.BindingInspectionService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured alias and shortcut tables.",
		Long:  `Displays the binding tables as the resolver sees them, with keys normalized to lower case.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, inspectionService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	_ *cobra.Command,
	_ []string,
	inspectionService ports.BindingInspectionService,
) error {
	set, err := inspectionService.ListBindings()
	if err != nil {
		return fmt.Errorf("could not list bindings: %w", err)
	}

	if set.IsEmpty() {
		fmt.Println(ui.InfoColor("No bindings configured."))
		return nil
	}

	if len(set.Aliases) > 0 {
		fmt.Println(ui.HeaderColor("Aliases (prefix -> service):"))
		renderTable([]string{"Prefix", "Service"}, set.Aliases)
	}
	if len(set.Shortcuts) > 0 {
		fmt.Println(ui.HeaderColor("Shortcuts (name -> canonical name):"))
		renderTable([]string{"Shortcut", "Target"}, set.Shortcuts)
	}
	return nil
}

func renderTable(header []string, rows map[string]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	names := make([]string, 0, len(rows))
	for name := range rows {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		table.Append([]string{name, rows[name]})
	}
	table.Render()
}
