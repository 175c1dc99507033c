package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/dock"
	"github.com/bnema/dockyard/internal/geometry"
)

var layoutsJSON bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved window layouts",
	Long: `List, inspect, and delete window layouts saved in the layout store.

Layouts are JSON snapshots of a main window: its geometry, options,
docked panel arrangement, and per-edge side bar contents.`,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

// layouts list
var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	RunE:  runLayoutsList,
}

func init() {
	layoutsCmd.AddCommand(layoutsListCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
}

func runLayoutsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layouts, err := app.Layouts.List(app.Ctx())
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}

	if layoutsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		type row struct {
			Name      string `json:"name"`
			UpdatedAt string `json:"updatedAt"`
		}
		rows := make([]row, 0, len(layouts))
		for _, l := range layouts {
			rows = append(rows, row{Name: l.Name, UpdatedAt: l.UpdatedAt.Format("2006-01-02 15:04:05")})
		}
		return enc.Encode(rows)
	}

	if len(layouts) == 0 {
		fmt.Println("No saved layouts.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tUPDATED")
	for _, l := range layouts {
		fmt.Fprintf(w, "%s\t%s\n", l.Name, l.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// layouts show
var layoutsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved layout as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsShow,
}

func init() {
	layoutsCmd.AddCommand(layoutsShowCmd)
}

func runLayoutsShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	state, err := app.Layouts.Get(app.Ctx(), args[0])
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	if state == nil {
		return fmt.Errorf("no layout named %q", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

// layouts delete
var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsDelete,
}

func init() {
	layoutsCmd.AddCommand(layoutsDeleteCmd)
}

func runLayoutsDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Layouts.Delete(app.Ctx(), args[0]); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	fmt.Printf("Deleted layout %q\n", args[0])
	return nil
}

// layouts validate
var layoutsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a layout JSON file",
	Long: `Parse a layout JSON file and check it for structural problems:
a missing window name, unknown side bar edges, or a panel listed on
more than one side bar.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutsValidate,
}

func init() {
	layoutsCmd.AddCommand(layoutsValidateCmd)
}

func runLayoutsValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read layout file: %w", err)
	}

	var state dock.WindowState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parse layout file: %w", err)
	}

	var problems []string
	if state.Name == "" {
		problems = append(problems, "window has no uniqueName")
	}
	seen := make(map[string]string)
	for edge, names := range state.SideBars {
		if geometry.EdgeFromString(edge) == geometry.EdgeNone {
			problems = append(problems, fmt.Sprintf("unknown side bar edge %q", edge))
			continue
		}
		for _, name := range names {
			if prev, ok := seen[name]; ok {
				problems = append(problems, fmt.Sprintf("panel %q listed on both %s and %s side bars", name, prev, edge))
				continue
			}
			seen[name] = edge
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "invalid: %s\n", p)
		}
		return fmt.Errorf("layout file %s has %d problem(s)", args[0], len(problems))
	}

	fmt.Printf("%s: OK (%d side bar panel(s))\n", args[0], len(seen))
	return nil
}
