// Pin commands: set, clear, focus, list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pinProjectFlag string
	pinViewFlag    string
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Bind single-key pins to views for instant recall",
}

var pinSetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Bind a key to a view",
	Long: `Set binds a key to a view; re-setting an existing key replaces its
target. Without --project and --view the currently focused view is pinned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()
		host := newWindowHost()

		project, err := targetProject(repo, host, pinProjectFlag)
		if err != nil {
			return err
		}

		view, err := repo.GetActiveViewForProject(project)
		if err != nil {
			return err
		}
		if pinViewFlag != "" {
			view, err = repo.GetViewByName(project, pinViewFlag)
			if err != nil {
				return err
			}
		}

		if err := repo.SetPin(key, view); err != nil {
			return err
		}

		fmt.Printf("pinned %q to %s#%s\n", key, project.Name, view.Name)
		return nil
	},
}

var pinClearCmd = &cobra.Command{
	Use:   "clear <key>",
	Short: "Remove a pin binding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		// Clearing an absent key succeeds; report it either way.
		if err := repo.ClearPin(args[0]); err != nil {
			return err
		}
		fmt.Printf("cleared pin %q\n", args[0])
		return nil
	},
}

var pinFocusCmd = &cobra.Command{
	Use:   "focus <key>",
	Short: "Focus the view bound to a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		view, err := repo.GetViewForPinKey(args[0])
		if err != nil {
			return err
		}
		project, err := repo.GetProjectByID(view.ProjectID)
		if err != nil {
			return err
		}

		return focusView(repo, newWindowHost(), project, view)
	},
}

var pinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pins with their targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		pins, err := repo.ListPins()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(pins)
		}

		for _, pin := range pins {
			view, err := repo.GetViewForPinKey(pin.Key)
			if err != nil {
				return err
			}
			displayName, err := repo.GetWindowManagerDisplayName(view)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", pin.Key, displayName)
		}
		return nil
	},
}

func init() {
	pinSetCmd.Flags().StringVar(&pinProjectFlag, "project", "", "project name (default: project of the focused workspace)")
	pinSetCmd.Flags().StringVar(&pinViewFlag, "view", "", "view name (default: the project's active view)")

	pinCmd.AddCommand(pinSetCmd)
	pinCmd.AddCommand(pinClearCmd)
	pinCmd.AddCommand(pinFocusCmd)
	pinCmd.AddCommand(pinListCmd)
}
