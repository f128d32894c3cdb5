// Workspace-facing commands: focus, current, workspaces.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus <project>",
	Short: "Focus a project's active view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		project, err := repo.GetProjectByName(args[0])
		if err != nil {
			return err
		}
		view, err := repo.GetActiveViewForProject(project)
		if err != nil {
			return err
		}

		return focusView(repo, newWindowHost(), project, view)
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the project and view of the focused workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		name, err := newWindowHost().ActiveWorkspaceName()
		if err != nil {
			return err
		}

		project, view, err := repo.GetViewForDisplayName(name)
		if err != nil {
			fmt.Printf("workspace %q is not managed by pivot\n", name)
			return nil
		}

		key, err := repo.GetPinKeyForView(view)
		if err != nil {
			return err
		}

		if key != "" {
			fmt.Printf("project %q, view %q (pinned to %q)\n", project.Name, view.Name, key)
		} else {
			fmt.Printf("project %q, view %q\n", project.Name, view.Name)
		}
		return nil
	},
}

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List the host's workspaces, marking the managed ones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		names, err := newWindowHost().AllWorkspaceNames()
		if err != nil {
			return err
		}

		for _, name := range names {
			if _, _, err := repo.GetViewForDisplayName(name); err != nil {
				fmt.Printf("  %s\n", name)
				continue
			}
			fmt.Printf("* %s\n", name)
		}
		return nil
	},
}
