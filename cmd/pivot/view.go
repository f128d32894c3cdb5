// View commands: add, list, next, prev.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

var viewProjectFlag string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage and cycle through a project's views",
}

var viewAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Append a view to a project and switch to it",
	Long: `Add appends a view after the project's last position, makes it the
active view, and focuses it. Without --project the project of the currently
focused workspace is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()
		host := newWindowHost()

		project, err := targetProject(repo, host, viewProjectFlag)
		if err != nil {
			return err
		}

		view, err := repo.AddViewToProject(project, args[0])
		if err != nil {
			return err
		}

		displayName, err := repo.GetWindowManagerDisplayName(view)
		if err != nil {
			return err
		}
		if err := host.Focus(displayName); err != nil {
			return err
		}

		fmt.Printf("added view %q to project %q (position %d)\n", view.Name, project.Name, view.Position)
		return nil
	},
}

var viewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's views in cycle order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		project, err := targetProject(repo, newWindowHost(), viewProjectFlag)
		if err != nil {
			return err
		}

		views, err := repo.ListViewsForProject(project)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(views)
		}

		for _, view := range views {
			marker := " "
			if view.ID == project.ActiveViewID {
				marker = "*"
			}
			fmt.Printf("%s %d\t%s\n", marker, view.Position, view.Name)
		}
		return nil
	},
}

var viewNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Switch to the next view of the current project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cycleView(types.Repository.GetNextViewForProject)
	},
}

var viewPrevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Switch to the previous view of the current project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cycleView(types.Repository.GetPrevViewForProject)
	},
}

// cycleView moves the current project one step around its view cycle:
// resolve the focused workspace's project, pick the neighboring view,
// commit it as active, and focus it.
func cycleView(step func(types.Repository, *types.Project) (*types.View, error)) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer repo.Close()
	host := newWindowHost()

	project, err := currentProject(repo, host)
	if err != nil {
		return err
	}

	neighbor, err := step(repo, project)
	if err != nil {
		return err
	}

	return focusView(repo, host, project, neighbor)
}

func init() {
	viewAddCmd.Flags().StringVar(&viewProjectFlag, "project", "", "project name (default: project of the focused workspace)")
	viewListCmd.Flags().StringVar(&viewProjectFlag, "project", "", "project name (default: project of the focused workspace)")

	viewCmd.AddCommand(viewAddCmd)
	viewCmd.AddCommand(viewListCmd)
	viewCmd.AddCommand(viewNextCmd)
	viewCmd.AddCommand(viewPrevCmd)
}
