// Project commands: add, list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project with its default view",
	Long: `Add creates a new project together with its default view ("view")
and makes that view the project's active view. The name must not contain
the '#' separator used in workspace display names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		id, err := repo.AddProject(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("created project %q (id %d)\n", args[0], id)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in creation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		defer repo.Close()

		projects, err := repo.ListProjects()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(projects)
		}

		for _, project := range projects {
			active, err := repo.GetActiveViewForProject(project)
			if err != nil {
				return err
			}
			fmt.Printf("%d\t%s\t(active: %s)\n", project.ID, project.Name, active.Name)
		}
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
}
