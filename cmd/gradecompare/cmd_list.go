package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"gradecompare/internal/files"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List gradebook exports by course",
		Long: `List the SHEN-<course>_grades exports in a directory (default the current
one), grouped by course code, oldest file first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			found, err := files.NewDiscovery(".").FindGradebooks(dir)
			if err != nil {
				return err
			}
			a.logger.Debug("Gradebook exports discovered",
				"directory", dir,
				"count", len(found))

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintf(out, "No gradebook exports found in %s\n", dir)
				return nil
			}

			groups := files.GroupByCourse(found)
			courses := make([]string, 0, len(groups))
			for c := range groups {
				courses = append(courses, c)
			}
			sort.Strings(courses)

			for _, c := range courses {
				fmt.Fprintf(out, "%s\n", c)
				for _, f := range groups[c] {
					fmt.Fprintf(out, "  %s\n", f.Name)
				}
			}
			return nil
		},
	}
}
