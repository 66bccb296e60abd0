package cmd

import (
	"fmt"
	"strings"

	"github.com/socralabs/socra/internal/topic"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Browse the topic catalog",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := topic.Catalog()

		// Header.
		fmt.Printf("%-16s  %-20s  %8s  %s\n",
			"ID", "Name", "Concepts", "Description")
		fmt.Println(strings.Repeat("─", 100))

		for _, t := range catalog {
			_, concepts, err := topic.Lookup(t.ID)
			if err != nil {
				return err
			}
			desc := t.Description
			if len(desc) > 48 {
				desc = desc[:45] + "..."
			}
			fmt.Printf("%-16s  %-20s  %8d  %s\n",
				t.ID, t.Name, len(concepts), desc)
		}

		fmt.Printf("\n%d topics\n", len(catalog))
		return nil
	},
}

var topicsShowCmd = &cobra.Command{
	Use:   "show <topic-id>",
	Short: "Show a topic's concepts and their prerequisites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, concepts, err := topic.Lookup(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n\n", t.Name, t.Description)

		fmt.Printf("%-18s  %-22s  %-28s  %s\n",
			"ID", "Name", "Builds on", "Touches")
		fmt.Println(strings.Repeat("─", 100))

		for _, c := range concepts {
			builds := "—"
			if len(c.Prerequisites) > 0 {
				builds = strings.Join(c.Prerequisites, ", ")
			}
			fmt.Printf("%-18s  %-22s  %-28s  %s\n",
				c.ID, c.Name, builds, strings.Join(c.Keywords, ", "))
		}

		fmt.Printf("\n%d concepts\n", len(concepts))
		return nil
	},
}

func init() {
	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsShowCmd)
}
