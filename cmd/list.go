package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apiary-go/googleapis/internal/discovery"
)

var (
	listName      string
	listPreferred bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List APIs available from the Discovery service",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&listName, "name", "", "only include APIs with the given name")
	cmd.Flags().BoolVar(&listPreferred, "preferred", false, "only include the preferred version of each API")

	rootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir, err := discovery.NewClient().List(context.Background(), listName, listPreferred)
	if err != nil {
		return err
	}
	for _, item := range dir.Items {
		fmt.Printf("%-40s %s\n", item.ID, item.Title)
	}
	return nil
}
