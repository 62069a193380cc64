package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// categoriesCmd prints the persisted categories.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the persisted layout categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tTITLE\tEMOJI")
		for _, c := range rt.service.Categories(ctx) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Slug, c.Title, c.Emoji)
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(categoriesCmd)
}
