package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/cli"
)

func itemsCmd() *cobra.Command {
	var (
		listName string
		showAll  bool
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Show the items of a list and its total",
		Example: `  listwise items
  listwise items --list feira
  listwise items --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := loadSettings()
			out := cmd.OutOrStdout()

			db, cleanup, err := getDatabase(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer cleanup()

			if showAll {
				lists, err := db.GetLists(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to get lists: %w", err)
				}
				if len(lists) == 0 {
					_, _ = fmt.Fprintln(out, cli.FormatWarning("No lists yet. Add an item with 'listwise add'."))
					return nil
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "LIST\tTYPE\tITEMS")
				for _, l := range lists {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", l.Name, l.Type, l.ItemCount)
				}
				return w.Flush()
			}

			if listName == "" {
				listName = settings.DefaultList
			}
			items, err := db.GetItems(cmd.Context(), listName)
			if err != nil {
				return fmt.Errorf("failed to get items: %w", err)
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("List %q is empty.", listName)))
				return nil
			}

			_, _ = fmt.Fprintln(out, cli.FormatTitle(listName))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "\tQTY\tUNIT\tITEM\tSECTION\tCATEGORY\tPRICE")
			for _, item := range items {
				check := "[ ]"
				if item.Checked {
					check = "[x]"
				}
				price := ""
				if item.Price != nil {
					price = item.Price.Format(settings.Locale)
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					check, item.Quantity, item.Unit, item.Name, item.Section, item.Category, price)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			total, err := db.ListTotal(cmd.Context(), listName, settings.Currency)
			if err != nil {
				_, _ = fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("No total: %v", err)))
				return nil
			}
			if !total.IsZero() {
				_, _ = fmt.Fprintln(out, cli.RenderBox("Total", total.Format(settings.Locale)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "list to show (default: lists.default)")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "show every list with its item count instead")

	return cmd
}
