package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/cli"
	"github.com/Veraticus/listwise/internal/inference"
	"github.com/Veraticus/listwise/internal/parser"
	"github.com/Veraticus/listwise/internal/shopping"
	"github.com/Veraticus/listwise/internal/tui"
)

func liveCmd() *cobra.Command {
	var (
		listName string
		notes    bool
	)

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Type items with live highlighting",
		Long: `Open an input line that highlights the list, section, quantity and price as
you type. Every confirmed line is added to the list like "listwise add" would.

Keys: enter adds the line, ctrl+s toggles price recognition, ctrl+u clears the
line and esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := loadSettings()
			if listName == "" {
				listName = settings.DefaultList
			}

			p, err := newParser(settings)
			if err != nil {
				return err
			}
			factory, err := newItemFactory(settings)
			if err != nil {
				return err
			}

			db, cleanup, err := getDatabase(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer cleanup()

			onSubmit := func(parsed parser.ParsedInput) error {
				item, err := factory.ItemFromParsed(parsed, shopping.Defaults{ListName: listName})
				if err != nil {
					return err
				}
				return db.SaveItem(cmd.Context(), item)
			}

			final, err := tui.Run(cmd.Context(), tui.Config{
				Parser:    p,
				Inference: inference.NewService(),
				OnSubmit:  onSubmit,
				Context:   parser.InputContext{CurrentListName: listName, IsShoppingList: !notes},
				Colors:    settings.HighlightColors,
			})
			if err != nil {
				return err
			}

			added := len(final.Submitted())
			slog.Debug("Live session finished", "added", added, "list", listName)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %d items to %s", added, listName)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "list to add to (default: lists.default)")
	cmd.Flags().BoolVar(&notes, "no-prices", false, "start with price recognition off")

	return cmd
}
