package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/cli"
	"github.com/Veraticus/listwise/internal/common"
	"github.com/Veraticus/listwise/internal/model"
	"github.com/Veraticus/listwise/internal/parser"
	"github.com/Veraticus/listwise/internal/shopping"
)

func addCmd() *cobra.Command {
	var (
		listName string
		section  string
		price    string
	)

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add an item to a shopping list from free text",
		Long: `Parse a line of free text and store it as a shopping item.

"@List:Section" picks the list and section, a leading amount such as "2 kg" sets
quantity and unit, and a price such as "R$ 8,50" is stored with the item. Any other
"@tag" left in the text becomes the item category.`,
		Example: `  listwise add "2 kg maçã @feira:frutas R$ 8,50"
  listwise add --list mercado "6 ovos @granja"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := joinArgs(args)
			if err != nil {
				return err
			}

			settings := loadSettings()
			if listName == "" {
				listName = settings.DefaultList
			}

			defaults := shopping.Defaults{ListName: listName, Section: section}
			if price != "" {
				m, err := model.MoneyFromMajor(price, settings.Currency)
				if err != nil {
					return common.NewUserError(fmt.Sprintf("%q is not a price", price), err)
				}
				defaults.Price = &m
			}

			p, err := newParser(settings)
			if err != nil {
				return err
			}
			factory, err := newItemFactory(settings)
			if err != nil {
				return err
			}

			parsed := p.Parse(text, parser.InputContext{CurrentListName: listName, IsShoppingList: true})
			item, err := factory.ItemFromParsed(parsed, defaults)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not read an item from %q", text), err)
			}

			db, cleanup, err := getDatabase(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.SaveItem(cmd.Context(), item); err != nil {
				return fmt.Errorf("failed to save item: %w", err)
			}

			slog.Info("Added item", "list", item.ListName, "name", item.Name)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(describeItem(item, settings.Locale)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "list to add to when the text names none (default: lists.default)")
	cmd.Flags().StringVar(&section, "section", "", "section to use when the text names none")
	cmd.Flags().StringVarP(&price, "price", "p", "", "unit price when the text carries none, e.g. 4,99")

	return cmd
}

// describeItem renders an item as "2 kg maçã → feira/frutas (R$ 8,50)".
func describeItem(item *model.ShoppingItem, locale string) string {
	s := fmt.Sprintf("%s %s %s → %s", item.Quantity, item.Unit, item.Name, item.ListName)
	if item.Section != "" {
		s += "/" + item.Section
	}
	if item.Price != nil {
		s += fmt.Sprintf(" (%s)", item.Price.Format(locale))
	}
	return s
}
