package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/cli"
	"github.com/Veraticus/listwise/internal/inference"
	"github.com/Veraticus/listwise/internal/parser"
)

func parseCmd() *cobra.Command {
	var (
		currentList string
		shopping    bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Show what listwise recognizes in a line of text",
		Long: `Parse a line of free text and show the list, section, quantity and price
found in it, highlighted in place, plus the remaining title.

When the text names no list, the list type inferred from the text is shown too.`,
		Example: `  listwise parse "2 kg maçã @feira:frutas"
  listwise parse --shopping "leite 3x R$ 4,99"
  listwise parse --list compras ":limpeza detergente" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := joinArgs(args)
			if err != nil {
				return err
			}

			settings := loadSettings()
			p, err := newParser(settings)
			if err != nil {
				return err
			}

			parsed := p.Parse(text, parser.InputContext{CurrentListName: currentList, IsShoppingList: shopping})
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(parsed)
			}

			_, _ = fmt.Fprintln(out, cli.RenderHighlights(parsed, settings.HighlightColors))
			_, _ = fmt.Fprintln(out, cli.DescribeParsed(parsed))
			if parsed.ListName == nil {
				result := inference.NewService().Infer(text)
				_, _ = fmt.Fprintf(out, "%-9s %s (%s confidence)\n", "type:", result.ListType, result.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&currentList, "list", "l", "", "list the text is typed into (enables bare :Section)")
	cmd.Flags().BoolVarP(&shopping, "shopping", "s", false, "treat the current list as a shopping list (enables prices)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parse result as JSON")

	return cmd
}
