package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/model"
)

func unitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit [token...]",
		Short: "Normalize unit names to their canonical codes",
		Long: `Look each token up in the unit dictionary of the configured locale and print
its canonical code. Unknown tokens are echoed back and marked as custom.`,
		Example: `  listwise unit quilos litro caixa
  listwise --locale en unit pounds dozen`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			dicts, err := settings.Dictionaries()
			if err != nil {
				return err
			}

			opts := model.UnitOptions{Locale: settings.Locale, Dictionaries: dicts}
			out := cmd.OutOrStdout()
			for _, token := range args {
				unit := model.ParseUnit(token, opts)
				if unit.IsCustom() {
					_, _ = fmt.Fprintf(out, "%s\t%s\t(custom)\n", token, unit)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\n", token, unit)
			}
			return nil
		},
	}

	return cmd
}
