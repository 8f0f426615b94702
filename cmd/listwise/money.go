package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/common"
	"github.com/Veraticus/listwise/internal/model"
)

func moneyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "Format and add monetary amounts",
	}

	cmd.PersistentFlags().StringP("currency", "c", "", "ISO 4217 currency code (default: configured currency)")

	cmd.AddCommand(moneyFormatCmd())
	cmd.AddCommand(moneyAddCmd())

	return cmd
}

func moneyFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "format <amount>",
		Short:   "Render an amount for the configured locale",
		Example: `  listwise money format 1234,5
  listwise --locale en-US money format --currency USD 1234.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			code := currencyFlag(cmd, settings.Currency)

			m, err := model.MoneyFromMajor(args[0], code)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("%q is not an amount", args[0]), err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), m.Format(settings.Locale))
			return nil
		},
	}
}

func moneyAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <amount> <amount>...",
		Short:   "Sum amounts exactly in minor units",
		Example: `  listwise money add 0,10 0,20 1.000,00`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			code := currencyFlag(cmd, settings.Currency)

			total := model.MoneyFromMinor(0, code)
			for _, arg := range args {
				m, err := model.MoneyFromMajor(arg, code)
				if err != nil {
					return common.NewUserError(fmt.Sprintf("%q is not an amount", arg), err)
				}
				if total, err = total.Add(m); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), total.Format(settings.Locale))
			return nil
		},
	}
}

func currencyFlag(cmd *cobra.Command, fallback string) string {
	code, _ := cmd.Flags().GetString("currency")
	if code == "" {
		return fallback
	}
	return code
}
