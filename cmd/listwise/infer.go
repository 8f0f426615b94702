package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/inference"
	"github.com/Veraticus/listwise/internal/model"
)

func inferCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "infer [text...]",
		Short: "Guess which kind of list a text belongs to",
		Long: `Score the text against the keyword rules of every list type and print the
winning type with its confidence.`,
		Example: `  listwise infer "comprar 2 kg de arroz"
  listwise infer --verbose "assistir filme na netflix"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := joinArgs(args)
			if err != nil {
				return err
			}

			svc := inference.NewService()
			result := svc.Infer(text)
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "%s (%s confidence)\n", result.ListType, result.Confidence)
			if verbose {
				for _, lt := range model.ListTypePriority {
					_, _ = fmt.Fprintf(out, "  %-9s %d\n", lt, result.Scores[lt])
				}
				if matched := svc.Matches(text); len(matched) > 0 {
					_, _ = fmt.Fprintf(out, "  matched: %s\n", strings.Join(matched, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show per-type scores and matched rules")

	return cmd
}
