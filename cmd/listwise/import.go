package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/listwise/internal/cli"
	"github.com/Veraticus/listwise/internal/common"
	"github.com/Veraticus/listwise/internal/model"
	"github.com/Veraticus/listwise/internal/parser"
	"github.com/Veraticus/listwise/internal/shopping"
)

// importResult counts the outcome of an import run.
type importResult struct {
	Imported int
	Skipped  int
}

func importCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add one shopping item per line of a text file",
		Long: `Read a text file (or "-" for stdin) and add every non-empty line as a shopping
item, exactly as "listwise add" would. Lines starting with "#" are ignored and
lines that do not describe an item are skipped with a warning.`,
		Example: `  listwise import feira.txt
  pbpaste | listwise import --list mercado -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			if listName == "" {
				listName = settings.DefaultList
			}

			lines, err := readLines(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return common.NewUserError("the file has no items", common.ErrEmptyInput)
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

			bar := progressbar.NewOptions(len(lines),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing items...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)

			items := buildItems(p, factory, lines, listName)
			var result importResult
			result.Skipped = len(lines) - len(items)
			if err := bar.Add(result.Skipped); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}

			for _, item := range items {
				if err := cmd.Context().Err(); err != nil {
					return fmt.Errorf("import interrupted after %d items: %w", result.Imported, err)
				}
				if err := db.SaveItem(cmd.Context(), item); err != nil {
					return fmt.Errorf("failed to save %q: %w", item.RawText, err)
				}
				result.Imported++
				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			}

			msg := fmt.Sprintf("Imported %d items into %s", result.Imported, listName)
			if result.Skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", result.Skipped)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "list for lines that name none (default: lists.default)")

	return cmd
}

// readLines returns the non-empty, non-comment lines of path ("-" reads stdin).
func readLines(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // user-provided path is expected
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// buildItems parses every line, logging and dropping the ones that are not items.
func buildItems(p *parser.SmartInputParser, factory *shopping.Factory, lines []string, listName string) []*model.ShoppingItem {
	items := make([]*model.ShoppingItem, 0, len(lines))
	for i, line := range lines {
		parsed := p.Parse(line, parser.InputContext{CurrentListName: listName, IsShoppingList: true})
		item, err := factory.ItemFromParsed(parsed, shopping.Defaults{ListName: listName})
		if err != nil {
			slog.Warn("Skipping line", "line", i+1, "text", line, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items
}
