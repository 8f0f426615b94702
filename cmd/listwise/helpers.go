package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/listwise/internal/common"
	"github.com/Veraticus/listwise/internal/config"
	"github.com/Veraticus/listwise/internal/parser"
	"github.com/Veraticus/listwise/internal/shopping"
	"github.com/Veraticus/listwise/internal/storage"
)

// loadSettings snapshots the viper configuration.
func loadSettings() config.Settings {
	return config.Load(viper.GetViper())
}

// newParser builds a SmartInputParser from the configured locale and dictionaries.
func newParser(settings config.Settings) (*parser.SmartInputParser, error) {
	dicts, err := settings.Dictionaries()
	if err != nil {
		return nil, common.NewUserError("could not load the unit dictionary file", err)
	}
	return parser.New(parser.Options{Locale: settings.Locale, Dictionaries: dicts}), nil
}

// newItemFactory builds a shopping item factory from the configured locale and dictionaries.
func newItemFactory(settings config.Settings) (*shopping.Factory, error) {
	dicts, err := settings.Dictionaries()
	if err != nil {
		return nil, common.NewUserError("could not load the unit dictionary file", err)
	}
	return shopping.NewFactory(shopping.Options{Locale: settings.Locale, Dictionaries: dicts}), nil
}

// getDatabase opens and migrates the configured database.
func getDatabase(ctx context.Context, settings config.Settings) (*storage.SQLiteStorage, func(), error) {
	db, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	common.LogDebug("Opened database", common.Fields{"path": settings.DatabasePath})

	cleanup := func() {
		if err := db.Close(); err != nil {
			common.LogError(err, "Failed to close database", common.Fields{"path": settings.DatabasePath})
		}
	}

	return db, cleanup, nil
}

// joinArgs turns the positional arguments into one line of input.
func joinArgs(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", common.NewUserError("nothing to parse", common.ErrEmptyInput)
	}
	return text, nil
}
