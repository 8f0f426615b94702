package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/listwise/internal/dictionary"
)

// Defaults applied when neither the config file nor LISTWISE_* env vars set a key.
const (
	DefaultLocale       = "pt-BR"
	DefaultCurrency     = "BRL"
	DefaultDatabasePath = "$HOME/.local/share/listwise/listwise.db"
	DefaultListName     = "compras"
)

// Settings is a snapshot of the runtime configuration.
type Settings struct {
	Locale          string
	Currency        string
	DatabasePath    string
	DefaultList     string
	DictionaryFile  string
	LogLevel        string
	LogFormat       string
	HighlightColors bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("currency", DefaultCurrency)
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("lists.default", DefaultListName)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("display.colors", true)
}

// Load reads the settings from v, expanding paths.
// It follows this precedence:
// 1. Viper configuration (from config file or LISTWISE_ env vars)
// 2. LANG for the locale, when nothing else sets it
// 3. Default values
func Load(v *viper.Viper) Settings {
	s := Settings{
		Locale:          v.GetString("locale"),
		Currency:        strings.ToUpper(v.GetString("currency")),
		DatabasePath:    ExpandPath(v.GetString("database.path")),
		DefaultList:     v.GetString("lists.default"),
		DictionaryFile:  ExpandPath(v.GetString("dictionaries.file")),
		LogLevel:        v.GetString("logging.level"),
		LogFormat:       v.GetString("logging.format"),
		HighlightColors: v.GetBool("display.colors"),
	}

	if s.Locale == "" {
		if lang := localeFromEnv(os.Getenv("LANG")); lang != "" {
			s.Locale = lang
		} else {
			s.Locale = DefaultLocale
		}
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	if s.DatabasePath == "" {
		s.DatabasePath = ExpandPath(DefaultDatabasePath)
	}
	if s.DefaultList == "" {
		s.DefaultList = DefaultListName
	}
	return s
}

// Dictionaries returns the unit dictionaries to use: the process-wide ones,
// with DictionaryFile layered on top when configured.
func (s Settings) Dictionaries() (dictionary.Map, error) {
	if s.DictionaryFile == "" {
		return nil, nil
	}
	override, err := dictionary.LoadFile(s.DictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionaries: %w", err)
	}
	return dictionary.Merge(dictionary.Default(), override), nil
}

// localeFromEnv turns a POSIX locale such as "pt_BR.UTF-8" into "pt-BR".
func localeFromEnv(lang string) string {
	lang, _, _ = strings.Cut(lang, ".")
	if lang == "" || lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
