package translator

import (
	"embed"
	"fmt"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

//go:embed translation/*.toml
var builtin embed.FS

type Config struct {
	// TranslationFolder overrides the built-in messages when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageEn = "en"
	LanguageRu = "ru"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if cfg.TranslationFolder == "" {
		loadBuiltin(cfg.SupportedLanguages)
		return
	}

	// List files in the translation folder
	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		loadBuiltin(cfg.SupportedLanguages)
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		if _, err := Translator.LoadMessageFile(filepath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

func loadBuiltin(languages []string) {
	if len(languages) == 0 {
		languages = []string{LanguageEn, LanguageRu}
	}
	for _, lang := range languages {
		name := path.Join("translation", lang+".toml")
		if _, err := Translator.LoadMessageFileFS(builtin, name); err != nil {
			zap.L().Warn("failed to load built-in translation", zap.String("lang", lang), zap.Error(err))
		}
	}
}

// Localize renders a message with template data, falling back to the key.
func Localize(lang, msgKey string, data map[string]any) string {
	if Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey, TemplateData: data})
	if err != nil {
		return msgKey
	}
	return msg
}
