package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/samber/lo"
	"golang.org/x/text/language"

	"github.com/rocketscienceinc/word-duel/internal/entity"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

//go:embed locales/*.toml
var locales embed.FS

// Data - template values of a message.
type Data = map[string]any

var loadBundle = sync.OnceValues(newBundle)

func newBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.AmericanEnglish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("could not list catalogs: %w", err)
	}

	for _, path := range paths {
		data, err := locales.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read catalog %s: %w", path, err)
		}

		if _, err = bundle.ParseMessageFileBytes(data, path); err != nil {
			return nil, fmt.Errorf("could not parse catalog %s: %w", path, err)
		}
	}

	return bundle, nil
}

// Translator - renders message ids in the selected language.
// An id missing from every catalog renders as the id itself.
type Translator struct {
	bundle    *goi18n.Bundle
	language  string
	localizer *goi18n.Localizer
}

// New - panics when the embedded catalogs cannot be parsed.
func New(language string) *Translator {
	bundle, err := loadBundle()
	if err != nil {
		panic(err)
	}

	translator := &Translator{bundle: bundle}
	if err = translator.SetLanguage(language); err != nil {
		_ = translator.SetLanguage(entity.LanguageEnglish)
	}

	return translator
}

func (that *Translator) SetLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil || !lo.Contains(that.bundle.LanguageTags(), tag) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	that.language = lang
	that.localizer = goi18n.NewLocalizer(that.bundle, lang, entity.LanguageEnglish)

	return nil
}

func (that *Translator) Language() string {
	return that.language
}

func (that *Translator) Text(id string) string {
	return that.localize(&goi18n.LocalizeConfig{MessageID: id})
}

func (that *Translator) Format(id string, data Data) string {
	return that.localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Plural - picks the plural form for count, available to the message as .Count.
func (that *Translator) Plural(id string, count int) string {
	return that.localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: Data{"Count": count},
	})
}

func (that *Translator) localize(config *goi18n.LocalizeConfig) string {
	text, err := that.localizer.Localize(config)
	if err != nil {
		return config.MessageID
	}

	return text
}
