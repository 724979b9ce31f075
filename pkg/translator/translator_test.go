package translator_test

import (
	"testing"
	"testing/fstest"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/n-smith-public/cs4241e25-final-project/pkg/translator"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	files := fstest.MapFS{
		"i18n/en.toml": {Data: []byte(`hello = "Hello english"`)},
		"i18n/fr.toml": {Data: []byte(`hello = "Bonjour"`)},
	}

	translator.InitTranslator(translator.Config{
		Files:              files,
		TranslationFolder:  "i18n",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageFr)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Bonjour", msg)
}

func TestInitTranslator_Embedded(t *testing.T) {
	translator.InitTranslator(translator.Config{})

	require.Equal(t, "Unauthorized", translator.Localize("unauthorized", translator.LanguageEn))
	require.Equal(t, "Non autorisé", translator.Localize("unauthorized", translator.LanguageFr))
	require.Equal(t, "Unauthorized", translator.Localize("unauthorized", "de"))
	require.Equal(t, "noSuchKey", translator.Localize("noSuchKey", translator.LanguageEn))
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{TranslationFolder: "does/not/exist"})
	require.NotNil(t, translator.Translator)
}

func TestMatch(t *testing.T) {
	require.Equal(t, translator.LanguageFr, translator.Match("fr-CA,fr;q=0.9,en;q=0.5"))
	require.Equal(t, translator.LanguageEn, translator.Match("en-US"))
	require.Equal(t, translator.LanguageEn, translator.Match("de-DE"))
	require.Equal(t, translator.LanguageEn, translator.Match(""))
}
