package validator

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when a requested language has no message table.
const DefaultLanguage = "en"

//go:embed messages.yaml
var messagesYAML []byte

var (
	messagesOnce sync.Once
	messageTable map[string]map[string]string
	messagesErr  error

	placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)
)

func loadMessages() (map[string]map[string]string, error) {
	messagesOnce.Do(func() {
		messageTable, messagesErr = parseMessages(messagesYAML)
	})
	return messageTable, messagesErr
}

// parseMessages reads a document keyed by language, then by translation key.
func parseMessages(content []byte) (map[string]map[string]string, error) {
	var data map[string]map[string]string
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrInvalidMessages, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no languages defined: %w", ErrInvalidMessages)
	}
	return data, nil
}

// Languages returns the languages with a message table.
func Languages() []string {
	table, err := loadMessages()
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(table))
	for lang := range table {
		langs = append(langs, lang)
	}
	return langs
}

// Messages returns a copy of the message table for lang, falling back to
// DefaultLanguage for unknown languages.
func Messages(lang string) map[string]string {
	table, err := loadMessages()
	if err != nil {
		return map[string]string{}
	}
	msgs, ok := table[lang]
	if !ok {
		msgs = table[DefaultLanguage]
	}
	return maps.Clone(msgs)
}

// Translate returns a copy of errs whose messages are rendered from the
// table for lang. Errors without a known translation key keep their message.
func Translate(errs ValidationErrors, lang string) ValidationErrors {
	if errs == nil {
		return nil
	}
	msgs := Messages(lang)
	out := make(ValidationErrors, len(errs))
	for i, e := range errs {
		out[i] = e
		if tmpl, ok := msgs[e.TranslationKey]; ok {
			out[i].Message = render(tmpl, e.TranslationValues)
		}
	}
	return out
}

// render substitutes %{name} placeholders; unknown placeholders are kept.
func render(tmpl string, values map[string]any) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
