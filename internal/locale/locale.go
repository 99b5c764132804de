package locale

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const Default = "en"

//go:embed strings.yaml
var stringsYAML []byte

// Supported lists the UI locales in preference order. The first entry is
// the fallback.
var Supported = []string{"en", "hi", "bn"}

var (
	table   map[string]map[string]string
	matcher = language.NewMatcher([]language.Tag{language.English, language.Hindi, language.Bengali})
)

func init() {
	t, err := parseTable(stringsYAML)
	if err != nil {
		panic(fmt.Sprintf("locale: %v", err))
	}
	table = t
}

func parseTable(b []byte) (map[string]map[string]string, error) {
	var t map[string]map[string]string
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	for _, code := range Supported {
		if len(t[code]) == 0 {
			return nil, fmt.Errorf("missing strings for %q", code)
		}
	}
	return t, nil
}

// Resolve maps a language tag or an Accept-Language header value to one of
// the supported locales. Unknown or malformed input yields Default.
func Resolve(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Strings returns a copy of the UI table for code, which must be a
// supported locale.
func Strings(code string) (map[string]string, bool) {
	src, ok := table[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out, true
}

// Text returns one UI string, falling back to the default locale and then
// to the key itself.
func Text(code, key string) string {
	if v, ok := table[code][key]; ok && v != "" {
		return v
	}
	if v, ok := table[Default][key]; ok {
		return v
	}
	return key
}
