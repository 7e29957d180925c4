// Package i18n loads the two static locale dictionaries at startup and
// resolves keys with fallback: unknown language or key returns the key itself.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const DefaultLanguage = "ar"

var supportedLanguages = []string{"ar", "en"}

type Store struct {
	translations map[string]map[string]string
}

// Load reads <dir>/<lang>.json for every supported language. A missing or
// malformed file fails startup; translations are never reloaded afterwards.
func Load(dir string) (*Store, error) {
	s := &Store{translations: make(map[string]map[string]string)}
	for _, lang := range supportedLanguages {
		raw, err := os.ReadFile(filepath.Join(dir, lang+".json"))
		if err != nil {
			return nil, fmt.Errorf("load %s locale: %w", lang, err)
		}
		dict := make(map[string]string)
		if err := json.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("parse %s locale: %w", lang, err)
		}
		s.translations[lang] = dict
	}
	return s, nil
}

// T looks up key in the given language, falling back to the key itself.
func (s *Store) T(lang, key string) string {
	dict, ok := s.translations[lang]
	if !ok {
		return key
	}
	if v, ok := dict[key]; ok {
		return v
	}
	return key
}

// Lang picks the request language from ?lang=, then Accept-Language, then the
// default.
func Lang(c *gin.Context) string {
	if lang := c.Query("lang"); isSupported(lang) {
		return lang
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if i := strings.Index(tag, "-"); i > 0 {
			tag = tag[:i]
		}
		if isSupported(tag) {
			return tag
		}
	}
	return DefaultLanguage
}

func isSupported(lang string) bool {
	for _, l := range supportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
