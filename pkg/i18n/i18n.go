// Package i18n localizes client-facing messages. Message keys are the error
// codes from pkg/errors; Brazilian Portuguese is the default catalog.
package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var (
	PortugueseBR = language.MustParse("pt-BR")

	supportedTags = []language.Tag{
		PortugueseBR,
		language.English,
	}
	tagMatcher = language.NewMatcher(supportedTags)
)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Match maps arbitrary tags onto the closest supported tag
func Match(tags ...language.Tag) language.Tag {
	// The index form avoids the -u-rg extensions Match adds to the returned tag
	_, idx, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return supportedTags[0]
	}
	return supportedTags[idx]
}

// Parse resolves a single language value such as "en" or "pt-BR"
func Parse(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supportedTags[idx], true
}

// Localizer picks a language per request and renders messages in it
type Localizer struct {
	fallback language.Tag
}

func NewLocalizer(defaultLanguage string) *Localizer {
	fallback, ok := Parse(defaultLanguage)
	if !ok {
		fallback = PortugueseBR
	}
	return &Localizer{fallback: fallback}
}

// ResolveTag determines the best language tag for the request: the lang query
// parameter wins over Accept-Language.
func (l *Localizer) ResolveTag(c *gin.Context) language.Tag {
	if c == nil || c.Request == nil {
		return l.fallback
	}

	if tag, ok := Parse(c.Query(LangParam)); ok {
		return tag
	}

	if accept := strings.TrimSpace(c.GetHeader("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[idx]
			}
		}
	}

	return l.fallback
}

// Text renders key in tag, falling back to the key itself as format
func Text(tag language.Tag, key string, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}

// Localize renders key for the request's language
func (l *Localizer) Localize(c *gin.Context, key string, args ...any) string {
	return Text(l.ResolveTag(c), key, args...)
}
