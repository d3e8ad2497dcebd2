package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for issue message keys.
// Keys are an issue code optionally refined by dotted subtypes, for example
// "too_small.string.exact". data provides values for {name} placeholders
// (for example "minimum" or "expected").
type Translator interface {
	Message(key string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct {
	lang string
	dict map[string]string
}

func (t dictTranslator) Message(key string, data map[string]string) string {
	for k := key; k != ""; {
		if msg, ok := t.dict[k]; ok {
			return Expand(msg, data)
		}
		i := strings.LastIndexByte(k, '.')
		if i < 0 {
			break
		}
		k = k[:i]
	}
	return key
}

// Expand replaces {name} placeholders in tmpl with data values. Unknown
// placeholders are left as they are.
func Expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	b := &strings.Builder{}
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			break
		}
		name := tmpl[open+1 : open+end]
		b.WriteString(tmpl[:open])
		if v, ok := data[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(tmpl[open : open+end+1])
		}
		tmpl = tmpl[open+end+1:]
	}
	b.WriteString(tmpl)
	return b.String()
}

var (
	supported = []language.Tag{language.English, language.Indonesian, language.Japanese}
	matcher   = language.NewMatcher(supported)
	dicts     = map[language.Tag]map[string]string{
		language.English:    en,
		language.Indonesian: id,
		language.Japanese:   ja,
	}
)

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en", dict: en}
)

// SetLanguage switches the built-in Translator to the closest supported
// language ("en", "id", "ja") for a BCP 47 tag such as "id-ID" or "ja".
// Unknown or unparsable tags select English.
func SetLanguage(lang string) {
	tag := language.English
	if t, err := language.Parse(lang); err == nil {
		if _, idx, conf := matcher.Match(t); conf != language.No {
			tag = supported[idx]
		}
	}
	base, _ := tag.Base()
	mu.Lock()
	currentTranslator = dictTranslator{lang: base.String(), dict: dicts[tag]}
	mu.Unlock()
}

// Languages lists the languages with a built-in dictionary.
func Languages() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en", dict: en}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given key using the current Translator.
func T(key string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(key, data)
}
