package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("custom", nil); msg != "Invalid input" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("custom", nil); msg == "Invalid input" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_IndonesianRegionTag(t *testing.T) {
	SetLanguage("id-ID")
	defer SetLanguage("en")
	if msg := T("invalid_string.email", nil); msg != "Email tidak valid" {
		t.Fatalf("got %q", msg)
	}
}

func TestTranslator_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	SetLanguage("xx-not-a-tag!")
	defer SetLanguage("en")
	if msg := T("invalid_type.required", nil); msg != "Required" {
		t.Fatalf("got %q", msg)
	}
}

func TestTranslator_Placeholders(t *testing.T) {
	msg := T("too_small.string", map[string]string{"minimum": "3"})
	if msg != "String must contain at least 3 character(s)" {
		t.Fatalf("got %q", msg)
	}
	// unresolved placeholders survive
	if got := Expand("min {minimum} of {what}", map[string]string{"minimum": "1"}); got != "min 1 of {what}" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslator_KeyFallback(t *testing.T) {
	// subtype without its own entry falls back to the code
	if msg := T("invalid_string.cuid", nil); msg != "Invalid string" {
		t.Fatalf("got %q", msg)
	}
	// unknown code falls back to the key itself
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("got %q", msg)
	}
}

type upper struct{}

func (upper) Message(key string, _ map[string]string) string { return "X:" + key }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("custom", nil); msg != "X:custom" {
		t.Fatalf("got %q", msg)
	}
}
