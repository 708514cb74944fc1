package i18n

import "testing"

func TestNewLocalization_DefaultsToChinese(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != LangChinese {
		t.Errorf("Expected default language %s, got %s", LangChinese, l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyCompleted); got != "完成！MP3已保存。" {
		t.Errorf("Unexpected completed text: %s", got)
	}
}

func TestSetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{LangEnglish, LangEnglish},
		{LangSystem, LangChinese},
		{"xx", LangChinese}, // unknown is ignored
	}

	for _, tt := range tests {
		l := NewLocalization()
		l.SetLanguage(tt.lang)
		if got := l.GetCurrentLanguage(); got != tt.expected {
			t.Errorf("SetLanguage(%s): expected %s, got %s", tt.lang, tt.expected, got)
		}
	}
}

func TestGetText_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.texts[LangChinese] = map[string]string{}

	if got := l.GetText(KeyDownload); got != "Download & extract MP3" {
		t.Errorf("Expected English fallback, got %s", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestFormat(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage(LangEnglish)

	if got := l.Format(KeyRenamedTo, "/music/a.mp3"); got != "File renamed to: /music/a.mp3" {
		t.Errorf("Unexpected formatted text: %s", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	l := NewLocalization()
	zh := l.texts[LangChinese]
	en := l.texts[LangEnglish]

	for key := range zh {
		if _, ok := en[key]; !ok {
			t.Errorf("Key %s missing from English catalog", key)
		}
	}
	for key := range en {
		if _, ok := zh[key]; !ok {
			t.Errorf("Key %s missing from Chinese catalog", key)
		}
	}
}

func TestGetAvailableLanguages(t *testing.T) {
	l := NewLocalization()
	options := l.GetAvailableLanguages()

	for _, lang := range []string{LangChinese, LangEnglish} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
}
