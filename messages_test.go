package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolver_EveryCodeHasABaseMessage(t *testing.T) {
	res := NewResolver()
	codes := []Code{
		CodeUsernameNull, CodeUsernameSize,
		CodeEmailNull, CodeEmailInvalid, CodeEmailInUse,
		CodePasswordNull, CodePasswordSize, CodePasswordPattern,
		CodeUserCreateSuccess, CodeEmailFailure,
	}

	for _, code := range codes {
		assert.NotEmpty(t, res.Resolve(code, language.English), string(code))
		assert.NotEmpty(t, res.Resolve(code, language.French), string(code))
	}
}

func TestResolver_LocalesDiffer(t *testing.T) {
	res := NewResolver()

	en := res.Resolve(CodeEmailInUse, language.English)
	fr := res.Resolve(CodeEmailInUse, language.French)

	assert.Equal(t, "Email in use", en)
	assert.NotEqual(t, en, fr)
}

func TestResolver_UnknownLocaleFallsBackToBase(t *testing.T) {
	res := NewResolver()

	assert.Equal(t, "user created", res.Resolve(CodeUserCreateSuccess, language.German))
	assert.Equal(t, "Email failure", res.Resolve(CodeEmailFailure, language.Japanese))
}

func TestNegotiateLocale(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"fr", language.French},
		{"fr-CA", language.French},
		{"fr;q=0.9, en;q=0.8", language.French},
		{"de", language.English},
		{"not a language header;;;", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, NegotiateLocale(tt.header))
		})
	}
}
