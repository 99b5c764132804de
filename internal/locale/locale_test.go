package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"hi", "hi"},
		{"hi-IN", "hi"},
		{"bn", "bn"},
		{"bn-BD,en;q=0.8", "bn"},
		{"fr-FR,hi;q=0.5", "hi"},
		{"de", "en"},
		{"!!not a tag", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in))
		})
	}
}

func TestStrings_EveryLocaleHasEveryKey(t *testing.T) {
	en, ok := Strings("en")
	require.True(t, ok)
	for _, code := range Supported {
		s, ok := Strings(code)
		require.True(t, ok, code)
		for k := range en {
			assert.NotEmpty(t, s[k], "%s missing %s", code, k)
		}
	}
}

func TestStrings_ReturnsCopy(t *testing.T) {
	s, _ := Strings("en")
	s["login"] = "changed"
	assert.Equal(t, "Login", Text("en", "login"))
}

func TestText_Fallback(t *testing.T) {
	assert.Equal(t, "लॉग इन करें", Text("hi", "login"))
	assert.Equal(t, "Login", Text("xx", "login"))
	assert.Equal(t, "no_such_key", Text("hi", "no_such_key"))

	_, ok := Strings("fr")
	assert.False(t, ok)
}

func TestParseTable_RejectsMissingLocale(t *testing.T) {
	_, err := parseTable([]byte("en:\n  a: b\n"))
	assert.Error(t, err)
}
