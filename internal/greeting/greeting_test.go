package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Alice", "您好, Alice! 欢迎使用MySimpleApp!"},
		{"padded", "  Bob\t", "您好, Bob! 欢迎使用MySimpleApp!"},
		{"inner spaces kept", " Mary Jane ", "您好, Mary Jane! 欢迎使用MySimpleApp!"},
		{"chinese", " 张三\n", "您好, 张三! 欢迎使用MySimpleApp!"},
		{"control chars trimmed", "\x01Bob\x1f", "您好, Bob! 欢迎使用MySimpleApp!"},
		{"full-width space kept", "\u3000", "您好, \u3000! 欢迎使用MySimpleApp!"},
		{"no-break space kept", "\u00a0张三\u00a0", "您好, \u00a0张三\u00a0! 欢迎使用MySimpleApp!"},
		{"percent is literal", "100%", "您好, 100%! 欢迎使用MySimpleApp!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "  ", "\t\n", "\x00", "\x00 \x1f\r"} {
		got, err := Compose(input)
		assert.ErrorIs(t, err, ErrEmptyName, "input %q", input)
		assert.Empty(t, got)
	}
}

func TestComposeIdempotent(t *testing.T) {
	first, err := Compose(" Alice ")
	require.NoError(t, err)
	second, err := Compose(" Alice ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
