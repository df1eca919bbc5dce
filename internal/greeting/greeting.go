package greeting

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Template         = "您好, %s! 欢迎使用MySimpleApp!"
	EmptyNameMessage = "请输入您的姓名"
)

var ErrEmptyName = errors.New("greeting: name is empty")

// Normalize trims leading and trailing runes at or below U+0020, which covers
// ASCII whitespace and C0 control characters. Other Unicode spaces such as
// U+3000 and U+00A0 are kept.
func Normalize(input string) string {
	return strings.TrimFunc(input, isTrimmed)
}

func isTrimmed(r rune) bool {
	return r <= ' '
}

// Compose returns the greeting for input, or ErrEmptyName if nothing is left after trimming.
func Compose(input string) (string, error) {
	name := Normalize(input)
	if name == "" {
		return "", ErrEmptyName
	}
	return fmt.Sprintf(Template, name), nil
}
