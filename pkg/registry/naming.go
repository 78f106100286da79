package registry

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MethodName converts "vkCreateInstance" to "CreateInstance".
func MethodName(prefix, name string) string {
	return firstUpper(strings.TrimPrefix(name, prefix))
}

// FieldName converts "vkCreateInstance" to "createInstance".
func FieldName(prefix, name string) string {
	return firstLower(strings.TrimPrefix(name, prefix))
}

// ParamName makes a parameter name usable as a Go identifier.
func ParamName(name string) string {
	name = firstLower(name)
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

func firstUpper(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func firstLower(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
