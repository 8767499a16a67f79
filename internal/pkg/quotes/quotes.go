// Package quotes wraps generated text into TypeScript string literals.
package quotes

import "strings"

const (
	backtick    = "`"
	singleQuote = "'"
)

var templateLiteralEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", "\\${",
)

// EscapeTemplateLiteral escapes str so it can be placed between backticks
// without terminating the literal or starting an interpolation.
func EscapeTemplateLiteral(str string) string {
	return templateLiteralEscaper.Replace(str)
}

// WrapTemplateLiteral returns str escaped and wrapped in backticks.
func WrapTemplateLiteral(str string) string {
	return backtick + EscapeTemplateLiteral(str) + backtick
}

// Placeholder returns the interpolation of identifier inside a template literal.
func Placeholder(identifier string) string {
	return "${" + identifier + "}"
}

// WrapSingle wraps a module path in single quotes.
func WrapSingle(str string) string {
	return singleQuote + strings.ReplaceAll(str, singleQuote, `\'`) + singleQuote
}
