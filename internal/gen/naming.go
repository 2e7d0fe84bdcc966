package gen

import (
	"strings"
	"unicode"
)

var goKeywords = map[string]string{
	"break": "break_", "case": "case_", "chan": "chan_", "const": "const_",
	"continue": "continue_", "default": "default_", "defer": "defer_",
	"else": "else_", "fallthrough": "fallthrough_", "for": "for_",
	"func": "func_", "go": "go_", "goto": "goto_", "if": "if_",
	"import": "import_", "interface": "interface_", "map": "map_",
	"package": "package_", "range": "range_", "return": "return_",
	"select": "select_", "struct": "struct_", "switch": "switch_",
	"type": "typ", "var": "var_",
}

// exportedName turns a Discovery identifier (`external_id`,
// `custom-event.filter`, `accountId`) into an exported Go identifier.
// Dots, dashes and underscores are treated as word breaks; the
// original camel casing of each word is preserved, matching the style
// of Discovery-generated clients (`accountId` becomes `AccountId`, not
// `AccountID`).
func exportedName(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return out
	}
	if unicode.IsDigit(rune(out[0])) {
		out = "X" + out
	}
	return out
}

// argName turns a Discovery parameter name into an unexported Go
// argument name, renaming Go keywords.
func argName(s string) string {
	name := exportedName(s)
	if name == "" {
		return name
	}
	name = strings.ToLower(name[:1]) + name[1:]
	if repl, ok := goKeywords[name]; ok {
		return repl
	}
	return name
}

// packageName derives a legal Go package name from an API name.
func packageName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// scopeConstName derives the Go constant name for an OAuth scope URL,
// e.g. https://www.googleapis.com/auth/cloud-platform.read-only
// becomes CloudPlatformReadOnlyScope.
func scopeConstName(url string) string {
	s := url
	if i := strings.LastIndex(s, "/auth/"); i >= 0 {
		s = s[i+len("/auth/"):]
	} else if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if s == "" {
		return "Scope"
	}
	var words []string
	for _, chunk := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	}) {
		words = append(words, strings.ToUpper(chunk[:1])+chunk[1:])
	}
	return strings.Join(words, "") + "Scope"
}

// wrapComment renders text as a Go comment block with the given
// prefix, wrapping near column 77 the way Discovery-generated files
// do.
func wrapComment(text, indent string) string {
	const width = 77
	var b strings.Builder
	line := indent + "//"
	for _, word := range strings.Fields(text) {
		if len(line)+1+len(word) > width && line != indent+"//" {
			b.WriteString(line)
			b.WriteByte('\n')
			line = indent + "//"
		}
		line += " " + word
	}
	if line != indent+"//" {
		b.WriteString(line)
	}
	return b.String()
}
