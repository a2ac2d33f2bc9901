package scanner

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DeriveAlias generates an import alias from a script file name: strip the
// script extension, split on hyphen/underscore separators, capitalize each
// segment, concatenate, then append the suffix. The suffix disambiguates
// generated aliases against common short names (util.js -> UtilJS).
func DeriveAlias(path, suffix string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	var alias strings.Builder
	for _, segment := range strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		r, size := utf8.DecodeRuneInString(segment)
		alias.WriteRune(unicode.ToUpper(r))
		alias.WriteString(segment[size:])
	}
	alias.WriteString(suffix)
	return alias.String()
}
