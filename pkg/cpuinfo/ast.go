package cpuinfo

import "strings"

// Document is the parse tree of a whole info file. Lines that start with a
// colon have no key and are skipped.
type Document struct {
	Lines []*Line `( @@ | Colon ( Text | Colon )* | Newline )*`
}

// Line is one "key : value" record. Lines without a colon have no value.
type Line struct {
	Key   string   `@Text`
	Value []string `( Colon @( Text | Colon )* )?`
}

// Name returns the key with surrounding whitespace removed.
func (l *Line) Name() string {
	return strings.TrimSpace(l.Key)
}

// Text returns the value with surrounding whitespace removed.
func (l *Line) Text() string {
	return strings.TrimSpace(strings.Join(l.Value, ""))
}
