package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 4).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Newlines toggles multi-line output (default true). Single-line
// output drops comments.
func Newlines(v bool) EncodeOption {
	return func(es *EncState) { es.newlines = v }
}

// TrailingCommas appends a comma after the last entry of every
// container (default false).
func TrailingCommas(v bool) EncodeOption {
	return func(es *EncState) { es.trailingCommas = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
