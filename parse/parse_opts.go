package parse

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// ParseComments controls whether leading comments are attached to
// values. It defaults to true; without it round-tripping drops
// comments.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}
