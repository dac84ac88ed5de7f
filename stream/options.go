package stream

const (
	// DefaultIndent is the indentation unit used in pretty mode.
	DefaultIndent = "  "
	// DefaultMaxDepth bounds the nesting depth of a document.
	DefaultMaxDepth = 256
)

// Transform rewrites names and string or number payloads just before
// they are written, for example to escape them. It must not change
// the structure of the output.
type Transform func(string) string

// Option configures a Writer.
type Option func(*options)

type options struct {
	pretty    bool
	indent    string
	transform Transform
	maxDepth  int
	colors    *Colors
}

func newOptions(opts []Option) *options {
	o := &options{
		indent:   DefaultIndent,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPretty puts each token on its own line, indented by nesting depth.
func WithPretty(pretty bool) Option {
	return func(o *options) {
		o.pretty = pretty
	}
}

// WithIndent sets the indentation unit for pretty mode.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithTransform installs a content transform. A nil Transform is the
// identity.
func WithTransform(t Transform) Option {
	return func(o *options) {
		o.transform = t
	}
}

// WithMaxDepth bounds the nesting depth. Values below 1 select
// DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// WithColors colors tokens as they are written.
func WithColors(c *Colors) Option {
	return func(o *options) {
		o.colors = c
	}
}
