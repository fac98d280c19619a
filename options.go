package fontstash

// Option configures a Stash during creation.
type Option func(*stashConfig)

// stashConfig holds configuration applied by New.
type stashConfig struct {
	zero       ZeroPosition
	parserName string
	renderer   Renderer
	maxStates  int
}

// defaultStashConfig returns the default Stash configuration.
func defaultStashConfig() stashConfig {
	return stashConfig{
		zero:       ZeroTopLeft,
		parserName: defaultParserName,
		maxStates:  defaultMaxStates,
	}
}

// defaultMaxStates is the default capacity of the state stack.
const defaultMaxStates = 20

// WithZeroPosition selects the quad coordinate convention.
// The default is [ZeroTopLeft].
func WithZeroPosition(z ZeroPosition) Option {
	return func(c *stashConfig) {
		c.zero = z
	}
}

// WithParser specifies the font parser backend used for fonts added to
// this Stash. The default is "ximage" (golang.org/x/image/font/sfnt);
// "gotext" parses through github.com/go-text/typesetting instead.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) Option {
	return func(c *stashConfig) {
		c.parserName = name
	}
}

// WithRenderer attaches a renderer that is notified whenever the atlas
// texture is created, resized or partially updated. Without a renderer the
// caller polls [Stash.DirtyRect] instead.
func WithRenderer(r Renderer) Option {
	return func(c *stashConfig) {
		c.renderer = r
	}
}

// WithMaxStates overrides the state stack capacity.
// Values below 1 keep the default.
func WithMaxStates(n int) Option {
	return func(c *stashConfig) {
		if n >= 1 {
			c.maxStates = n
		}
	}
}
