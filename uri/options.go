package uri

// ParserOption configures a [Parser].
type ParserOption interface {
	ApplyParser(options *ParserOptions)
}

// ParserOptions holds [Parser] settings.
type ParserOptions struct {
	Mode     QueryMode
	Registry *Registry
}

type withMode struct {
	mode QueryMode
}

func (o withMode) ApplyParser(options *ParserOptions) {
	options.Mode = o.mode
}

// WithMode sets the query duplicate handling mode.
// An unsupported mode makes [NewParser] fail.
func WithMode(mode QueryMode) ParserOption {
	return withMode{mode}
}

type withRegistry struct {
	registry *Registry
}

func (o withRegistry) ApplyParser(options *ParserOptions) {
	options.Registry = o.registry
}

// WithRegistry sets the scheme registry. Nil means [DefaultRegistry].
func WithRegistry(registry *Registry) ParserOption {
	return withRegistry{registry}
}
