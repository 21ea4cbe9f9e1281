package playfab

// CallOption customizes a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	authCtx    *AuthenticationContext
	customData any
	headers    map[string]string
	overrides  []any
}

func newCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithAuthenticationContext makes the call use ac instead of the context attached to the request
// or the client's credentials.
func WithAuthenticationContext(ac AuthenticationContext) CallOption {
	return func(o *callOptions) {
		o.authCtx = &ac
	}
}

// WithCustomData attaches an opaque value that is handed back to observers.
func WithCustomData(data any) CallOption {
	return func(o *callOptions) {
		o.customData = data
	}
}

// WithHeaders adds extra HTTP headers. They never replace the credential header.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// Override overlays every non-zero field of fields onto a copy of the request record.
// fields must be the request record type of the method, or a pointer to it.
// Zero values mean "not set". Optional fields where false or 0 is meaningful are pointers, so an
// explicit false or 0 given through a pointer always wins.
func Override(fields any) CallOption {
	return func(o *callOptions) {
		o.overrides = append(o.overrides, fields)
	}
}
