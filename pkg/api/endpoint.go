package api

// Endpoint is the immutable base address every request path is appended to.
// Build it once at startup and hand it to New.
type Endpoint struct {
	baseURL string
}

// NewEndpoint returns an Endpoint for baseURL. The value is used verbatim.
func NewEndpoint(baseURL string) Endpoint {
	return Endpoint{baseURL: baseURL}
}

// BaseURL returns the configured base address.
func (e Endpoint) BaseURL() string { return e.baseURL }

// URL joins the base address and path without inserting separators.
func (e Endpoint) URL(path string) string { return e.baseURL + path }
