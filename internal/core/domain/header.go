package domain

// Header is a single request header or query parameter.
type Header struct {
	// Name is the header name as the user typed it.
	Name string `toml:"name" json:"name"`

	// Value is the header value.
	Value string `toml:"value" json:"value"`

	// Disabled headers are kept on the request but never sent.
	Disabled bool `toml:"disabled" json:"disabled,omitempty"`
}
