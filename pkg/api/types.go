package api

import "github.com/ssargent/bifrost/pkg/b64"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeResult is the payload returned by the encode endpoint
type EncodeResult struct {
	Encoded string `json:"encoded"`
	Length  int    `json:"length"`
}

// DecodeErrorDetail pinpoints a rejected decode input. It is only attached
// for invalid-byte failures.
type DecodeErrorDetail struct {
	Offset int `json:"offset"`
	Byte   int `json:"byte"`
}

// PresetInfo describes one named encoding configuration
type PresetInfo struct {
	Name            string `json:"name"`
	Alphabet        string `json:"alphabet"`
	Pad             bool   `json:"pad"`
	StripWhitespace bool   `json:"strip_whitespace"`
	WrapWidth       int    `json:"wrap_width,omitempty"`
	LineEnding      string `json:"line_ending,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port         int
	Bind         string
	APIKey       string
	MaxBodyBytes int64      // reject request bodies beyond this size
	Encoding     b64.Config // default when a request names no options
}
