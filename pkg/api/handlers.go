package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ssargent/bifrost/pkg/b64"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handlePresets lists the named encoding configurations the service accepts.
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	presets := make([]PresetInfo, 0, len(b64.PresetNames))
	for _, name := range b64.PresetNames {
		cfg, ok := b64.LookupPreset(name)
		if !ok {
			continue
		}
		presets = append(presets, presetInfo(name, cfg))
	}

	sendSuccess(w, map[string]interface{}{"presets": presets})
}

// handleEncode turns the raw request body into base64 text.
//
// The encoding is chosen by query parameters (see encodingFromRequest) and
// falls back to the server's configured default.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	cfg, err := encodingFromRequest(r, s.config.Encoding)
	if err != nil {
		s.metrics.RecordCodecOperation("encode", false, time.Since(start), 0, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		s.metrics.RecordCodecOperation("encode", false, time.Since(start), 0, 0)
		return
	}

	encoded := cfg.EncodeToString(body)

	s.metrics.RecordCodecOperation("encode", true, time.Since(start), len(body), len(encoded))
	sendSuccess(w, EncodeResult{Encoded: encoded, Length: len(encoded)})
}

// handleDecode turns a base64 request body back into raw bytes.
//
// Success streams the bytes as application/octet-stream. Malformed input
// yields 422 with the offending offset and byte when known.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	cfg, err := encodingFromRequest(r, s.config.Encoding)
	if err != nil {
		s.metrics.RecordCodecOperation("decode", false, time.Since(start), 0, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		s.metrics.RecordCodecOperation("decode", false, time.Since(start), 0, 0)
		return
	}

	decoded, err := cfg.AppendDecode(nil, body)
	if err != nil {
		s.metrics.RecordCodecOperation("decode", false, time.Since(start), len(body), 0)

		var invalid *b64.InvalidByteError
		if errors.As(err, &invalid) {
			sendErrorDetail(w, err.Error(), http.StatusUnprocessableEntity, DecodeErrorDetail{
				Offset: invalid.Offset,
				Byte:   int(invalid.Byte),
			})
			return
		}
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordCodecOperation("decode", true, time.Since(start), len(body), len(decoded))

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(decoded); err != nil {
		sendError(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// readBody drains the request body under the configured size limit. On
// failure it writes the error response itself and reports false.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body := r.Body
	if s.config.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}

	return data, true
}

// presetInfo flattens a configuration for the presets listing.
func presetInfo(name string, cfg b64.Config) PresetInfo {
	info := PresetInfo{
		Name:            name,
		Alphabet:        cfg.CharacterSet().String(),
		Pad:             cfg.Padded(),
		StripWhitespace: cfg.StripsWhitespace(),
	}
	if wrap := cfg.LineWrap(); wrap.Enabled() {
		info.WrapWidth = wrap.Width()
		info.LineEnding = wrap.Ending().String()
	}
	return info
}

// encodingFromRequest resolves the codec configuration for one request.
// Query parameters:
//
//	preset    standard | mime | url | url-nopad (base to start from)
//	alphabet  standard | url | url-safe
//	pad       boolean
//	strip     boolean (decode whitespace tolerance)
//	wrap      column count, 0 disables wrapping
//	ending    lf | crlf
//
// Explicit parameters override the preset; with no parameters at all the
// fallback configuration is used unchanged.
func encodingFromRequest(r *http.Request, fallback b64.Config) (b64.Config, error) {
	q := r.URL.Query()

	base := fallback
	if name := q.Get("preset"); name != "" {
		preset, ok := b64.LookupPreset(name)
		if !ok {
			return b64.Config{}, fmt.Errorf("unknown preset %q", name)
		}
		base = preset
	}

	cs := base.CharacterSet()
	pad := base.Padded()
	strip := base.StripsWhitespace()
	wrap := base.LineWrap()

	if v := q.Get("alphabet"); v != "" {
		switch v {
		case "standard":
			cs = b64.Standard
		case "url", "url-safe":
			cs = b64.URLSafe
		default:
			return b64.Config{}, fmt.Errorf("unknown alphabet %q", v)
		}
	}

	if v := q.Get("pad"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return b64.Config{}, fmt.Errorf("invalid pad value %q", v)
		}
		pad = b
	}

	if v := q.Get("strip"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return b64.Config{}, fmt.Errorf("invalid strip value %q", v)
		}
		strip = b
	}

	// ending resolves before wrap so either order of parameters works
	ending := wrap.Ending()
	if v := q.Get("ending"); v != "" {
		switch v {
		case "lf":
			ending = b64.LF
		case "crlf":
			ending = b64.CRLF
		default:
			return b64.Config{}, fmt.Errorf("unknown line ending %q", v)
		}
		if wrap.Enabled() {
			wrap = b64.Wrap(wrap.Width(), ending)
		}
	}

	if v := q.Get("wrap"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil || width < 0 {
			return b64.Config{}, fmt.Errorf("invalid wrap width %q", v)
		}
		wrap = b64.Wrap(width, ending)
	}

	return b64.NewConfig(cs, pad, strip, wrap), nil
}
