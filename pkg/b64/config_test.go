package b64

import "testing"

func TestWrap_ZeroWidthDisables(t *testing.T) {
	testCases := []struct {
		name  string
		width int
	}{
		{name: "zero", width: 0},
		{name: "negative", width: -5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := Wrap(tc.width, CRLF)
			if w != NoWrap {
				t.Errorf("Wrap(%d, CRLF) = %+v, want NoWrap", tc.width, w)
			}
			if w.Enabled() {
				t.Error("wrap with non-positive width reports enabled")
			}
		})
	}
}

func TestWrap_PositiveWidth(t *testing.T) {
	w := Wrap(76, CRLF)

	if !w.Enabled() {
		t.Fatal("Wrap(76, CRLF) reports disabled")
	}
	if w.Width() != 76 {
		t.Errorf("Width() = %d, want 76", w.Width())
	}
	if w.Ending() != CRLF {
		t.Errorf("Ending() = %v, want CRLF", w.Ending())
	}
}

func TestLineEnding_Len(t *testing.T) {
	if got := LF.Len(); got != 1 {
		t.Errorf("LF.Len() = %d, want 1", got)
	}
	if got := CRLF.Len(); got != 2 {
		t.Errorf("CRLF.Len() = %d, want 2", got)
	}
}

func TestConfig_Presets(t *testing.T) {
	testCases := []struct {
		name      string
		config    Config
		wantSet   CharacterSet
		wantPad   bool
		wantStrip bool
		wantWrap  LineWrap
	}{
		{
			name:    "standard",
			config:  StandardConfig,
			wantSet: Standard,
			wantPad: true,
		},
		{
			name:      "mime",
			config:    MIMEConfig,
			wantSet:   Standard,
			wantPad:   true,
			wantStrip: true,
			wantWrap:  Wrap(76, CRLF),
		},
		{
			name:    "url-safe",
			config:  URLSafeConfig,
			wantSet: URLSafe,
			wantPad: true,
		},
		{
			name:    "url-safe no pad",
			config:  URLSafeNoPadConfig,
			wantSet: URLSafe,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.config.CharacterSet(); got != tc.wantSet {
				t.Errorf("CharacterSet() = %v, want %v", got, tc.wantSet)
			}
			if got := tc.config.Padded(); got != tc.wantPad {
				t.Errorf("Padded() = %t, want %t", got, tc.wantPad)
			}
			if got := tc.config.StripsWhitespace(); got != tc.wantStrip {
				t.Errorf("StripsWhitespace() = %t, want %t", got, tc.wantStrip)
			}
			if got := tc.config.LineWrap(); got != tc.wantWrap {
				t.Errorf("LineWrap() = %+v, want %+v", got, tc.wantWrap)
			}
		})
	}
}

func TestLookupPreset(t *testing.T) {
	testCases := []struct {
		name   string
		want   Config
		wantOK bool
	}{
		{name: "standard", want: StandardConfig, wantOK: true},
		{name: "mime", want: MIMEConfig, wantOK: true},
		{name: "url", want: URLSafeConfig, wantOK: true},
		{name: "url-safe", want: URLSafeConfig, wantOK: true},
		{name: "url-nopad", want: URLSafeNoPadConfig, wantOK: true},
		{name: "url-safe-nopad", want: URLSafeNoPadConfig, wantOK: true},
		{name: "base32", wantOK: false},
		{name: "", wantOK: false},
		{name: "STANDARD", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run("name "+tc.name, func(t *testing.T) {
			got, ok := LookupPreset(tc.name)
			if ok != tc.wantOK {
				t.Fatalf("LookupPreset(%q) ok = %t, want %t", tc.name, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("LookupPreset(%q) = %+v, want %+v", tc.name, got, tc.want)
			}
		})
	}
}

func TestPresetNames_Resolve(t *testing.T) {
	for _, name := range PresetNames {
		if _, ok := LookupPreset(name); !ok {
			t.Errorf("listed preset %q does not resolve", name)
		}
	}
}

func TestConfig_ZeroValue(t *testing.T) {
	var c Config

	if c.CharacterSet() != Standard {
		t.Errorf("zero Config character set = %v, want Standard", c.CharacterSet())
	}
	if c.Padded() || c.StripsWhitespace() || c.LineWrap().Enabled() {
		t.Error("zero Config enables behavior beyond bare standard encoding")
	}

	// usable as standard-unpadded
	if got := c.EncodeToString([]byte("f")); got != "Zg" {
		t.Errorf("zero Config encode = %q, want %q", got, "Zg")
	}
}
