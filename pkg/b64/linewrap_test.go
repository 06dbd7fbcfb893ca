package b64

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestLineWrapParameters(t *testing.T) {
	testCases := []struct {
		name     string
		inputLen int
		width    int
		ending   LineEnding
		want     lineWrapParams
	}{
		{
			name:     "perfect multiple of width lf",
			inputLen: 100,
			width:    20,
			ending:   LF,
			want: lineWrapParams{
				linesWithEndings: 4,
				lastLineLen:      20,
				fullLinesLen:     84,
				totalLen:         104,
				endingsLen:       4,
			},
		},
		{
			name:     "partial last line crlf",
			inputLen: 103,
			width:    20,
			ending:   CRLF,
			want: lineWrapParams{
				linesWithEndings: 5,
				lastLineLen:      3,
				fullLinesLen:     110,
				totalLen:         113,
				endingsLen:       10,
			},
		},
		{
			name:     "width one crlf",
			inputLen: 100,
			width:    1,
			ending:   CRLF,
			want: lineWrapParams{
				linesWithEndings: 99,
				lastLineLen:      1,
				fullLinesLen:     99 * 3,
				totalLen:         99*3 + 1,
				endingsLen:       99 * 2,
			},
		},
		{
			name:     "input shorter than width",
			inputLen: 100,
			width:    200,
			ending:   CRLF,
			want:     lineWrapParams{lastLineLen: 100, totalLen: 100},
		},
		{
			name:     "input equals width",
			inputLen: 100,
			width:    100,
			ending:   CRLF,
			want:     lineWrapParams{lastLineLen: 100, totalLen: 100},
		},
		{
			name:   "empty input",
			width:  20,
			ending: LF,
			want:   lineWrapParams{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := lineWrapParameters(tc.inputLen, tc.width, tc.ending)
			if !ok {
				t.Fatal("lineWrapParameters reported overflow")
			}
			if got != tc.want {
				t.Errorf("parameters = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLineWrapParameters_Overflow(t *testing.T) {
	// every line gains two ending bytes, which cannot fit for a near-max input
	if _, ok := lineWrapParameters(maxInt-1, 1, CRLF); ok {
		t.Error("expected overflow for near-max input at width 1")
	}
}

// wrapInPlace sizes a buffer the way the encoder does and reflows it.
func wrapInPlace(t *testing.T, content []byte, width int, ending LineEnding) []byte {
	t.Helper()

	p, ok := lineWrapParameters(len(content), width, ending)
	if !ok {
		t.Fatal("lineWrapParameters reported overflow")
	}

	buf := make([]byte, p.totalLen)
	copy(buf, content)

	written := lineWrap(buf, len(content), width, ending)
	if written != p.endingsLen {
		t.Fatalf("lineWrap wrote %d ending bytes, want %d", written, p.endingsLen)
	}

	return buf
}

func TestLineWrap_Reflow(t *testing.T) {
	testCases := []struct {
		name    string
		content []byte
		width   int
		ending  LineEnding
		want    []byte
	}{
		{
			name:    "width one lf",
			content: []byte{0x1, 0x2, 0x3, 0x4},
			width:   1,
			ending:  LF,
			want:    []byte{0x1, 0xA, 0x2, 0xA, 0x3, 0xA, 0x4},
		},
		{
			name:    "width one crlf",
			content: []byte{0x1, 0x2, 0x3, 0x4},
			width:   1,
			ending:  CRLF,
			want:    []byte{0x1, 0xD, 0xA, 0x2, 0xD, 0xA, 0x3, 0xD, 0xA, 0x4},
		},
		{
			name:    "width two lf full lines",
			content: []byte{0x1, 0x2, 0x3, 0x4},
			width:   2,
			ending:  LF,
			want:    []byte{0x1, 0x2, 0xA, 0x3, 0x4},
		},
		{
			name:    "width two crlf full lines",
			content: []byte{0x1, 0x2, 0x3, 0x4},
			width:   2,
			ending:  CRLF,
			want:    []byte{0x1, 0x2, 0xD, 0xA, 0x3, 0x4},
		},
		{
			name:    "width two lf partial line",
			content: []byte{0x1, 0x2, 0x3, 0x4, 0x5},
			width:   2,
			ending:  LF,
			want:    []byte{0x1, 0x2, 0xA, 0x3, 0x4, 0xA, 0x5},
		},
		{
			name:    "width two crlf partial line",
			content: []byte{0x1, 0x2, 0x3, 0x4, 0x5},
			width:   2,
			ending:  CRLF,
			want:    []byte{0x1, 0x2, 0xD, 0xA, 0x3, 0x4, 0xD, 0xA, 0x5},
		},
		{
			name:    "no wrap needed",
			content: []byte{0x1, 0x2, 0x3},
			width:   5,
			ending:  LF,
			want:    []byte{0x1, 0x2, 0x3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapInPlace(t, tc.content, tc.width, tc.ending)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("wrapped = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineWrap_UndersizedBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undersized buffer")
		}
	}()

	buf := make([]byte, 4)
	lineWrap(buf, 4, 1, LF)
}

func TestLineWrap_RandomContentSurvives(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		contentLen := 10 + rng.Intn(990)
		width := 10 + rng.Intn(90)
		ending := LF
		if rng.Intn(2) == 1 {
			ending = CRLF
		}

		content := make([]byte, contentLen)
		rng.Read(content)

		p, _ := lineWrapParameters(contentLen, width, ending)

		wrapped := wrapInPlace(t, content, width, ending)
		if len(wrapped) != p.totalLen {
			t.Fatalf("wrapped length = %d, want %d", len(wrapped), p.totalLen)
		}

		// drop the inserted endings and expect the original content back
		unwrapped := make([]byte, 0, contentLen)
		for k := 0; k < p.linesWithEndings; k++ {
			lineStart := k * (width + ending.Len())
			unwrapped = append(unwrapped, wrapped[lineStart:lineStart+width]...)

			sep := wrapped[lineStart+width : lineStart+width+ending.Len()]
			if ending == LF && sep[0] != '\n' {
				t.Fatalf("line %d ending = %v, want LF", k, sep)
			}
			if ending == CRLF && (sep[0] != '\r' || sep[1] != '\n') {
				t.Fatalf("line %d ending = %v, want CRLF", k, sep)
			}
		}
		unwrapped = append(unwrapped, wrapped[p.fullLinesLen:]...)

		if !bytes.Equal(unwrapped, content) {
			t.Fatalf("content mangled for len=%d width=%d ending=%v", contentLen, width, ending)
		}
	}
}
