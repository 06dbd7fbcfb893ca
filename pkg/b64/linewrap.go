package b64

// lineWrapParams describes the layout of wrapped output.
type lineWrapParams struct {
	linesWithEndings int // number of lines that receive an ending
	lastLineLen      int // length of the final line, which never gets one
	fullLinesLen     int // length of the ended lines including their endings
	totalLen         int // length of the whole wrapped output
	endingsLen       int // length of the inserted endings alone
}

// lineWrapParameters sizes the wrapped form of inputLen characters at the
// given width. The last line never receives an ending, even when it is
// exactly width characters long. Reports false when a length overflows int.
func lineWrapParameters(inputLen, width int, ending LineEnding) (lineWrapParams, bool) {
	if inputLen <= width {
		return lineWrapParams{lastLineLen: inputLen, totalLen: inputLen}, true
	}

	lines := inputLen / width
	lastLen := inputLen % width
	if lastLen == 0 {
		// every line is full, the last full line goes without an ending
		lines--
		lastLen = width
	}

	lineAndEnding, ok := addInt(width, ending.Len())
	if !ok {
		return lineWrapParams{}, false
	}
	fullLines, ok := mulInt(lines, lineAndEnding)
	if !ok {
		return lineWrapParams{}, false
	}
	total, ok := addInt(fullLines, lastLen)
	if !ok {
		return lineWrapParams{}, false
	}
	endings, ok := mulInt(lines, ending.Len())
	if !ok {
		return lineWrapParams{}, false
	}

	return lineWrapParams{
		linesWithEndings: lines,
		lastLineLen:      lastLen,
		fullLinesLen:     fullLines,
		totalLen:         total,
		endingsLen:       endings,
	}, true
}

// lineWrap inserts line endings into buf in place. buf[:inputLen] holds the
// unwrapped text and buf must already span the wrapped total. Lines move
// back to front so a destination never overruns source bytes that have not
// moved yet. Returns the number of ending bytes written.
func lineWrap(buf []byte, inputLen, width int, ending LineEnding) int {
	p, ok := lineWrapParameters(inputLen, width, ending)
	if !ok {
		panic("line wrap size overflows int")
	}
	if len(buf) < p.totalLen {
		panic("buffer too small for wrapped output")
	}

	// The last line carries no ending; it lands right after the ended lines.
	lastStart := p.linesWithEndings * width
	copy(buf[p.fullLinesLen:p.fullLinesLen+p.lastLineLen], buf[lastStart:lastStart+p.lastLineLen])

	written := 0
	for k := p.linesWithEndings - 1; k >= 0; k-- {
		src := k * width
		dst := src + k*ending.Len()
		copy(buf[dst:dst+width], buf[src:src+width])
		switch ending {
		case LF:
			buf[dst+width] = '\n'
			written++
		case CRLF:
			buf[dst+width] = '\r'
			buf[dst+width+1] = '\n'
			written += 2
		}
	}

	return written
}
