package token

import "bytes"

// EOT is the end-of-text sentinel returned by Current and Peek when the
// cursor has moved past the last character of the document.
const EOT = -1

// Source is a one-character-lookahead cursor over a fully buffered
// document. It tracks line and column for error positions and supports
// capturing substrings across arbitrary read spans. Reading past the
// end of text yields EOT, never an error.
type Source struct {
	d       []byte
	i       int // index of the byte after the current character
	cur     int
	line    int // 1-based line of the current character
	lineOff int // offset of the first byte of the current line

	capStart int // -1 when no capture is active
	capture  bytes.Buffer
}

// NewSource positions the cursor on the first character of d.
func NewSource(d []byte) *Source {
	s := &Source{d: d, line: 1, capStart: -1, cur: EOT}
	if len(d) > 0 {
		s.cur = int(d[0])
		s.i = 1
	}
	return s
}

// Current returns the character under the cursor, or EOT.
func (s *Source) Current() int { return s.cur }

// Read advances the cursor one character. It reports whether a
// character was available.
func (s *Source) Read() bool {
	if s.cur == EOT {
		return false
	}
	if s.cur == '\n' {
		s.line++
		s.lineOff = s.i
	}
	if s.i >= len(s.d) {
		s.cur = EOT
		return false
	}
	s.cur = int(s.d[s.i])
	s.i++
	return true
}

// Peek looks n characters past the current one without consuming
// anything; Peek(1) is the character that the next Read will land on.
func (s *Source) Peek(n int) int {
	if s.cur == EOT {
		return EOT
	}
	j := s.i + n - 1
	if j >= len(s.d) {
		return EOT
	}
	return int(s.d[j])
}

// Skip discards up to n characters without capturing them.
func (s *Source) Skip(n int) {
	resume := s.capStart >= 0
	if resume {
		s.PauseCapture()
	}
	for ; n > 0; n-- {
		if !s.Read() {
			break
		}
	}
	if resume {
		s.StartCapture()
	}
}

// Offset returns the absolute offset of the current character, or
// len(document) at end of text.
func (s *Source) Offset() int {
	if s.cur == EOT {
		return len(s.d)
	}
	return s.i - 1
}

// Line returns the 1-based line of the current character.
func (s *Source) Line() int { return s.line }

// Col returns the 0-based byte column of the current character.
func (s *Source) Col() int { return s.Offset() - s.lineOff }

// Pos returns the position of the current character.
func (s *Source) Pos() Pos {
	return Pos{Offset: s.Offset(), Line: s.line, Col: s.Col(), src: s.d}
}

// StartCapture begins (or resumes) capturing at the current character.
func (s *Source) StartCapture() {
	s.capStart = s.Offset()
}

// PauseCapture stops capturing; the current character is excluded.
func (s *Source) PauseCapture() {
	if s.capStart < 0 {
		return
	}
	s.capture.Write(s.d[s.capStart:s.Offset()])
	s.capStart = -1
}

// EndCapture returns all text captured since StartCapture, excluding
// the current character, and clears the capture state.
func (s *Source) EndCapture() string {
	s.PauseCapture()
	res := s.capture.String()
	s.capture.Reset()
	return res
}

// AppendCaptured appends text to the active capture buffer. It is used
// when escape sequences replace the literal captured characters.
func (s *Source) AppendCaptured(text string) {
	s.capture.WriteString(text)
}

// Checkpoint is a saved cursor state; restoring it is O(1) because the
// document is fully buffered.
type Checkpoint struct {
	i, cur, line, lineOff int
}

func (s *Source) Checkpoint() Checkpoint {
	return Checkpoint{i: s.i, cur: s.cur, line: s.line, lineOff: s.lineOff}
}

// Restore rewinds the cursor to a previously saved state, dropping any
// active capture.
func (s *Source) Restore(c Checkpoint) {
	s.i, s.cur, s.line, s.lineOff = c.i, c.cur, c.line, c.lineOff
	s.capStart = -1
	s.capture.Reset()
}
