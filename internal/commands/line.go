package commands

import (
	"strings"
	"unicode/utf8"
)

// maxHistory bounds the number of submitted lines Line remembers.
const maxHistory = 50

// Line is the editable input of the command bar with a history of submitted lines.
// Prev and Next walk the history; editing a recalled line leaves the history untouched.
type Line struct {
	buf     string
	history []string
	pos     int // index into history; len(history) means the fresh line
}

// Text returns the current input.
func (l *Line) Text() string {
	return l.buf
}

// Insert appends s at the end of the input.
func (l *Line) Insert(s string) {
	l.buf += s
}

// Backspace removes the last rune.
func (l *Line) Backspace() {
	if l.buf == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(l.buf)
	l.buf = l.buf[:len(l.buf)-size]
}

// Submit clears the input and returns it. Non-blank lines are added to the history unless they
// repeat the previous entry.
func (l *Line) Submit() string {
	s := l.buf
	l.buf = ""
	if strings.TrimSpace(s) != "" && (len(l.history) == 0 || l.history[len(l.history)-1] != s) {
		l.history = append(l.history, s)
		if len(l.history) > maxHistory {
			l.history = l.history[len(l.history)-maxHistory:]
		}
	}
	l.pos = len(l.history)
	return s
}

// Prev replaces the input with the previous history entry.
func (l *Line) Prev() {
	if l.pos == 0 {
		return
	}
	l.pos--
	l.buf = l.history[l.pos]
}

// Next moves forward through the history; past the newest entry the input is cleared.
func (l *Line) Next() {
	if l.pos >= len(l.history) {
		return
	}
	l.pos++
	if l.pos == len(l.history) {
		l.buf = ""
		return
	}
	l.buf = l.history[l.pos]
}

// Complete extends a partially typed command name ("cmd sp") using names. A unique match is
// completed with a trailing space; several matches are extended to their common prefix.
// It returns the candidates so the caller can list them.
func (l *Line) Complete(names []string) []string {
	if !strings.HasPrefix(l.buf, prefix) {
		return nil
	}
	word := l.buf[len(prefix):]
	if strings.Contains(word, " ") {
		return nil
	}
	var matches []string
	for _, n := range names {
		if strings.HasPrefix(n, word) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
	case 1:
		l.buf = prefix + matches[0] + " "
	default:
		l.buf = prefix + commonPrefix(matches)
	}
	return matches
}

func commonPrefix(ss []string) string {
	p := ss[0]
	for _, s := range ss[1:] {
		for !strings.HasPrefix(s, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
