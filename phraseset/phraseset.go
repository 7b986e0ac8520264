package phraseset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/cloudflare/ahocorasick"
)

// Set is a compiled phrase list matched with an Aho-Corasick automaton.
//
// Contract:
// - Concurrency: safe for concurrent Match calls; Reload swaps the automaton
//   atomically under the same lock.
// - Errors: a failed Reload leaves the previous phrases active.
type Set struct {
	mu      sync.RWMutex
	path    string // empty for sets built from a reader
	phrases []string
	matcher *ahocorasick.Matcher
}

// FromFile loads a phrase file. Blank lines and comment lines are skipped.
// The returned set remembers the path so it can Reload and Watch.
func FromFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("phraseset: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("phraseset: %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// FromReader loads phrases from r. Use this for phrase data held in memory
// rather than on disk.
func FromReader(r io.Reader) (*Set, error) {
	phrases, err := parse(r)
	if err != nil {
		return nil, err
	}
	s := &Set{}
	s.swap(phrases)
	return s, nil
}

// Reload re-reads the set's file and swaps the automaton. Sets built from a
// reader cannot reload.
func (s *Set) Reload() error {
	if s.path == "" {
		return ErrNotReloadable
	}
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("phraseset: open %s: %w", s.path, err)
	}
	defer f.Close()

	phrases, err := parse(f)
	if err != nil {
		return fmt.Errorf("phraseset: %s: %w", s.path, err)
	}
	s.swap(phrases)
	return nil
}

func (s *Set) swap(phrases []string) {
	var m *ahocorasick.Matcher
	if len(phrases) > 0 {
		m = ahocorasick.NewStringMatcher(phrases)
	}
	s.mu.Lock()
	s.phrases = phrases
	s.matcher = m
	s.mu.Unlock()
}

// Match reports whether any phrase occurs in text.
func (s *Set) Match(text string) bool {
	s.mu.RLock()
	m := s.matcher
	s.mu.RUnlock()
	if m == nil {
		return false
	}
	return len(m.MatchThreadSafe([]byte(text))) > 0
}

// MatchedPhrases returns the distinct phrases occurring in text, in phrase
// file order.
func (s *Set) MatchedPhrases(text string) []string {
	s.mu.RLock()
	m := s.matcher
	phrases := s.phrases
	s.mu.RUnlock()
	if m == nil {
		return nil
	}

	hits := m.MatchThreadSafe([]byte(text))
	out := make([]string, 0, len(hits))
	for _, i := range hits {
		out = append(out, phrases[i])
	}
	return out
}

// Len returns the number of phrases held.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.phrases)
}

func parse(r io.Reader) ([]string, error) {
	var phrases []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if isComment(line) {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return phrases, nil
}

// isComment reports whether a line carries no phrase: it is empty, or a #
// appears with only whitespace before it. A # after phrase text does not
// make the line a comment; the whole line is the phrase.
func isComment(line string) bool {
	if len(line) == 0 {
		return true
	}
	pos := strings.IndexByte(line, '#')
	if pos < 0 {
		return false
	}
	for _, r := range line[:pos] {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
