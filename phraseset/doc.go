// Package phraseset loads phrase files (one phrase per line, # comments) into
// an Aho-Corasick automaton for multi-phrase matching against inspected
// payloads. A set built from a file can hot-reload itself when the file
// changes.
package phraseset
