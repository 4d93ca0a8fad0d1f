// Package layout owns the scan-code data model: map entries, their
// resolution to driver bytes, and table normalization.
package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MapLen is the scan-code space of one map: scan codes 0-127, one
// byte each.
const MapLen = 128

var (
	ErrInvalidElement = errors.New("layout: invalid map element")
	ErrOutOfRange     = errors.New("layout: value out of byte range")
	ErrNameEncoding   = errors.New("layout: name is not ASCII")
)

// latin1Symbols maps symbols outside 7-bit ASCII to their Latin-1
// byte, as the driver's glyph table expects them.
var latin1Symbols = map[rune]byte{
	'€': 0x80,
	'ñ': 0xF1,
	'ç': 0xE7,
	'Ñ': 0xD1,
	'Ç': 0xC7,
	'·': 0xB7,
	'¿': 0xBF,
	'¡': 0xA1,
	'´': 0xB4,
	'¨': 0xA8,
}

type entryKind uint8

const (
	kindChar entryKind = iota + 1
	kindCode
)

// Entry is one map slot: either a single-character symbol or a raw
// byte code. The zero Entry is invalid and fails resolution.
type Entry struct {
	kind entryKind
	sym  string
	code int64
}

// Char builds a symbol entry. The symbol is validated at resolution
// time, not here.
func Char(sym string) Entry {
	return Entry{kind: kindChar, sym: sym}
}

// Code builds a raw byte-code entry.
func Code(v int64) Entry {
	return Entry{kind: kindCode, code: v}
}

// Resolve reduces the entry to the byte stored on disk.
func (e Entry) Resolve() (byte, error) {
	switch e.kind {
	case kindChar:
		if utf8.RuneCountInString(e.sym) != 1 {
			return 0, fmt.Errorf("symbol %q is not a single character: %w", e.sym, ErrInvalidElement)
		}
		r, _ := utf8.DecodeRuneInString(e.sym)
		if b, ok := latin1Symbols[r]; ok {
			return b, nil
		}
		if r > 0xFF {
			return 0, fmt.Errorf("symbol %q (U+%04X) does not fit one byte: %w", e.sym, r, ErrOutOfRange)
		}
		return byte(r), nil
	case kindCode:
		if e.code < 0 || e.code > 0xFF {
			return 0, fmt.Errorf("code %d outside 0-255: %w", e.code, ErrOutOfRange)
		}
		return byte(e.code), nil
	default:
		return 0, fmt.Errorf("empty entry: %w", ErrInvalidElement)
	}
}

// ElementError reports the map and scan code of a failed entry.
type ElementError struct {
	Map      string
	ScanCode int
	Err      error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("layout: %s[%d]: %v", e.Map, e.ScanCode, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// Layout is a named set of scan-code maps. AltGr may be nil, which
// stands for an all-zero map.
type Layout struct {
	Name   string
	Normal []Entry
	Shift  []Entry
	AltGr  []Entry
}

// ResolveMap resolves every supplied entry, then normalizes the
// result to exactly MapLen bytes: longer input is truncated, shorter
// input is zero-padded. A nil map resolves to MapLen zero bytes.
// Entries past MapLen are still validated before being discarded.
// mapName only feeds error context.
func ResolveMap(mapName string, entries []Entry) ([]byte, error) {
	out := make([]byte, MapLen)
	for i, e := range entries {
		b, err := e.Resolve()
		if err != nil {
			return nil, &ElementError{Map: mapName, ScanCode: i, Err: err}
		}
		if i < MapLen {
			out[i] = b
		}
	}
	return out, nil
}

// CheckName rejects names that cannot be stored in the ASCII name
// field. Length is not checked here; the encoder truncates.
func CheckName(name string) error {
	for i := 0; i < len(name); i++ {
		if name[i] > 0x7F {
			return fmt.Errorf("layout name %q: %w", name, ErrNameEncoding)
		}
	}
	return nil
}
