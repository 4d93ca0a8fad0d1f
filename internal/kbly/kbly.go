// Package kbly owns the on-disk layout file format.
//
// A layout file is a fixed 420-byte blob, little-endian:
// magic (4) + name (32, NUL-terminated ASCII) + normal map (128) +
// shift map (128) + altgr map (128).
package kbly

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/kblyctl/internal/layout"
)

const (
	// Magic identifies a layout file, ASCII "KBLY" as a 32-bit tag.
	Magic uint32 = 0x4B424C59

	NameLen = 32

	NameOffset   = 4
	NormalOffset = NameOffset + NameLen
	ShiftOffset  = NormalOffset + layout.MapLen
	AltGrOffset  = ShiftOffset + layout.MapLen

	// EncodedLen is the total file size, fixed for every layout.
	EncodedLen = AltGrOffset + layout.MapLen
)

// Encode validates and serializes the layout. It either returns the
// full EncodedLen-byte blob or an error; no partial output exists.
func Encode(l layout.Layout) ([]byte, error) {
	if err := layout.CheckName(l.Name); err != nil {
		return nil, err
	}
	normal, err := layout.ResolveMap("normal", l.Normal)
	if err != nil {
		return nil, err
	}
	shift, err := layout.ResolveMap("shift", l.Shift)
	if err != nil {
		return nil, err
	}
	altgr, err := layout.ResolveMap("altgr", l.AltGr)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, EncodedLen)
	binary.LittleEndian.PutUint32(buf[0:NameOffset], Magic)

	// Name content holds at most NameLen-1 bytes so the NUL
	// terminator always fits.
	name := l.Name
	if len(name) > NameLen-1 {
		name = name[:NameLen-1]
	}
	copy(buf[NameOffset:NameOffset+NameLen], name)

	copy(buf[NormalOffset:ShiftOffset], normal)
	copy(buf[ShiftOffset:AltGrOffset], shift)
	copy(buf[AltGrOffset:EncodedLen], altgr)
	return buf, nil
}

// Write encodes the layout and writes it to w in one call, reporting
// the bytes written. Nothing is written when validation fails.
func Write(w io.Writer, l layout.Layout) (int, error) {
	buf, err := Encode(l)
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// WriteFile encodes the layout and writes it to path. An existing
// file is only replaced when overwrite is set. Validation failures
// leave the path untouched.
func WriteFile(path string, l layout.Layout, overwrite bool) (int, error) {
	buf, err := Encode(l)
	if err != nil {
		return 0, err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return 0, fmt.Errorf("kbly: output already exists: %s", path)
		}
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return 0, err
	}
	return len(buf), nil
}
