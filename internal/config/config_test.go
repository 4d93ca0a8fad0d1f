package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/kblyctl/internal/kbly"
	"github.com/danmuck/kblyctl/internal/layout"
	"github.com/danmuck/kblyctl/internal/testutil/testlog"
)

func TestLoadMixedEntries(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "layout.toml")
	content := `
name = "mini"
normal = [27, "a", "ñ", 255]
shift = [27, "A", "Ñ"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	if l.Name != "mini" {
		t.Fatalf("unexpected name: %q", l.Name)
	}
	if len(l.Normal) != 4 || len(l.Shift) != 3 {
		t.Fatalf("unexpected map sizes: normal=%d shift=%d", len(l.Normal), len(l.Shift))
	}
	if l.AltGr != nil {
		t.Fatalf("expected nil altgr for a two-map layout")
	}

	m, err := layout.ResolveMap("normal", l.Normal)
	if err != nil {
		t.Fatalf("resolve normal: %v", err)
	}
	want := []byte{27, 'a', 0xF1, 255}
	for i, b := range want {
		if m[i] != b {
			t.Fatalf("normal[%d]: got 0x%02X want 0x%02X", i, m[i], b)
		}
	}
}

func TestLoadRejectsBadEntryType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	content := `
name = "bad"
normal = [true]
shift = ["a"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse failure for boolean entry")
	}
}

func TestLoadMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	content := `
normal = ["a"]
shift = ["A"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation failure for missing name")
	}
}

func TestTemplateCompiles(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "es-qwerty.toml")
	if err := WriteTemplate(path, "es-qwerty", false); err != nil {
		t.Fatalf("write template: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if l.Name != "ES-QWERTY" {
		t.Fatalf("unexpected name: %q", l.Name)
	}

	buf, err := kbly.Encode(l)
	if err != nil {
		t.Fatalf("encode template: %v", err)
	}
	if len(buf) != kbly.EncodedLen {
		t.Fatalf("unexpected size: %d", len(buf))
	}
	// Spot-check a few slots: ñ on the home row, the grave accent
	// given as code 96, and the euro sign on the altgr table.
	if got := buf[kbly.NormalOffset+38]; got != 0xF1 {
		t.Fatalf("normal[38]: got 0x%02X want 0xF1", got)
	}
	if got := buf[kbly.NormalOffset+25]; got != 0x60 {
		t.Fatalf("normal[25]: got 0x%02X want 0x60", got)
	}
	if got := buf[kbly.AltGrOffset+18]; got != 0x80 {
		t.Fatalf("altgr[18]: got 0x%02X want 0x80", got)
	}
}

func TestTemplateUnknownName(t *testing.T) {
	if _, err := Template("dvorak"); err == nil {
		t.Fatalf("expected unknown template error")
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es.toml")
	if err := WriteTemplate(path, "es-qwerty", false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteTemplate(path, "es-qwerty", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, "es-qwerty", true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}
}
