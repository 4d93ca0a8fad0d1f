package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/kblyctl/internal/layout"
)

// Entry decodes one TOML map slot, which may be a string symbol or
// an integer byte code.
type Entry struct {
	val layout.Entry
}

func (e *Entry) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		e.val = layout.Char(v)
	case int64:
		e.val = layout.Code(v)
	default:
		return fmt.Errorf("map entry must be a string or integer, got %T", data)
	}
	return nil
}

// LayoutFile is the TOML shape of a layout definition. The altgr
// table is optional.
type LayoutFile struct {
	Name   string  `toml:"name"`
	Normal []Entry `toml:"normal"`
	Shift  []Entry `toml:"shift"`
	AltGr  []Entry `toml:"altgr"`
}

func Load(path string) (layout.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("layout load failed (%s): %w", path, err)
	}
	var lf LayoutFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return layout.Layout{}, fmt.Errorf("layout parse failed (%s): %w", path, err)
	}
	if err := Validate(lf); err != nil {
		return layout.Layout{}, err
	}
	return lf.Layout(), nil
}

func Validate(lf LayoutFile) error {
	if strings.TrimSpace(lf.Name) == "" {
		return fmt.Errorf("layout config missing name")
	}
	if len(lf.Normal) == 0 {
		return fmt.Errorf("layout config missing normal map")
	}
	if len(lf.Shift) == 0 {
		return fmt.Errorf("layout config missing shift map")
	}
	return nil
}

// Layout converts the decoded file into encoder input. A missing
// altgr table stays nil so the encoder emits an all-zero map.
func (lf LayoutFile) Layout() layout.Layout {
	l := layout.Layout{
		Name:   lf.Name,
		Normal: entries(lf.Normal),
		Shift:  entries(lf.Shift),
	}
	if len(lf.AltGr) > 0 {
		l.AltGr = entries(lf.AltGr)
	}
	return l
}

func entries(in []Entry) []layout.Entry {
	out := make([]layout.Entry, len(in))
	for i, e := range in {
		out[i] = e.val
	}
	return out
}
