package main

import (
	"flag"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/kblyctl/internal/config"
	"github.com/danmuck/kblyctl/internal/kbly"
	"github.com/danmuck/kblyctl/internal/layout"
	"github.com/danmuck/kblyctl/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "layout TOML to compile")
	output := flag.String("output", "", "destination .kbd path (defaults to the config path with a .kbd extension)")
	validate := flag.Bool("validate", false, "validate the layout without writing a file")
	force := flag.Bool("force", false, "overwrite an existing output file")
	flag.Parse()

	logging.ConfigureRuntime()

	if *configPath == "" {
		log.Fatal().Msg("-config is required")
	}

	l, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load layout")
	}

	if *validate {
		if _, err := kbly.Encode(l); err != nil {
			log.Fatal().Err(err).Str("config", *configPath).Msg("layout invalid")
		}
		log.Info().Str("layout", l.Name).Str("config", *configPath).Msg("layout valid")
		return
	}

	target := *output
	if target == "" {
		target = strings.TrimSuffix(*configPath, ".toml") + ".kbd"
	}

	logMapSize("normal", len(l.Normal))
	logMapSize("shift", len(l.Shift))
	logMapSize("altgr", len(l.AltGr))

	n, err := kbly.WriteFile(target, l, *force)
	if err != nil {
		log.Fatal().Err(err).Str("dest", target).Msg("compile layout")
	}
	log.Info().Str("layout", l.Name).Str("dest", target).Int("bytes", n).Msg("layout written")
}

// logMapSize notes maps that will be zero-padded or truncated to the
// fixed scan-code table size. Neither case is an error.
func logMapSize(name string, n int) {
	switch {
	case n > layout.MapLen:
		log.Debug().Str("map", name).Int("entries", n).Int("kept", layout.MapLen).Msg("truncating map")
	case n > 0 && n < layout.MapLen:
		log.Debug().Str("map", name).Int("entries", n).Int("padded_to", layout.MapLen).Msg("padding map")
	}
}
