package main

import (
	"flag"
	"log"

	"github.com/danmuck/kblyctl/internal/config"
)

func main() {
	name := flag.String("name", "es-qwerty", "layout template name")
	output := flag.String("output", "", "output path for the layout template")
	validate := flag.Bool("validate", false, "validate an existing layout file")
	input := flag.String("input", "", "layout path for validation")
	force := flag.Bool("force", false, "overwrite an existing layout file")
	flag.Parse()

	if *validate {
		if *input == "" {
			log.Fatal("-input is required with -validate")
		}
		if _, err := config.Load(*input); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated layout at %s", *input)
		return
	}

	target := *output
	if target == "" {
		target = *name + ".toml"
	}

	if err := config.WriteTemplate(target, *name, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s layout template to %s", *name, target)
}
