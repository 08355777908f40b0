package main

import (
	"github.com/bornholm/founderfinder/internal/command"
	"github.com/bornholm/founderfinder/internal/command/batch"
	"github.com/bornholm/founderfinder/internal/command/infobox"
	"github.com/bornholm/founderfinder/internal/command/lookup"
	"github.com/bornholm/founderfinder/internal/command/schema"
)

var (
	version = "dev"
)

func main() {
	command.Main(
		"founderfinder",
		version,
		"Find company founders on Wikipedia",
		batch.Batch(),
		lookup.Lookup(),
		infobox.Infobox(),
		schema.Schema(),
	)
}
