package main

import (
	"fmt"
	"os"

	"github.com/Y3454R/obadh-engine/internal/adapters/driven/config/file"
	"github.com/Y3454R/obadh-engine/internal/adapters/driven/storage/sqlite"
	"github.com/Y3454R/obadh-engine/internal/adapters/driving/cli"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driven"
	"github.com/Y3454R/obadh-engine/internal/core/services"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open config: %v\n", err)
		os.Exit(1)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// The exception dictionary only opens when enabled; conversion
	// works without it.
	var excStore driven.ExceptionStore
	if settings.Dictionary.Enabled {
		store, err := sqlite.NewStore(settings.Dictionary.DataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open dictionary store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		excStore = store
	}

	translitService := services.NewTransliterationService(excStore)

	cli.SetTransliterationService(translitService)
	cli.SetDictionaryService(services.NewDictionaryService(excStore))
	cli.SetBatchService(services.NewBatchService(translitService))
	cli.SetSettingsService(settingsService)
	cli.SetVersion(Version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
