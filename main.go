package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"savesweep/saves"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configFileName string
		debug          bool
		saveFolder     string
		keep           int
	)
	flag.StringVar(&configFileName, "c", "config.yml", "Config file name")
	flag.BoolVar(&debug, "d", false, "sets log level to debug")
	flag.StringVar(&saveFolder, "p", "", "Path to the save folder (default: working directory)")
	flag.IntVar(&keep, "k", -1, "Latest saves to keep per character and category")

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := loadConfig(configFileName)
	if saveFolder != "" {
		cfg.ClientCfg.SaveFolder = saveFolder
	}
	if keep >= 0 {
		cfg.ClientCfg.Keep = uint(keep)
	}

	log.Debug().Any("config", cfg).Msg("config loaded")

	if err := run(cfg); err != nil {
		// Failures are reported but the process still exits clean, matching
		// the legacy CLI contract.
		fmt.Println("Encountered error:")
		fmt.Println(err)
	}
}

func run(cfg config) error {
	dir, err := folderToUse(cfg.ClientCfg.SaveFolder)
	if err != nil {
		return err
	}
	keep := int(cfg.ClientCfg.Keep)

	log.Info().Msg(fmt.Sprintf("Running with keep = %d and path = %s", keep, dir))

	records, err := saves.Scan(dir)
	if err != nil {
		return err
	}
	log.Info().Msg(fmt.Sprintf("Total parsed save folder count = %d", len(records)))

	table := saves.SortGroups(saves.Group(records))

	candidates := saves.SelectForDeletion(table, keep)
	log.Info().Msg(fmt.Sprintf("Total deletion candidate count = %d", len(candidates)))

	return saves.NewPurger(dir).Run(candidates)
}

func folderToUse(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Join(saves.ErrNoPath, err)
	}
	return dir, nil
}
