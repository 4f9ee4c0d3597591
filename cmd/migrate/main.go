package main

import (
	"os"
	"strings"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 {
		log.Fatal().Msgf("Migration action is required, use one of %s", strings.Join(helper.Actions(), ", "))
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Run(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
