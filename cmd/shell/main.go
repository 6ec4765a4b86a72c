package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JFrunk/bridgeplay/config"
	"github.com/JFrunk/bridgeplay/events"
	"github.com/JFrunk/bridgeplay/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var pub events.Publisher = events.NopPublisher{}
	if cfg.NatsURL != "" {
		natsPub, err := events.ConnectNats(cfg.NatsURL)
		if err != nil {
			log.Err(err).Msg("nats unavailable; analytics events disabled")
		} else {
			pub = natsPub
			defer natsPub.Close()
		}
	}

	shell.RunShell(cfg, pub)
}
