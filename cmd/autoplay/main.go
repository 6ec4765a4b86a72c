// autoplay runs AI-vs-AI deals for strategy comparison, e.g.:
//
//	autoplay -deals 200 -declarer advanced -defender beginner
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JFrunk/bridgeplay/ai/player"
	"github.com/JFrunk/bridgeplay/automatic"
	"github.com/JFrunk/bridgeplay/config"
)

func main() {
	deals := flag.Int("deals", 100, "number of random deals to play")
	declarer := flag.String("declarer", "intermediate", "difficulty for the declaring side")
	defender := flag.String("defender", "intermediate", "difficulty for the defending side")
	concurrency := flag.Int("concurrency", runtime.NumCPU(), "deals in flight at once")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	declLevel, err := player.ParseLevel(*declarer)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	defLevel, err := player.ParseLevel(*defender)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	runner := automatic.NewRunner(cfg, automatic.Options{
		DeclarerLevel: declLevel,
		DefenderLevel: defLevel,
		Deals:         *deals,
		Concurrency:   *concurrency,
	})
	summary, err := runner.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("autoplay failed")
	}
	fmt.Fprintln(os.Stdout, summary.String())
}
