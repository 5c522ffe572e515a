package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbodonnell/flagmaster/client/audio"
	"github.com/cbodonnell/flagmaster/client/flags"
	"github.com/cbodonnell/flagmaster/client/game"
	"github.com/cbodonnell/flagmaster/pkg/api"
	"github.com/cbodonnell/flagmaster/pkg/countries"
	gamecore "github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/queue"
	"github.com/cbodonnell/flagmaster/pkg/repositories"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/cbodonnell/flagmaster/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

func defaultStatsDB() string {
	if v := os.Getenv("FLAGMASTER_STATS_DB"); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "flagmaster.db"
	}
	return filepath.Join(dir, "flagmaster", "stats.db")
}

func main() {
	_ = godotenv.Load()

	logLevel := flag.String("log-level", "info", "Log level")
	modeFlag := flag.String("mode", string(types.ModeNormal), "Initial game mode (normal or hard)")
	apiURL := flag.String("api-url", os.Getenv("FLAGMASTER_API_URL"), "Base URL of the flagmaster API. Countries and stats are local when empty")
	statsDB := flag.String("stats-db", defaultStatsDB(), "Path of the local SQLite stats database")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	mute := flag.Bool("mute", false, "Disable sound cues")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	mode, err := types.ParseMode(*modeFlag)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse mode: %v", err))
	}

	ctx := context.Background()

	var provider countries.Provider
	var store stats.Store
	if *apiURL != "" {
		client, err := api.NewClient(api.NewClientOptions{BaseURL: *apiURL})
		if err != nil {
			panic(fmt.Sprintf("Failed to create API client: %v", err))
		}
		log.Info("Using API at %s", *apiURL)
		provider = client
		store = client
	} else {
		pool, err := countries.NewPoolProvider(countries.NewPoolProviderOptions{})
		if err != nil {
			panic(fmt.Sprintf("Failed to create country provider: %v", err))
		}
		provider = pool

		if err := os.MkdirAll(filepath.Dir(*statsDB), 0o755); err != nil {
			panic(fmt.Sprintf("Failed to create stats directory: %v", err))
		}
		repository, err := repositories.Open(ctx, "sqlite://"+*statsDB)
		if err != nil {
			panic(fmt.Sprintf("Failed to open stats database: %v", err))
		}
		defer repository.Close(context.Background())
		log.Info("Using local stats at %s", *statsDB)
		store = stats.NewKVStore(repository)
	}

	aggregator := stats.NewAggregator(store)
	events := queue.NewInMemoryQueue[messages.Event](queue.DefaultQueueBufferSize)
	sink := game.NewQueueSink(events)
	player := audio.NewPlayer(audio.NewPlayerOptions{Muted: *mute})

	session := gamecore.NewSession(gamecore.NewSessionOptions{
		Provider: provider,
		Notifier: sink,
		Audio:    sink,
		Recorder: aggregator,
		Mode:     mode,
	})

	g, err := game.NewGame(game.NewGameOptions{
		Debug:      *debug,
		Session:    session,
		Aggregator: aggregator,
		Events:     events,
		Loader:     flags.NewLoader(flags.NewLoaderOptions{}),
		Audio:      player,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Guess the Flag")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
