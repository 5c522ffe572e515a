package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/api"
	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/repositories"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/cbodonnell/flagmaster/pkg/version"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", os.Getenv("FLAGMASTER_ALLOW_ORIGIN"), "value of the Access-Control-Allow-Origin header")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connStr := os.Getenv("FLAGMASTER_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://flagmaster.db"
	}
	repository, err := repositories.Open(ctx, connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	provider, err := countries.NewPoolProvider(countries.NewPoolProviderOptions{})
	if err != nil {
		panic(fmt.Sprintf("Failed to create country provider: %v", err))
	}
	log.Info("Serving a pool of %d countries", provider.Size())

	var tlsConfig *api.TLSConfig
	certFile := os.Getenv("FLAGMASTER_API_TLS_CERT_FILE")
	keyFile := os.Getenv("FLAGMASTER_API_TLS_KEY_FILE")
	if certFile != "" && keyFile != "" {
		tlsConfig = &api.TLSConfig{
			CertFile: certFile,
			KeyFile:  keyFile,
		}
	}

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:        *port,
		TLS:         tlsConfig,
		AllowOrigin: *allowOrigin,
		Provider:    provider,
		Store:       stats.NewKVStore(repository),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(apiServer.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return apiServer.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited: %v", err)
		os.Exit(1)
	}
}
