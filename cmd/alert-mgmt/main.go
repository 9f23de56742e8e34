package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alertops/alert-mgmt/internal/pkg/application/admission"
	"github.com/alertops/alert-mgmt/internal/pkg/application/enrichment"
	"github.com/alertops/alert-mgmt/internal/pkg/infrastructure/router"
	"github.com/alertops/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/alertops/alert-mgmt/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"gopkg.in/yaml.v2"
)

const serviceName string = "alert-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	configurationFile
	teamOwnerFile
	maintenanceFile

	apiKey
	apiKeyHeader
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		configurationFile: "/opt/alert-mgmt/config/config.yaml",
		teamOwnerFile:     "/opt/alert-mgmt/config/enrichment_data.csv",
		maintenanceFile:   "/opt/alert-mgmt/config/maintenance_data.csv",

		apiKey:       "",
		apiKeyHeader: "X-API-Key",
	}
}

type appConfig struct {
	Admission               admission.Config `yaml:"admission"`
	Sources                 []string         `yaml:"sources"`
	ReferenceDataTTLSeconds int              `yaml:"referenceDataTTLSeconds"`
}

func (c appConfig) ReferenceDataTTL() time.Duration {
	if c.ReferenceDataTTLSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.ReferenceDataTTLSeconds) * time.Second
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	if flags[apiKey] == "" {
		exitIf(errors.New("no api key configured"), logger, "refusing to start without an API_KEY")
	}

	s, err := storage.New(ctx, storage.LoadConfiguration(ctx))
	exitIf(err, logger, "could not create or connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "failed to initialize storage")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	adm := admission.New(s, &cfg.Admission)

	hosts := enrichment.NewHostRegistry(flags[teamOwnerFile], flags[maintenanceFile], cfg.ReferenceDataTTL())
	enr := enrichment.New(s, messenger, enrichment.DefaultRegistry(), hosts)

	messenger.Start()
	defer messenger.Close()

	err = enr.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register topic message handler")

	r := router.New(serviceName, flags[apiKeyHeader])
	_, err = api.RegisterHandlers(ctx, r, adm, messenger, s, api.Config{
		APIKey:       flags[apiKey],
		APIKeyHeader: flags[apiKeyHeader],
		Sources:      cfg.Sources,
	})
	exitIf(err, logger, "failed to register handlers")

	apiPort := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])

	webServer := &http.Server{Addr: apiPort, Handler: r}

	logger.Info("starting to listen for incoming connections", "address", apiPort)

	go func() {
		err := webServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen for incoming connections", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("failed to shutdown web server", "err", err.Error())
	}

	s.Close()
}

func parseExternalConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{Admission: *admission.DefaultConfig()}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = api.DefaultSources()
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[apiKey] = envOrDef(ctx, "API_KEY", flags[apiKey])
	flags[apiKeyHeader] = envOrDef(ctx, "API_KEY_HEADER", flags[apiKeyHeader])

	flags[teamOwnerFile] = envOrDef(ctx, "ENRICHMENT_DATA_FILE", flags[teamOwnerFile])
	flags[maintenanceFile] = envOrDef(ctx, "MAINTENANCE_DATA_FILE", flags[maintenanceFile])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Func("enrichmentdata", "host to team/owner reference data", apply(teamOwnerFile))
	flag.Func("maintenancedata", "host maintenance window reference data", apply(maintenanceFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
