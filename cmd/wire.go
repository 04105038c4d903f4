package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"promptdeck/internal/adapters/authhttp"
	"promptdeck/internal/adapters/storehttp"
	"promptdeck/internal/application"
	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".promptdeck"

	appIDKey    = "app.id"
	endpointKey = "server.endpoint"
	tokenKey    = "auth.token"

	defaultAppID    = "promptdeck"
	defaultEndpoint = "http://127.0.0.1:8655"
)

type appConfig struct {
	appID    string
	endpoint string
	token    string
}

type app struct {
	cfg appConfig
	// No global timeout on this client: the snapshot stream must stay open
	// for the lifetime of the session.
	httpClient  *http.Client
	establisher *application.Establisher
}

func wireApp() (*app, error) {
	cfg, err := loadConfig(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire configuration: %w", err)
	}

	httpClient := &http.Client{}
	auth := authhttp.NewClient(cfg.endpoint, httpClient)

	return &app{
		cfg:         cfg,
		httpClient:  httpClient,
		establisher: application.NewEstablisher(auth, cfg.appID, cfg.token),
	}, nil
}

func loadConfig(cfg *viper.Viper) (appConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return appConfig{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(appIDKey, defaultAppID)
	cfg.SetDefault(endpointKey, defaultEndpoint)
	cfg.SetDefault(tokenKey, "")
	cfg.SetEnvPrefix("PDECK")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return appConfig{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := appConfig{
		appID:    cfg.GetString(appIDKey),
		endpoint: strings.TrimRight(cfg.GetString(endpointKey), "/"),
		token:    cfg.GetString(tokenKey),
	}
	if loaded.endpoint == "" {
		return appConfig{}, errors.New("server endpoint is empty")
	}

	return loaded, nil
}

// establish signs in (or reuses the cached identity) and returns the session
// together with a document store bound to its access token.
func (a *app) establish(ctx context.Context) (domain.Session, ports.DocumentStore, error) {
	session, err := a.establisher.Establish(ctx)
	if err != nil {
		return domain.Session{}, nil, err
	}

	store := storehttp.NewClient(a.cfg.endpoint, session.Identity.Token, a.httpClient)

	return session, store, nil
}

func (a *app) dispatcher(session domain.Session, store ports.DocumentStore) *application.Dispatcher {
	return application.NewDispatcher(session, store, ports.SystemClock{})
}
