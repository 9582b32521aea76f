// Command console abre la consola super-admin en la terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/auth"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/api"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/pdf"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/tokenstore"
	"github.com/videeinfotech/sultan-super-admin-app/internal/interfaces/tui"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/config"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "console:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	// La terminal pertenece a la UI: el log va a archivo.
	logFile, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   logFile,
	})

	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = api.ResolveBaseURL(cfg.API.ConsoleHost)
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("base_url", baseURL).
		Msg("iniciando consola")

	tokens, err := tokenstore.NewFileStore(cfg.Session.File)
	if err != nil {
		return fmt.Errorf("almacén de sesión: %w", err)
	}
	client := api.New(api.Options{
		BaseURL: baseURL,
		Tokens:  tokens,
		Timeout: cfg.API.Timeout,
		Logger:  log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := auth.NewSession(tokens, client, log)
	if err := session.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("sesión guardada descartada")
	}

	env := screen.NewEnv(ctx, screen.Deps{
		API:       client,
		Session:   session,
		Router:    navigation.NewRouter(),
		Notify:    notify.New(notify.WithTTL(cfg.UI.ToastDuration)),
		Receipts:  pdf.NewReceiptGenerator(cfg.App.Name),
		Log:       log,
		Debounce:  cfg.UI.SearchDebounce,
		ExportDir: cfg.UI.ExportDir,
	})
	model := tui.New(env, screen.NewSet(env))

	if err := tui.Run(ctx, model, client.SetOnUnauthorized); err != nil && ctx.Err() == nil {
		return fmt.Errorf("ejecutar interfaz: %w", err)
	}
	log.Info().Msg("consola cerrada")
	return nil
}
