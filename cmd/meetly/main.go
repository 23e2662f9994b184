package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/meetly-app/meetly-cli/internal/api"
	"github.com/meetly-app/meetly-cli/internal/cli"
	"github.com/meetly-app/meetly-cli/internal/cli/availability"
	"github.com/meetly-app/meetly-cli/internal/cli/exceptions"
	"github.com/meetly-app/meetly-cli/internal/cli/settings"
	"github.com/meetly-app/meetly-cli/internal/cli/system"
	"github.com/meetly-app/meetly-cli/internal/config"
	"github.com/meetly-app/meetly-cli/internal/constants"
	apperrors "github.com/meetly-app/meetly-cli/internal/errors"
	"github.com/meetly-app/meetly-cli/internal/keyring"
	"github.com/meetly-app/meetly-cli/internal/logger"
	"github.com/meetly-app/meetly-cli/internal/models"
	"github.com/meetly-app/meetly-cli/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Cache   string `help:"Snapshot cache path." type:"string" default:"~/.config/meetly/meetly.db"`

	Init         system.InitCmd   `cmd:"" help:"Initialize the local snapshot cache."`
	Doctor       system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Login        cli.LoginCmd     `cmd:"" help:"Log in and store the API token in the OS keyring."`
	Logout       cli.LogoutCmd    `cmd:"" help:"Remove the stored API token."`
	Sync         cli.SyncCmd      `cmd:"" help:"Re-fetch server state into the local cache."`
	Availability struct {
		List availability.ListCmd `cmd:"" help:"Show the weekly schedule." default:"1"`
		Edit availability.EditCmd `cmd:"" help:"Edit the weekly schedule interactively."`
	} `cmd:"" help:"Manage weekly availability."`
	Exceptions struct {
		List exceptions.ListCmd `cmd:"" help:"Show exception dates." default:"1"`
		Edit exceptions.EditCmd `cmd:"" help:"Add or remove exception dates."`
	} `cmd:"" help:"Manage exception dates."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage booking-window settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Meeting availability companion for the scheduling backend"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	locale := models.DetectLocale()
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		locale.TimeZone = cfg.Timezone
	}

	// A missing token is fine here; authenticated calls surface it per-command.
	token, err := keyring.GetToken()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("Keyring unavailable", "error", err)
	}

	store := storage.NewSQLiteStore(CLI.Cache)

	appCtx := &cli.Context{
		Store:     store,
		API:       api.NewClient(cfg.APIBaseURL, token, locale.Location()),
		Locale:    locale,
		Config:    cfg,
		CachePath: storage.ExpandPath(CLI.Cache),
	}

	// Load the cache before running the command; init handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
