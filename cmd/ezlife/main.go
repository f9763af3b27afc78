package main

import (
	"fmt"
	"os"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/config"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/activity"
	authUC "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/auth/usecase"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/cli"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/file"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/settings"
	taskRest "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task/repository/rest"
	taskUC "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task/usecase"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return err
	}

	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	creds, err := credential.NewFileStore(cfg.Credential.FilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "credential store:", err)
		return err
	}

	gw := gateway.New(l, creds, gateway.Config{
		Endpoints: gateway.Endpoints{
			Auth: cfg.Endpoints.AuthBaseURL,
			Task: cfg.Endpoints.TaskBaseURL,
			File: cfg.Endpoints.FileBaseURL,
		},
		RequestsPerMinute: cfg.Gateway.RequestsPerMinute,
	})
	gw.OnSessionEnded(func() {
		fmt.Fprintln(os.Stderr, "session ended, run `ezlife login` to continue")
	})

	app := &cli.App{
		L:          l,
		Auth:       authUC.New(l, creds, gw),
		Tasks:      taskUC.New(l, taskRest.New(gw, l)),
		Activities: activity.NewService(l, gw),
		Files: file.NewService(l, gw, creds, file.Config{
			Policy: file.UploadPolicy{
				AllowedExtensions: cfg.Upload.AllowedExtensions,
				MaxSizeBytes:      cfg.Upload.MaxSizeBytes,
			},
			CacheSize: cfg.Gateway.DownloadCacheSize,
			CacheTTL:  cfg.Gateway.DownloadCacheTTL,
		}),
		Settings: settings.NewService(l, gw),
	}

	return cli.NewRoot(app).Execute()
}
