package cli

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	httpadapter "taskdesk/internal/adapter/http"
	"taskdesk/internal/adapter/session"
	"taskdesk/internal/app/service"
	"taskdesk/internal/config"
	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"
)

// App holds the stores and transport shared by all commands.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Client *httpadapter.Client

	Auth    *service.AuthService
	Tasks   *service.TaskStore
	Columns *service.ColumnStore
	Users   *service.UserStore
	Ticks   *service.TickStore
	Filters *service.FilterStore

	closeOnce sync.Once
}

func NewApp(verbose bool) (*App, error) {
	logger, err := newLogger(verbose)
	if err != nil {
		return nil, err
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)

	cfg := config.LoadConfig()
	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageRu},
	})

	tokens := session.NewFileTokenStore(cfg.TokenFile)
	client, err := httpadapter.NewClient(httpadapter.Config{
		BaseURL:  cfg.APIURL,
		Timeout:  cfg.Timeout,
		Language: cfg.Language,
		Tokens:   tokens,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("configure api client: %w", err)
	}

	auth := service.NewAuthService(httpadapter.NewAuthService(client), tokens)
	client.AddInterceptor(auth.OnError)

	users := service.NewUserStore(httpadapter.NewUsersService(client))
	ticks := service.NewTickStore(httpadapter.NewTicksService(client))
	filters := service.NewFilterStore()

	return &App{
		Config:  cfg,
		Logger:  logger,
		Client:  client,
		Auth:    auth,
		Tasks: service.NewTaskStore(
			httpadapter.NewTasksService(client),
			filters,
			users,
			ticks,
			service.WithBatchConcurrency(cfg.BatchConcurrency),
		),
		Columns: service.NewColumnStore(
			httpadapter.NewColumnsService(client),
			apierrors.GetTransErrorMsg(apierrors.MsgDefaultColumnTitle, cfg.Language),
		),
		Users:   users,
		Ticks:   ticks,
		Filters: filters,
	}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// LoadBoard fetches every collection a board view needs.
func (a *App) LoadBoard(ctx context.Context) error {
	for _, fetch := range []func(context.Context) error{
		a.Columns.FetchAll,
		a.Users.FetchAll,
		a.Ticks.FetchAll,
		a.Tasks.FetchAll,
	} {
		if err := fetch(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Close() {
	a.closeOnce.Do(func() {
		// Sync fails on terminals; nothing useful to do about it.
		_ = a.Logger.Sync()
	})
}
