package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	myapp "github.com/ayxworxfr/go_admin_client/internal/app"
	"github.com/ayxworxfr/go_admin_client/internal/config"
	"github.com/ayxworxfr/go_admin_client/pkg/logger"
	"github.com/ayxworxfr/go_admin_client/pkg/utils"
	"github.com/pkg/errors"
)

type CLI struct {
	Config  string `help:"Path to the config file." default:"conf/config.yaml" short:"c"`
	BaseURL string `help:"Override client.base_url." name:"base-url" env:"ADMIN_API_BASE_URL"`
	Token   string `help:"Use this access token instead of logging in." env:"ADMIN_API_TOKEN"`
	Verbose bool   `help:"Log debug output to stderr." short:"v"`

	Login      LoginCmd      `cmd:"" help:"Log in and show the token owner."`
	Profile    ProfileCmd    `cmd:"" help:"Show the current user profile."`
	Users      UsersCmd      `cmd:"" help:"User management."`
	Roles      RolesCmd      `cmd:"" help:"Role management."`
	Articles   ArticlesCmd   `cmd:"" help:"Article management."`
	Tags       TagsCmd       `cmd:"" help:"Tag management."`
	Categories CategoriesCmd `cmd:"" help:"Category management."`
	Routes     RoutesCmd     `cmd:"" help:"Frontend routes."`
	Options    OptionsCmd    `cmd:"" help:"Print the enumeration option tables."`
}

// Runtime 命令执行时共享的依赖，后端相关的依赖按需初始化
type Runtime struct {
	ctx context.Context
	cli *CLI
	out io.Writer
	app *myapp.App
}

// App 加载配置、初始化日志与追踪并完成登录
func (r *Runtime) App() (*myapp.App, error) {
	if r.app != nil {
		return r.app, nil
	}
	cfg, err := config.Load(utils.GetAbsPath(r.cli.Config),
		config.WithBaseURL(r.cli.BaseURL),
		config.WithToken(r.cli.Token),
	)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	InitLogger(cfg.Logger, r.cli.Verbose)

	app := myapp.NewApp(cfg)
	app.RegisterInit(func(ctx context.Context) error {
		return initOpenTelemetry(ctx, cfg.OpenTelemetry, app)
	})
	if err := app.Start(r.ctx); err != nil {
		return nil, err
	}
	r.app = app
	if err := app.Login(r.ctx); err != nil {
		return nil, err
	}
	return app, nil
}

// Print 以缩进 JSON 输出结果
func (r *Runtime) Print(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (r *Runtime) Close() error {
	defer logger.Sync()
	if r.app == nil {
		return nil
	}
	const shutdownTimeout = 3 * time.Second
	return r.app.Shutdown(shutdownTimeout)
}

func initOpenTelemetry(ctx context.Context, cfg config.OpenTelemetryConfig, app *myapp.App) error {
	otelProvider, err := myapp.InitOpenTelemetry(ctx, cfg)
	if err != nil {
		// 追踪不可用不影响命令执行
		logger.Errorf(ctx, "Failed to initialize OpenTelemetry: %v", err)
		return nil
	}
	if otelProvider == nil {
		return nil
	}
	app.RegisterExit(func(ctx context.Context) error {
		if err := otelProvider.Shutdown(ctx); err != nil {
			logger.Errorf(ctx, "Failed to shutdown OpenTelemetry provider: %v", err)
			return err
		}
		return nil
	})
	return nil
}

func InitLogger(cfg config.LoggerConfig, verbose bool) {
	loggerConfig := logger.Config{
		LogFile:    cfg.LogFile,
		Level:      cfg.Level,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		Console:    cfg.Console,
	}
	if verbose {
		loggerConfig.Level = "debug"
		loggerConfig.Console = true
	}
	if loggerConfig.LogFile != "" {
		loggerConfig.LogFile = utils.GetAbsPath(loggerConfig.LogFile)
	}
	logger.InitLogger(loggerConfig)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("adminctl"),
		kong.Description("Command line client for the admin console API."),
		kong.UsageOnError(),
	)
	rt := &Runtime{ctx: ctx, cli: cli, out: os.Stdout}
	err := kctx.Run(rt)
	if closeErr := rt.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "adminctl: shutdown: %v\n", closeErr)
	}
	kctx.FatalIfErrorf(err)
}
