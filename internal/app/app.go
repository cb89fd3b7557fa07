package app

import (
	"context"
	"time"

	"github.com/ayxworxfr/go_admin_client/internal/config"
	"github.com/ayxworxfr/go_admin_client/internal/service"
	"github.com/ayxworxfr/go_admin_client/pkg/httpclient"
	"github.com/ayxworxfr/go_admin_client/pkg/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Version 客户端版本，同时作为 User-Agent 与追踪资源属性
const Version = "1.0.0"

type App struct {
	config    *config.Config
	client    *httpclient.Client
	session   *Session
	transport *Transport
	initFuncs []func(ctx context.Context) error
	exitFuncs []func(ctx context.Context) error
}

// NewApp 根据配置组装 httpclient、会话与传输层
func NewApp(cfg *config.Config, opts ...httpclient.Option) *App {
	session := NewSession(cfg.Auth.ExpirySkew)
	options := []httpclient.Option{
		httpclient.WithTimeout(cfg.Client.Timeout),
		httpclient.WithRetries(cfg.Client.Retries),
		httpclient.WithBackoff(cfg.Client.Backoff),
		httpclient.WithHeader("User-Agent", "adminctl/"+Version),
		httpclient.WithTokenSource(session.Token),
	}
	for key, value := range cfg.Client.Headers {
		options = append(options, httpclient.WithHeader(key, value))
	}
	client := httpclient.NewClient(cfg.Client.BaseURL, append(options, opts...)...)

	a := &App{
		config:    cfg,
		client:    client,
		session:   session,
		transport: NewTransport(client),
	}
	a.RegisterInit(func(ctx context.Context) error {
		return service.Init(a.transport)
	})
	return a
}

func (a *App) Config() *config.Config { return a.config }

func (a *App) Session() *Session { return a.session }

func (a *App) Transport() *Transport { return a.transport }

// Start 依次执行初始化函数，遇到错误立即返回
func (a *App) Start(ctx context.Context) error {
	logger.Info(ctx, "Starting client", zap.String("base_url", a.config.Client.BaseURL))
	for _, fun := range a.initFuncs {
		if err := fun(ctx); err != nil {
			return errors.Wrap(err, "failed to initialize application")
		}
	}
	return nil
}

// Login 建立会话：配置了 token 时直接使用，否则用用户名密码登录
func (a *App) Login(ctx context.Context) error {
	auth := a.config.Auth
	if auth.Token != "" {
		a.session.SetToken(ctx, auth.Token)
		if a.session.Expired() {
			logger.Warn(ctx, "Configured token is expired", zap.Time("expires_at", a.session.ExpiresAt()))
		}
		return nil
	}
	if auth.Username == "" {
		return errors.New("no credentials configured: set auth.token or auth.username")
	}
	data, err := service.AuthServiceInstance.Login(ctx, auth.Username, auth.Password)
	if err != nil {
		return errors.Wrapf(err, "login as %s", auth.Username)
	}
	a.session.Apply(ctx, data)
	logger.Info(ctx, "Login successful", zap.String("username", data.User.UserName), zap.Strings("roles", data.User.Roles))
	return nil
}

func (a *App) RegisterInit(initFuncs ...func(ctx context.Context) error) {
	a.initFuncs = append(a.initFuncs, initFuncs...)
}

func (a *App) RegisterExit(exitFuncs ...func(ctx context.Context) error) {
	a.exitFuncs = append(a.exitFuncs, exitFuncs...)
}

// Shutdown 执行全部退出函数，错误汇总后返回
func (a *App) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var result *multierror.Error
	for _, fun := range a.exitFuncs {
		if err := fun(ctx); err != nil {
			logger.Error(ctx, "Exit hook failed", zap.Error(err))
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
