// Package bootstrap builds every external client once at process start and
// injects them into the loop, the catalog and the aggregator.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"devflow/config"
	redisConn "devflow/config/redis"
	"devflow/internal/agent"
	"devflow/internal/agent/orchestrator"
	"devflow/internal/agent/tools"
	"devflow/internal/agent/validator"
	"devflow/internal/calendar"
	calendarUC "devflow/internal/calendar/usecase"
	"devflow/internal/chat"
	chatRepo "devflow/internal/chat/repository"
	"devflow/internal/chat/repository/memory"
	chatRedis "devflow/internal/chat/repository/redis"
	chatUC "devflow/internal/chat/usecase"
	"devflow/internal/issues"
	issuesUC "devflow/internal/issues/usecase"
	"devflow/internal/tasks"
	tasksUC "devflow/internal/tasks/usecase"
	"devflow/internal/workload"
	"devflow/internal/workload/source"
	workloadUC "devflow/internal/workload/usecase"
	"devflow/pkg/datemath"
	"devflow/pkg/gcalendar"
	"devflow/pkg/github"
	"devflow/pkg/googleauth"
	"devflow/pkg/gtasks"
	"devflow/pkg/langfuse"
	"devflow/pkg/llmprovider"
	"devflow/pkg/log"
)

// ChatService is the chat usecase plus its shutdown hook.
type ChatService interface {
	chat.UseCase
	Flush()
}

// App is the wired object graph shared by the API server and the CLI.
type App struct {
	Config   *config.Config
	Logger   log.Logger
	Location *time.Location

	LLM      *llmprovider.Manager
	Calendar *gcalendar.Client // nil when Google is not configured
	Tasks    *gtasks.Client    // nil when Google is not configured
	GitHub   *github.Client
	Langfuse *langfuse.Client
	Redis    *goredis.Client // nil unless session.store=redis

	Validator    *validator.Validator
	Catalog      *agent.Catalog
	Orchestrator *orchestrator.Orchestrator
	Workload     workload.UseCase
	TaskBoard    tasks.UseCase
	Agenda       calendar.UseCase
	Issues       issues.UseCase
	Sessions     chatRepo.Repository
	Chat         ChatService
}

// New wires the application. Google and GitHub are optional: their tools stay
// in the catalog and report the service as not configured.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: l}

	tz := cfg.Agent.Timezone
	resolver, err := datemath.NewResolver(tz)
	if err != nil {
		l.Warnf(ctx, "bootstrap.New: invalid timezone %q, falling back to UTC: %v", tz, err)
		tz = "UTC"
		resolver, _ = datemath.NewResolver(tz)
	}
	parser, _ := datemath.NewParser(tz)
	app.Location = resolver.Location()

	if err := app.initLLM(ctx); err != nil {
		return nil, err
	}
	app.initGoogle(ctx)
	app.GitHub = github.New(github.Config{Token: cfg.GitHub.Token, BaseURL: cfg.GitHub.BaseURL})
	if !app.GitHub.Configured() {
		l.Warn(ctx, "bootstrap.New: GITHUB_TOKEN not set, GitHub tools will report it")
	}

	app.Validator = validator.New(resolver, time.Now)
	app.Catalog, err = tools.NewCatalog(app.toolDeps(parser), app.Validator)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.New: %w", err)
	}

	app.Workload = workloadUC.New(app.workloadSources(), workloadUC.Config{
		SourceTimeout: cfg.Agent.SourceTimeout,
		Location:      app.Location,
	}, l)

	app.initViews(parser, l)

	app.Orchestrator = orchestrator.New(app.LLM, app.Catalog, app.Validator, app.Workload, orchestrator.Config{
		MaxIterations: cfg.Agent.MaxIterations,
		Location:      app.Location,
		Temperature:   cfg.LLM.Temperature,
	}, l)

	if err := app.initSessions(ctx); err != nil {
		return nil, err
	}

	app.Langfuse = langfuse.New(langfuse.Config{
		Enabled:   cfg.Observability.Enabled,
		Host:      cfg.Observability.Host,
		PublicKey: cfg.Observability.PublicKey,
		SecretKey: cfg.Observability.SecretKey,
	})
	var sink langfuse.Sink
	if app.Langfuse.Enabled() {
		sink = app.Langfuse
	}

	app.Chat = chatUC.New(app.Orchestrator, app.Sessions, chatUC.Config{
		Sink:     sink,
		Services: app.services(),
	}, l)

	l.Infof(ctx, "bootstrap.New: %d tools, model %s, sessions in %s", len(app.Catalog.Names()), app.LLM.Model(), cfg.Session.Store)
	return app, nil
}

// Close flushes pending traces and releases connections.
func (app *App) Close() error {
	if app.Chat != nil {
		app.Chat.Flush()
	}
	return redisConn.Disconnect(app.Redis)
}

func (app *App) initLLM(ctx context.Context) error {
	providers, err := llmprovider.InitializeProviders(&app.Config.LLM, app.Logger)
	if err != nil {
		return fmt.Errorf("bootstrap.initLLM: %w", err)
	}
	app.LLM = llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&app.Config.LLM), app.Logger)
	return nil
}

func (app *App) initGoogle(ctx context.Context) {
	g := app.Config.Google
	if g.CredentialsPath == "" {
		app.Logger.Warn(ctx, "bootstrap.initGoogle: google.credentials_path not set, calendar and tasks disabled")
		return
	}

	ts, err := googleauth.TokenSourceFromFile(ctx, g.CredentialsPath, g.TokenPath)
	if err != nil {
		app.Logger.Warnf(ctx, "bootstrap.initGoogle: %v", err)
		app.Logger.Warn(ctx, "bootstrap.initGoogle: run `go run ./scripts/gcal-auth` to create the token")
		return
	}

	if app.Calendar, err = gcalendar.New(ctx, option.WithTokenSource(ts)); err != nil {
		app.Logger.Warnf(ctx, "bootstrap.initGoogle: calendar: %v", err)
		app.Calendar = nil
	}
	if app.Tasks, err = gtasks.New(ctx, g.TaskListName, option.WithTokenSource(ts)); err != nil {
		app.Logger.Warnf(ctx, "bootstrap.initGoogle: tasks: %v", err)
		app.Tasks = nil
	}
}

func (app *App) initSessions(ctx context.Context) error {
	s := app.Config.Session
	if s.Store != config.SessionStoreRedis {
		app.Sessions = memory.New(s.Capacity, s.TTL, app.Logger)
		return nil
	}

	client, err := redisConn.Connect(ctx, app.Config.Redis)
	if err != nil {
		return fmt.Errorf("bootstrap.initSessions: %w", err)
	}
	app.Redis = client
	app.Sessions = chatRedis.New(client, s.TTL, app.Logger)
	return nil
}

// toolDeps leaves absent clients as nil interfaces, never typed nil pointers.
func (app *App) toolDeps(parser *datemath.Parser) tools.Deps {
	d := tools.Deps{
		GitHub:         app.GitHub,
		CalendarID:     app.Config.Google.CalendarID,
		Clock:          tools.Clock{Location: app.Location, Now: time.Now},
		Parser:         parser,
		WorkHoursStart: app.Config.Agent.WorkingHoursStart,
		WorkHoursEnd:   app.Config.Agent.WorkingHoursEnd,
		Logger:         app.Logger,
	}
	if app.Calendar != nil {
		d.Calendar = app.Calendar
	}
	if app.Tasks != nil {
		d.Tasks = app.Tasks
	}
	return d
}

func (app *App) workloadSources() workloadUC.Sources {
	var src workloadUC.Sources
	if app.Tasks != nil {
		src.Tasks = source.NewTasks(app.Tasks)
	}
	if app.Calendar != nil {
		src.Calendar = source.NewCalendar(app.Calendar, app.Config.Google.CalendarID)
	}
	if app.GitHub.Configured() {
		src.Issues = source.NewGitHub(app.GitHub, app.Config.GitHub.SearchLimit)
	}
	return src
}

// initViews builds the read-only usecases behind /tasks, /calendar and
// /github. Missing Google clients stay nil interfaces so the usecases report
// themselves as not configured.
func (app *App) initViews(parser *datemath.Parser, l log.Logger) {
	var lister tasksUC.Lister
	if app.Tasks != nil {
		lister = app.Tasks
	}
	app.TaskBoard = tasksUC.New(lister, tasksUC.Config{Location: app.Location}, l)

	var events calendarUC.EventLister
	if app.Calendar != nil {
		events = app.Calendar
	}
	app.Agenda = calendarUC.New(events, parser, calendarUC.Config{CalendarID: app.Config.Google.CalendarID}, l)

	app.Issues = issuesUC.New(app.GitHub, app.Config.GitHub.SearchLimit, l)
}
