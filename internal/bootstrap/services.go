package bootstrap

import (
	"context"
	"fmt"
	"time"

	"devflow/internal/chat"
	"devflow/pkg/gcalendar"
	"devflow/pkg/llmprovider"
)

// services builds the reachability checks behind GET /api/v1/status. An
// unconfigured service gets a nil Check and is reported as such.
func (app *App) services() []chat.Service {
	services := []chat.Service{
		{Name: chat.ServiceModel, Check: app.checkModel},
		{Name: chat.ServiceGoogle},
		{Name: chat.ServiceGitHub},
	}
	if app.Calendar != nil && app.Tasks != nil {
		services[1].Check = app.checkGoogle
	}
	if app.GitHub.Configured() {
		services[2].Check = app.checkGitHub
	}
	return services
}

func (app *App) checkModel(ctx context.Context) error {
	_, err := app.LLM.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{{
			Role:  llmprovider.RoleUser,
			Parts: []llmprovider.Part{{Text: "ping"}},
		}},
		MaxTokens: 1,
	})
	return err
}

func (app *App) checkGoogle(ctx context.Context) error {
	now := time.Now()
	if _, err := app.Calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: app.Config.Google.CalendarID,
		TimeMin:    now,
		TimeMax:    now.Add(time.Hour),
		MaxResults: 1,
	}); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	if _, err := app.Tasks.EnsureTaskList(ctx); err != nil {
		return fmt.Errorf("tasks: %w", err)
	}
	return nil
}

func (app *App) checkGitHub(ctx context.Context) error {
	_, err := app.GitHub.CurrentUser(ctx)
	return err
}
