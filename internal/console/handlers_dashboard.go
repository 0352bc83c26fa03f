package console

import (
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/hooks"
	"github.com/Artexxx/HR-Console/internal/notify"
	"github.com/Artexxx/HR-Console/internal/pages"
)

const activityLimit = 100

func (s *Service) index(ctx *fasthttp.RequestCtx) {
	ctx.Redirect("/employees", fasthttp.StatusFound)
}

func (s *Service) dashboard(ctx *fasthttp.RequestCtx) {
	state := hooks.NewStats(s.employees).Mount(ctx)

	s.page(ctx, fasthttp.StatusOK, "dashboard.html", "Dashboard", takeFlash(ctx), pages.Dashboard(state))
}

type activityData struct {
	Disabled bool
	Error    string
	Events   []dto.ActivityEvent
	DLQ      []dto.ActivityDLQ
}

func (s *Service) activityJournal(ctx *fasthttp.RequestCtx) {
	flash := takeFlash(ctx)

	if s.activity == nil {
		s.page(ctx, fasthttp.StatusOK, "activity.html", "Activity", flash, activityData{Disabled: true})
		return
	}

	var data activityData

	events, err := s.activity.ListEvents(ctx, activityLimit)
	if err != nil {
		log.Error().Err(err).Msg("activityRepository.ListEvents")
		data.Error = "Failed to fetch activity"
	}

	dlq, err := s.activity.ListDLQ(ctx, activityLimit)
	if err != nil {
		log.Error().Err(err).Msg("activityRepository.ListDLQ")
		data.Error = "Failed to fetch activity"
	}

	data.Events, data.DLQ = events, dlq

	s.page(ctx, fasthttp.StatusOK, "activity.html", "Activity", flash, data)
}

func (s *Service) healthHandler(ctx *fasthttp.RequestCtx) {
	ok(ctx, "OK")
}

type errorData struct {
	Status  int
	Message string
}

func (s *Service) fail(ctx *fasthttp.RequestCtx, status int, msg string) {
	s.page(ctx, status, "error.html", "Error", nil, errorData{Status: status, Message: msg})
}

func (s *Service) page(ctx *fasthttp.RequestCtx, status int, name, title string, flash []notify.Message, data any) {
	err := s.views.render(ctx, status, name, PageData{Title: title, Flash: flash, Data: data})
	if err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
	}
}
