package usecase

import (
	"time"

	"taskdates/internal/task/repository"
	"taskdates/pkg/dateparse"
	"taskdates/pkg/gcalendar"
	pkgLog "taskdates/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	parser     *dateparse.Parser
	calendar   *gcalendar.Client // optional; nil disables calendar mirroring
	calendarID string

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil when
// Google Calendar mirroring is not configured.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *dateparse.Parser,
	calendar *gcalendar.Client,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		parser:     parser,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}
