package finder

import (
	"context"
	"time"

	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/internal/service/query"
	"github.com/sandevgo/scoutbot/internal/service/render"
	"github.com/sandevgo/scoutbot/internal/service/search"
	"github.com/sandevgo/scoutbot/pkg/log"
)

// connected reports which platforms a user currently has live sessions on.
type connected interface {
	Connected(userID string) []core.Platform
}

// Finder is the freeform-query pipeline: interpret the raw text, search the
// history store per platform, render the capped reply.
type Finder struct {
	interp *query.Interpreter
	engine *search.Engine
	fmtr   *render.Formatter
	conns  connected
	nowFn  func() time.Time
}

func NewFinder(store core.HistoryRepository, conns connected) *Finder {
	return &Finder{
		interp: query.NewInterpreter(),
		engine: search.NewEngine(store),
		fmtr:   render.NewFormatter(),
		conns:  conns,
		nowFn:  time.Now,
	}
}

// Run answers one raw query for one user. When the text names no platform,
// the user's currently connected platforms are searched instead.
func (f *Finder) Run(ctx context.Context, userID, raw string) string {
	q := f.interp.Parse(raw)
	if len(q.Platforms) == 0 {
		q.Platforms = f.conns.Connected(userID)
	}

	results := f.engine.Search(userID, q, f.nowFn())

	log.FromCtx(ctx).Debug().
		Str("user", userID).
		Int("platforms", len(q.Platforms)).
		Str("range", string(q.Range)).
		Strs("keywords", q.Keywords).
		Int("matched_platforms", len(results)).
		Msg("query executed")

	return f.fmtr.Format(q, results)
}
