package app

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/morehouse/pizzashack/config"
	"github.com/morehouse/pizzashack/pkg/metrics"
	"github.com/morehouse/pizzashack/pkg/middleware"
	"github.com/morehouse/pizzashack/pkg/reqid"
	"github.com/morehouse/pizzashack/pkg/response"
	"github.com/morehouse/pizzashack/pkg/router"
)

// Handler returns the HTTP handler, building it on first use.
func (a *Application) Handler() http.Handler {
	a.build()
	return a.handler
}

func (a *Application) build() {
	a.once.Do(func() {
		r := router.New()

		// Outermost first: metrics see total latency, recovery sits below
		// them, and the request id exists before anything logs.
		r.Use(metrics.Middleware())
		r.Use(middleware.Recovery)
		r.Use(reqid.Middleware())
		r.Use(middleware.Logger)
		r.Use(middleware.CORS(config.CORSOrigin()))
		r.Use(chimw.StripSlashes)

		r.HandleFunc("/metrics", metrics.Handler())
		r.Get("/health", "health", a.health)

		for _, fn := range a.routesFns {
			fn(r, a.db)
		}

		a.router = r
		a.handler = r.Handler()
	})
}

func (a *Application) health(w http.ResponseWriter, req *http.Request) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(req.Context())
	}
	if err != nil {
		response.Error(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
