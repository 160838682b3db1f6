package controllers

import (
	"net/http"

	"github.com/brewtrack/brewery-backend/api/responses"
	"github.com/brewtrack/brewery-backend/pkg/config"
	"github.com/brewtrack/brewery-backend/pkg/db"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
	"github.com/brewtrack/brewery-backend/pkg/logger"
	"github.com/brewtrack/brewery-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Brewery-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady fails when the database or cache backend is unreachable. A nil
// cache pinger means caching is disabled and readiness skips it.
func HealthReady(cfg *config.Config, dbPinger db.Pinger, cachePinger redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Brewery-Env", cfg.App.Env)

		if dbPinger != nil {
			if err := dbPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		if cachePinger != nil {
			if err := cachePinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cache unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
