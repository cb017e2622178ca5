package controllers

import (
	"net/http"

	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
	"github.com/haneulsoft/weddingmoa-backend/pkg/redis"
)

// HealthController exposes liveness and readiness probes.
type HealthController struct {
	db    db.Pinger
	cache redis.Pinger
	logg  *logger.Logger
}

func NewHealthController(database db.Pinger, cache redis.Pinger, logg *logger.Logger) *HealthController {
	return &HealthController{db: database, cache: cache, logg: logg}
}

// Live reports process liveness only.
func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

// Ready verifies the dependencies the API cannot serve without.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"db": "ok", "redis": "ok"}
	healthy := true

	if c.db != nil {
		if err := c.db.Ping(r.Context()); err != nil {
			checks["db"] = "unavailable"
			healthy = false
		}
	}
	if c.cache != nil {
		if err := c.cache.Ping(r.Context()); err != nil {
			checks["redis"] = "unavailable"
			healthy = false
		}
	}

	if !healthy {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeDependency, "dependencies unavailable").WithDetails(checks))
		return
	}
	responses.WriteSuccess(w, checks)
}
