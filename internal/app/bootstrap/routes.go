// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	healthfeature "github.com/lumenadvising/lumenhub/internal/app/features/health"
	studentsfeature "github.com/lumenadvising/lumenhub/internal/app/features/students"
	"github.com/lumenadvising/lumenhub/internal/app/roster"
	mentorstore "github.com/lumenadvising/lumenhub/internal/app/store/mentors"
	servicestore "github.com/lumenadvising/lumenhub/internal/app/store/services"
	studentstore "github.com/lumenadvising/lumenhub/internal/app/store/students"
	"github.com/lumenadvising/lumenhub/internal/app/system/notify"
	"github.com/lumenadvising/lumenhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app. WAFFLE calls this after configuration, DB connection, schema
// setup, and Startup have completed.
//
// Besides mounting routes, this is where the read side is assembled: the
// change bus, the stores, and the roster cache, which is primed here so
// the first list request never hits a cold cache.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.LumenHubMongoDatabase

	bus := notify.New(logger)
	studentStore := studentstore.New(db)
	serviceStore := servicestore.New(db)
	mentorStore := mentorstore.New(db)

	rosterStore := roster.NewStore(studentStore, logger)
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Medium())
	defer cancel()
	if err := rosterStore.Start(ctx, bus); err != nil {
		logger.Error("roster prime failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.LumenHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Student roster and mentor-team editing
	studentsHandler := studentsfeature.NewHandler(rosterStore, studentStore, serviceStore, mentorStore, bus, logger)
	r.Mount("/students", studentsfeature.Routes(studentsHandler))
	r.Mount("/services", studentsfeature.ServiceRoutes(studentsHandler))

	return r, nil
}
