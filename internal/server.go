package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"gorm.io/gorm"

	"github.com/2beens/rfatracker/internal/config"
	"github.com/2beens/rfatracker/internal/db"
	"github.com/2beens/rfatracker/internal/i18n"
	"github.com/2beens/rfatracker/internal/instrumentation"
	"github.com/2beens/rfatracker/internal/middleware"
	"github.com/2beens/rfatracker/internal/settings"
	"github.com/2beens/rfatracker/internal/skills"
	"github.com/2beens/rfatracker/internal/telemetry/tracing"
	"github.com/2beens/rfatracker/internal/workouts"
	"github.com/2beens/rfatracker/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	gdb    *gorm.DB

	skillsRepo      *skills.Repo
	workoutsService *workouts.Service
	i18nStore       *i18n.Store

	// telemetry
	instr        *instrumentation.Instrumentation
	promRegistry *prometheus.Registry
	otelShutdown func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	// user settings first, the rest of the startup depends on the language
	userSettings, err := settings.Load(params.Config.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	log.Debugf("settings loaded, language: %s", userSettings.Language)

	gdb, err := db.Open(params.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Bootstrap(ctx, gdb); err != nil {
		return nil, fmt.Errorf("bootstrap db: %w", err)
	}

	skillsRepo := skills.NewRepo(gdb)
	workoutsService := workouts.NewService(skillsRepo, workouts.NewRepo(gdb))

	i18nStore, err := i18n.NewStore(
		ctx,
		i18n.NewRepo(gdb),
		skillsRepo,
		params.Config.SettingsPath,
		userSettings.Language,
	)
	if err != nil {
		return nil, fmt.Errorf("new i18n store: %w", err)
	}

	otelShutdown, err := tracing.Setup(params.Config.TracingEnabled, "rfa-tracker")
	if err != nil {
		return nil, err
	}

	promRegistry := prometheus.NewRegistry()
	instr := instrumentation.NewInstrumentationWithRegisterer("rfatracker", "main", promRegistry)
	instr.GaugeLifeSignal.Set(0)

	return &Server{
		config:          params.Config,
		versionInfo:     params.VersionInfo,
		gdb:             gdb,
		skillsRepo:      skillsRepo,
		workoutsService: workoutsService,
		i18nStore:       i18nStore,
		instr:           instr,
		promRegistry:    promRegistry,
		otelShutdown:    otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("rfa-router"))

	skillsHandler := skills.NewHandler(
		s.skillsRepo,
		skills.NewAnalyzer(s.skillsRepo),
		s.instr,
	)
	r.HandleFunc("/skills", skillsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-skills")
	r.HandleFunc("/skills/progress", skillsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("skills-progress")
	r.HandleFunc("/skills/progress/total", skillsHandler.HandleTotalProgress).Methods("GET", "OPTIONS").Name("skills-progress-total")
	r.HandleFunc("/skills/{name}", skillsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-skill")
	r.HandleFunc("/skills/{name}/reps", skillsHandler.HandleSetReps).Methods("PUT", "OPTIONS").Name("set-skill-reps")
	r.HandleFunc("/skills/{name}/reps", skillsHandler.HandleIncrementReps).Methods("POST").Name("increment-skill-reps")

	workoutsHandler := workouts.NewHandler(s.workoutsService, s.instr)
	r.HandleFunc("/workouts", workoutsHandler.HandleLog).Methods("POST", "OPTIONS").Name("log-workout")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")

	i18nHandler := i18n.NewHandler(s.i18nStore, s.instr)
	r.HandleFunc("/i18n/strings", i18nHandler.HandleGetStrings).Methods("GET", "OPTIONS").Name("i18n-strings")
	r.HandleFunc("/i18n/languages", i18nHandler.HandleGetLanguages).Methods("GET", "OPTIONS").Name("i18n-languages")
	r.HandleFunc("/i18n/language", i18nHandler.HandleSwitchLanguage).Methods("PUT", "OPTIONS").Name("i18n-switch-language")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.instr))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.instr))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.instr.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.instr.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.gdb != nil {
		if err := db.Close(s.gdb); err != nil {
			log.Errorf("failed to close db: %s", err)
		} else {
			log.Debugln("db closed")
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}
	log.Warnln("server shut down")

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.instr.GaugeRequests.Add(1)
	case http.StateClosed:
		s.instr.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
