package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/realjbmangum/clarkstark/internal/bodymetrics"
	"github.com/realjbmangum/clarkstark/internal/challenge"
	"github.com/realjbmangum/clarkstark/internal/config"
	"github.com/realjbmangum/clarkstark/internal/dashboard"
	"github.com/realjbmangum/clarkstark/internal/db"
	"github.com/realjbmangum/clarkstark/internal/foodsearch"
	"github.com/realjbmangum/clarkstark/internal/goals"
	"github.com/realjbmangum/clarkstark/internal/middleware"
	"github.com/realjbmangum/clarkstark/internal/nutrition"
	"github.com/realjbmangum/clarkstark/internal/plans"
	"github.com/realjbmangum/clarkstark/internal/recipes"
	"github.com/realjbmangum/clarkstark/internal/settings"
	"github.com/realjbmangum/clarkstark/internal/streak"
	"github.com/realjbmangum/clarkstark/internal/supplements"
	"github.com/realjbmangum/clarkstark/internal/telemetry/metrics"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/internal/verse"
	"github.com/realjbmangum/clarkstark/internal/water"
	"github.com/realjbmangum/clarkstark/internal/workouts"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	bibleApiBaseURL = "https://api.scripture.api.bible/v1"
	usdaApiBaseURL  = "https://api.nal.usda.gov/fdc/v1"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	bibleApi *verse.BibleApi
	usdaApi  *foodsearch.UsdaApi

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	BibleApiKey             string
	UsdaApiKey              string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "clarkstark-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		usdaApi:     foodsearch.NewUsdaApi(usdaApiBaseURL, usdaApiKeyOrDemo(params.UsdaApiKey), tracedHttpClient),

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	// without an API key the curated verse texts are served directly
	if params.BibleApiKey != "" {
		s.bibleApi = verse.NewBibleApi(bibleApiBaseURL, params.BibleApiKey, tracedHttpClient)
	} else {
		log.Warnln("bible api key not set, serving curated verse texts only")
	}

	return s, nil
}

// usdaApiKeyOrDemo falls back to the rate limited DEMO_KEY the way the
// USDA API documents it.
func usdaApiKeyOrDemo(apiKey string) string {
	if apiKey == "" {
		log.Warnln("usda api key not set, using DEMO_KEY")
		return "DEMO_KEY"
	}
	return apiKey
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	limitWrites := func(routerName string, handlerFunc http.HandlerFunc) http.Handler {
		return middleware.RateLimit(
			reqRateLimiter,
			routerName,
			s.config.WriteRateLimitAllowedPerMin,
			s.metricsManager,
		)(handlerFunc)
	}

	settingsRepo := settings.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)
	nutritionRepo := nutrition.NewRepo(s.dbPool)
	waterRepo := water.NewRepo(s.dbPool)
	bodyMetricsRepo := bodymetrics.NewRepo(s.dbPool)
	goalsRepo := goals.NewRepo(s.dbPool)
	supplementsRepo := supplements.NewRepo(s.dbPool)

	streakHandler := streak.NewHandler(
		streak.NewService(streak.NewRepo(s.dbPool)),
		s.metricsManager,
	)
	r.HandleFunc("/api/streak", streakHandler.HandleGet).Methods("GET").Name("get-streak")
	r.Handle("/api/streak", limitWrites("streak", streakHandler.HandleRecordEvent)).Methods("POST", "OPTIONS").Name("record-streak-event")

	challengeHandler := challenge.NewHandler(
		challenge.NewService(challenge.NewRepo(s.dbPool), settingsRepo),
	)
	r.HandleFunc("/api/challenge", challengeHandler.HandleGet).Methods("GET").Name("get-challenge")

	workoutsHandler := workouts.NewHandler(workoutsRepo, s.metricsManager)
	r.HandleFunc("/api/workouts", workoutsHandler.HandleList).Methods("GET").Name("list-workouts")
	r.Handle("/api/workouts", limitWrites("workouts", workoutsHandler.HandleAdd)).Methods("POST", "OPTIONS").Name("log-workout")

	nutritionHandler := nutrition.NewHandler(nutritionRepo, s.metricsManager)
	r.HandleFunc("/api/nutrition", nutritionHandler.HandleGet).Methods("GET").Name("get-nutrition")
	r.Handle("/api/nutrition", limitWrites("nutrition", nutritionHandler.HandleLog)).Methods("POST", "OPTIONS").Name("log-nutrition")

	waterHandler := water.NewHandler(waterRepo, settingsRepo, s.metricsManager)
	r.HandleFunc("/api/water", waterHandler.HandleGet).Methods("GET").Name("get-water")
	r.Handle("/api/water", limitWrites("water", waterHandler.HandleAdd)).Methods("POST", "OPTIONS").Name("log-water")

	bodyMetricsHandler := bodymetrics.NewHandler(bodyMetricsRepo, settingsRepo)
	r.HandleFunc("/api/metrics", bodyMetricsHandler.HandleGet).Methods("GET").Name("get-body-metrics")
	r.Handle("/api/metrics", limitWrites("body-metrics", bodyMetricsHandler.HandleLog)).Methods("POST", "OPTIONS").Name("log-body-metrics")

	goalsHandler := goals.NewHandler(goalsRepo)
	r.HandleFunc("/api/goals", goalsHandler.HandleList).Methods("GET").Name("list-goals")
	r.Handle("/api/goals", limitWrites("goals", goalsHandler.HandleAction)).Methods("POST", "OPTIONS").Name("goal-action")

	supplementsHandler := supplements.NewHandler(supplementsRepo)
	r.HandleFunc("/api/supplements", supplementsHandler.HandleGet).Methods("GET").Name("list-supplements")
	r.Handle("/api/supplements", limitWrites("supplements", supplementsHandler.HandleAction)).Methods("POST", "OPTIONS").Name("supplement-action")

	settingsHandler := settings.NewHandler(settingsRepo)
	r.HandleFunc("/api/settings", settingsHandler.HandleGetAll).Methods("GET").Name("get-settings")
	r.Handle("/api/settings", limitWrites("settings", settingsHandler.HandleUpdate)).Methods("PUT", "OPTIONS").Name("update-settings")

	recipesHandler := recipes.NewHandler(recipes.NewRepo(s.dbPool))
	r.HandleFunc("/api/recipes", recipesHandler.HandleGet).Methods("GET").Name("get-recipes")
	r.Handle("/api/recipes", limitWrites("recipes", recipesHandler.HandleSave)).Methods("POST", "OPTIONS").Name("save-recipe")
	r.Handle("/api/recipes", limitWrites("recipes-delete", recipesHandler.HandleDelete)).Methods("DELETE").Name("delete-recipe")

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(
		workoutsRepo,
		nutritionRepo,
		waterRepo,
		bodyMetricsRepo,
		goalsRepo,
		settingsRepo,
		supplementsRepo,
	))
	r.HandleFunc("/api/dashboard", dashboardHandler.HandleGet).Methods("GET").Name("get-dashboard")

	plansHandler := plans.NewHandler(plans.NewService())
	r.HandleFunc("/api/plans/workouts", plansHandler.HandleWorkouts).Methods("GET").Name("get-workout-plans")
	r.HandleFunc("/api/plans/meals", plansHandler.HandleMealPlan).Methods("GET").Name("get-meal-plan")
	r.HandleFunc("/api/plans/playlists", plansHandler.HandlePlaylists).Methods("GET").Name("get-playlists")

	verseRepo := verse.NewRepo(s.dbPool)
	var verseHandler *verse.Handler
	if s.bibleApi != nil {
		verseHandler = verse.NewHandler(verse.NewService(verseRepo, s.bibleApi))
	} else {
		verseHandler = verse.NewHandler(verse.NewService(verseRepo, nil))
	}
	r.HandleFunc("/api/verse", verseHandler.HandleGet).Methods("GET").Name("get-verse")

	foodSearchHandler := foodsearch.NewHandler(s.usdaApi)
	r.HandleFunc("/api/food-search", foodSearchHandler.HandleSearch).Methods("GET").Name("food-search")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
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

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
