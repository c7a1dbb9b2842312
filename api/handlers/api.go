package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Sami21234/lostfound-backend/api"
	"github.com/Sami21234/lostfound-backend/api/scheduler"
	"github.com/Sami21234/lostfound-backend/config"
	"github.com/Sami21234/lostfound-backend/databases"
	"github.com/Sami21234/lostfound-backend/mailer"
	"github.com/Sami21234/lostfound-backend/matching"
	"github.com/Sami21234/lostfound-backend/models"
	"github.com/Sami21234/lostfound-backend/uploads"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler

	dbHelper databases.DatabaseHelper
	photos   uploads.PhotoStore
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	ldb := databases.NewLostReportDatabase(a.dbHelper)
	fdb := databases.NewFoundReportDatabase(a.dbHelper)

	matchCfg := matching.DefaultConfig()
	if a.Config.MatchWeakThreshold > 0 {
		matchCfg.WeakThreshold = a.Config.MatchWeakThreshold
	}
	if a.Config.MatchStrongThreshold > 0 {
		matchCfg.StrongThreshold = a.Config.MatchStrongThreshold
	}
	sender := mailer.NewSendgridSender(a.Config.MailFromName, a.Config.MailFrom)

	l := Lost{DB: ldb, Photos: a.photos}
	f := Found{
		DB:       fdb,
		LDB:      ldb,
		Photos:   a.photos,
		Resolver: matching.NewResolver(ldb, sender, matchCfg),
	}
	items := Items{LDB: ldb, FDB: fdb}
	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	cloudinaryHandler := CloudinaryHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/report-lost", http.HandlerFunc(l.CreateLostReportHandler)).Methods("POST")
	apiCreate.Handle("/report-found", http.HandlerFunc(f.CreateFoundReportHandler)).Methods("POST")

	apiCreate.Handle("/items", http.HandlerFunc(items.ItemsHandler)).Methods("GET")
	apiCreate.Handle("/lost", http.HandlerFunc(l.LostReportsHandler)).Methods("GET")
	apiCreate.Handle("/found", http.HandlerFunc(f.FoundReportsHandler)).Methods("GET")

	apiCreate.Handle("/lost/{id}", http.HandlerFunc(l.DeleteLostReportHandler)).Methods("DELETE")
	apiCreate.Handle("/found/{id}", http.HandlerFunc(f.DeleteFoundReportHandler)).Methods("DELETE")

	apiCreate.Handle("/mark-as-found/{lostId}", api.Middleware(http.HandlerFunc(l.MarkAsFoundHandler))).Methods("POST")

	apiCreate.Handle("/user/register", http.HandlerFunc(u.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/user/login", http.HandlerFunc(u.LoginHandler)).Methods("POST")

	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(cloudinaryHandler.GenerateSignature))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("lostfound-backend has connected to the database")

	photos, err := uploads.NewCloudinaryStore()
	if err != nil {
		// photo uploads are optional, report submissions still work without
		// an image
		zap.S().With(err).Warn("cloudinary not configured, image uploads disabled")
	} else {
		a.photos = photos
	}

	sender := mailer.NewSendgridSender(a.Config.MailFromName, a.Config.MailFrom)
	a.Scheduler = scheduler.NewScheduler(
		databases.NewLostReportDatabase(a.dbHelper),
		databases.NewFoundReportDatabase(a.dbHelper),
		sender,
		a.Config.ReportTTLDays,
	)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
