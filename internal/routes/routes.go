package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/venue-site/internal/auth"
	"github.com/BruksfildServices01/venue-site/internal/cache"
	"github.com/BruksfildServices01/venue-site/internal/config"
	domainAppointment "github.com/BruksfildServices01/venue-site/internal/domain/appointment"
	domainGame "github.com/BruksfildServices01/venue-site/internal/domain/game"
	domainHall "github.com/BruksfildServices01/venue-site/internal/domain/hallofshame"
	domainUser "github.com/BruksfildServices01/venue-site/internal/domain/user"
	"github.com/BruksfildServices01/venue-site/internal/handlers"
	"github.com/BruksfildServices01/venue-site/internal/middleware"
	"github.com/BruksfildServices01/venue-site/internal/storage"
	"github.com/BruksfildServices01/venue-site/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/venue-site/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/venue-site/internal/usecase/auth"
	ucGame "github.com/BruksfildServices01/venue-site/internal/usecase/game"
	ucHall "github.com/BruksfildServices01/venue-site/internal/usecase/hallofshame"
	ucMedia "github.com/BruksfildServices01/venue-site/internal/usecase/media"
	"github.com/BruksfildServices01/venue-site/internal/web"
)

const (
	cacheGames       = "games"
	cacheHallOfShame = "hall-of-shame"
)

type Repositories struct {
	Appointments domainAppointment.Repository
	Games        domainGame.Repository
	Entries      domainHall.Repository
	Users        domainUser.Repository
}

// Deps is everything the router needs. Cache, Objects and Gatherer are
// optional; leaving one nil switches the matching feature off.
type Deps struct {
	Config *config.Config
	Logger *slog.Logger
	Repos  Repositories
	Tokens *auth.TokenService

	Cache    cache.Store
	Objects  storage.ObjectStore
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.VenueTimezone)

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.SetHTMLTemplate(web.Templates())

	// ======================================================
	// USE CASES
	// ======================================================
	apRepo := d.Repos.Appointments
	listAppointmentsUC := ucAppointment.NewListAppointments(apRepo)
	createAppointmentUC := ucAppointment.NewCreateAppointment(apRepo, loc)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(apRepo, loc)
	reviewAppointmentUC := ucAppointment.NewReviewAppointment(apRepo)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(apRepo)

	listGamesUC := ucGame.NewListGames(d.Repos.Games)
	createGameUC := ucGame.NewCreateGame(d.Repos.Games)
	deleteGameUC := ucGame.NewDeleteGame(d.Repos.Games)

	listEntriesUC := ucHall.NewListEntries(d.Repos.Entries)
	statsUC := ucHall.NewLeaderboardStats(d.Repos.Entries)
	createEntryUC := ucHall.NewCreateEntry(d.Repos.Entries)
	updateEntryUC := ucHall.NewUpdateEntry(d.Repos.Entries)
	deleteEntryUC := ucHall.NewDeleteEntry(d.Repos.Entries)

	loginUC := ucAuth.NewLogin(d.Repos.Users, d.Tokens)
	createUserUC := ucAuth.NewCreateUser(d.Repos.Users)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, d.Tokens, cfg.IsProduction())
	userHandler := handlers.NewUserHandler(createUserUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		createAppointmentUC,
		updateAppointmentUC,
		reviewAppointmentUC,
		deleteAppointmentUC,
	)
	gameHandler := handlers.NewGameHandler(listGamesUC, createGameUC, deleteGameUC)
	hallHandler := handlers.NewHallOfShameHandler(
		listEntriesUC,
		statsUC,
		createEntryUC,
		updateEntryUC,
		deleteEntryUC,
	)
	adminWebHandler := handlers.NewAdminWebHandler(d.Tokens)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// ADMIN PAGES (HTML)
	// ======================================================
	admin := r.Group(middleware.AdminPrefix)
	admin.Use(middleware.SessionGate(d.Tokens))
	{
		admin.GET("", adminWebHandler.Dashboard)
		admin.GET("/login", adminWebHandler.LoginPage)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	session := middleware.RequireSession(d.Tokens)
	ttl := cfg.CacheTTL
	cached := func(prefix string) gin.HandlerFunc {
		return middleware.ResponseCache(d.Cache, prefix, ttl, d.Logger)
	}
	invalidate := func(prefix string) gin.HandlerFunc {
		return middleware.InvalidateCache(d.Cache, prefix, d.Logger)
	}

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)

		api.POST("/users", session, userHandler.Create)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", session, appointmentHandler.List)
		api.PUT("/appointments/:id", session, appointmentHandler.Update)
		api.PATCH("/appointments/:id/approve", session, appointmentHandler.Approve)
		api.PATCH("/appointments/:id/reject", session, appointmentHandler.Reject)
		api.DELETE("/appointments/:id", session, appointmentHandler.Delete)

		// ------------------------------
		// GAMES
		// ------------------------------
		api.GET("/games", cached(cacheGames), gameHandler.List)
		api.POST("/games", session, invalidate(cacheGames), gameHandler.Create)
		api.DELETE("/games/:id", session, invalidate(cacheGames), gameHandler.Delete)

		// ------------------------------
		// HALL OF SHAME
		// ------------------------------
		api.GET("/hall-of-shame", cached(cacheHallOfShame), hallHandler.List)
		api.GET("/hall-of-shame/stats", cached(cacheHallOfShame), hallHandler.Stats)
		api.POST("/hall-of-shame", session, invalidate(cacheHallOfShame), hallHandler.Create)
		api.PUT("/hall-of-shame/:id", session, invalidate(cacheHallOfShame), hallHandler.Update)
		api.DELETE("/hall-of-shame/:id", session, invalidate(cacheHallOfShame), hallHandler.Delete)

		// ------------------------------
		// UPLOADS
		// ------------------------------
		if d.Objects != nil {
			uploadUC := ucMedia.NewUploadImage(d.Objects, cfg.ImageMaxWidth)
			uploadHandler := handlers.NewUploadHandler(uploadUC)
			api.POST("/uploads/images", session, uploadHandler.Image)
		}
	}
}
