package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/service"
)

// NewRouter configura el router de Gin con middlewares y todas las rutas.
func NewRouter(
	logger *zap.Logger,
	jwtServ *service.JWTService,
	userH *UserHandler,
	profileH *ProfileHandler,
	subsH *SubscriptionHandler,
	watchableH *WatchableHandler,
	taxonomyH *TaxonomyHandler,
	subtitleH *SubtitleHandler,
	activityH *ActivityHandler,
	exportH *ExportHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	authMW := JWTAuthMiddleware(jwtServ)

	r.GET("/health", func(c *gin.Context) {
		respond(c, http.StatusOK, M{"status": "ok"})
	})

	users := r.Group("/users")
	users.POST("/register", userH.Register)
	users.POST("/login", userH.Login)
	users.POST("/login/oauth", userH.OAuthLogin)
	users.POST("/invite", userH.Invite)
	users.GET("", userH.ListUsers)
	users.GET("/:id", userH.GetUser)
	users.PUT("/:id", authMW, userH.UpdateUser)
	users.DELETE("/:id", authMW, userH.DeleteUser)

	auth := r.Group("/auth")
	auth.POST("/oauth", userH.OAuthUpsert)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	profiles := r.Group("/profiles")
	profiles.POST("", authMW, profileH.Create)
	profiles.GET("", profileH.List)
	profiles.GET("/:id", profileH.Get)
	profiles.GET("/user/:user_id", profileH.ListByUser)
	profiles.PUT("/:id", authMW, profileH.Update)
	profiles.DELETE("/:id", authMW, profileH.Delete)

	subs := r.Group("/subscriptions")
	subs.POST("", subsH.Create)
	subs.GET("", subsH.List)
	subs.GET("/:id", subsH.Get)
	subs.PUT("/:id", subsH.Update)
	subs.DELETE("/:id", subsH.Delete)
	subs.POST("/pay", authMW, subsH.Pay)

	watchables := r.Group("/watchables")
	watchables.POST("", watchableH.Create)
	watchables.GET("", watchableH.List(domain.KindAny))
	watchables.GET("/search", watchableH.SearchByTitle(domain.KindAny))
	watchables.GET("/:id", watchableH.Get)
	watchables.PUT("/:id", watchableH.Update)
	watchables.DELETE("/:id", watchableH.Delete)

	movies := r.Group("/movies")
	movies.GET("", watchableH.List(domain.KindMovie))
	movies.GET("/search", watchableH.SearchByTitle(domain.KindMovie))
	movies.GET("/genre/:name", watchableH.ListByGenre(domain.KindMovie))
	movies.GET("/recommendations/:profile_id", watchableH.Recommendations(domain.KindMovie))

	series := r.Group("/series")
	series.GET("", watchableH.List(domain.KindSeries))
	series.GET("/search", watchableH.SearchByTitle(domain.KindSeries))
	series.GET("/genre/:name", watchableH.ListByGenre(domain.KindSeries))
	series.GET("/recommendations/:profile_id", watchableH.Recommendations(domain.KindSeries))
	series.GET("/:title/season/:season", watchableH.SeriesBySeason)

	genres := r.Group("/genres")
	genres.POST("", taxonomyH.CreateGenre)
	genres.GET("", taxonomyH.ListGenres)
	genres.GET("/:id", taxonomyH.GetGenre)
	genres.PUT("/:id", taxonomyH.UpdateGenre)
	genres.DELETE("/:id", taxonomyH.DeleteGenre)

	languages := r.Group("/languages")
	languages.POST("", taxonomyH.CreateLanguage)
	languages.GET("", taxonomyH.ListLanguages)
	languages.GET("/:id", taxonomyH.GetLanguage)
	languages.PUT("/:id", taxonomyH.UpdateLanguage)
	languages.DELETE("/:id", taxonomyH.DeleteLanguage)

	qualities := r.Group("/qualities")
	qualities.POST("", taxonomyH.CreateQuality)
	qualities.GET("", taxonomyH.ListQualities)
	qualities.PUT("/:id", taxonomyH.UpdateQuality)
	qualities.DELETE("/:id", taxonomyH.DeleteQuality)

	subtitles := r.Group("/subtitles")
	subtitles.POST("", subtitleH.Create)
	subtitles.GET("/watchable/:watchable_id", subtitleH.ListByWatchable)
	subtitles.PUT("/:watchable_id/:language_id", subtitleH.Update)
	subtitles.DELETE("/:watchable_id/:language_id", subtitleH.Delete)

	preferences := r.Group("/preferences")
	preferences.POST("", authMW, activityH.AddPreference)
	preferences.GET("/profile/:profile_id", activityH.ListPreferences)
	preferences.DELETE("/:profile_id/:genre_id", authMW, activityH.RemovePreference)

	history := r.Group("/watchhistory")
	history.POST("", authMW, activityH.RecordHistory)
	history.GET("/profile/:profile_id", activityH.ListHistory)
	history.PUT("/:profile_id/:watchable_id", authMW, activityH.UpdateHistory)
	history.DELETE("/:profile_id/:watchable_id", authMW, activityH.DeleteHistory)

	watchlist := r.Group("/watchlist")
	watchlist.POST("", authMW, activityH.AddToWatchlist)
	watchlist.GET("/profile/:profile_id", activityH.ListWatchlist)
	watchlist.DELETE("/:profile_id/:watchable_id", authMW, activityH.RemoveFromWatchlist)

	exports := r.Group("/exports")
	exports.GET("/users", exportH.Users)
	exports.GET("/profiles", exportH.Profiles)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
