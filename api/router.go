// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"speakwell/practice-api/db"
	"speakwell/practice-api/internal/service"
	"speakwell/practice-api/pkg/middleware"
	"speakwell/practice-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Hasher *security.PasswordHasher
	Tokens *security.TokenService
	Mailer *service.Mailer

	store *persist.MemoryStore
}

func NewRouter() (*API, error) {
	makeLogger()

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	a := &API{
		DB:     database,
		Hasher: security.NewHasher(),
		Tokens: security.NewTokenService(
			viper.GetString("jwt.secret"),
			viper.GetDuration("jwt.access_ttl"),
			viper.GetDuration("jwt.refresh_ttl"),
		),
		Mailer: service.NewMailer(),
	}

	a.BuildRouter()

	service.TokenCleanup(viper.GetDuration("cleanup.interval"), database)

	return a, nil
}

// BuildRouter wires middleware and the route table onto a fresh engine
func (a *API) BuildRouter() {
	a.store = persist.NewMemoryStore(time.Minute)

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{viper.GetString("frontend.url")},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	authRequired := middleware.NewAuthMiddleware(a.DB, a.Tokens)

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates an access token
		main.HEAD("/validate", authRequired, a.Validate)
	}

	auth := main.Group("/auth",
		middleware.BodySizeLimiter(1<<20),
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: viper.GetInt("auth.rate.rps"),
			Burst:             viper.GetInt("auth.rate.burst"),
		}),
	)
	{
		// POST /api/auth/register		-> Registers a new account
		auth.POST("/register", a.AuthRegister)

		// POST /api/auth/login			-> Sets the auth cookie pair
		auth.POST("/login", a.AuthLogin)

		// POST /api/auth/verify-email		-> Consumes a verification token
		auth.POST("/verify-email", a.AuthVerifyEmail)

		// POST /api/auth/forgot-password	-> Starts a password reset
		auth.POST("/forgot-password", a.AuthForgotPassword)

		// POST /api/auth/reset-password	-> Consumes a reset token
		auth.POST("/reset-password", a.AuthResetPassword)

		// POST /api/auth/refresh		-> Rotates the token pair
		auth.POST("/refresh", a.AuthRefresh)

		// POST /api/auth/logout		-> Clears cookies and the stored refresh digest
		auth.POST("/logout", a.AuthLogout)
	}

	lessons := main.Group("/lessons")
	{
		// GET /api/lessons		-> Lists the lesson catalog
		lessons.GET("", a.cacheFor(30), a.LessonList)

		// GET /api/lessons/:id		-> Returns a single lesson
		lessons.GET("/:id", a.cacheFor(30), a.LessonFetch)
	}

	practice := main.Group("/practice")
	{
		// GET /api/practice/words	-> Returns the practice word list
		practice.GET("/words", a.cacheFor(60), a.PracticeWords)

		// POST /api/practice/attempts	-> Scores a simulated attempt
		practice.POST("/attempts", authRequired, middleware.BodySizeLimiter(1<<20), a.PracticeAttempt)
	}

	// GET /api/progress		-> Returns the user's practice aggregates
	main.GET("/progress", authRequired, a.Progress)

	users := main.Group("/users")
	{
		// GET /api/users/me		-> Returns the caller's profile
		users.GET("/me", authRequired, a.UserMe)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func (a *API) cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(a.store, time.Second*time.Duration(sec))
}
