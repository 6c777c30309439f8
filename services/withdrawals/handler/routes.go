package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/kasule/wagepay/internal/pkg/constants"
	"github.com/kasule/wagepay/internal/pkg/middleware"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals/handler/http"
)

// Handler coordinates all protocol handlers for the withdrawal service
type Handler struct {
	authHandler       *http.AuthHandler
	withdrawalHandler *http.WithdrawalHandler
	redisClient       *redis.Client
	cfg               *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	withdrawalHandler *http.WithdrawalHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:       authHandler,
		withdrawalHandler: withdrawalHandler,
		redisClient:       redisClient,
		cfg:               cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from Authorization header to avoid type conflicts
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if msisdn, exists := claims["msisdn"]; exists {
							c.Set("msisdn", msisdn)
						}
					}
				}
			}
		},
	})
}

// getOTPRateLimiter limits how often a client can trigger OTP generation
func (h *Handler) getOTPRateLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Key:         constants.KeyRateLimitPrefix,
		Limit:       5,
		Period:      time.Minute,
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth", h.getOTPRateLimiter())
	authGroup.POST("/otp/generate", h.authHandler.GenerateOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())

	protected.GET("/balance", h.withdrawalHandler.GetBalance)

	withdrawalGroup := protected.Group("/withdrawals")
	withdrawalGroup.POST("", h.withdrawalHandler.CreateWithdrawal)
	withdrawalGroup.GET("", h.withdrawalHandler.ListWithdrawals)
	withdrawalGroup.GET("/:id", h.withdrawalHandler.GetWithdrawal)
	withdrawalGroup.POST("/:id/verify", h.withdrawalHandler.VerifyWithdrawal)
	withdrawalGroup.POST("/:id/resend-otp", h.withdrawalHandler.ResendOTP)
	withdrawalGroup.POST("/:id/cancel", h.withdrawalHandler.CancelWithdrawal)
}
