package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/middleware"
	"github.com/dutytracker/timesheet_backend/internal/platform/config"
	"github.com/dutytracker/timesheet_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	identityService portssvc.IdentitySvcFacade
	cfg             *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(is portssvc.IdentitySvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		identityService: is,
		cfg:             cfg,
	}
}

// registerAuthRoutes sets up the public registration and login routes. Login
// is rate limited per IP with the configured rate.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, identityService portssvc.IdentitySvcFacade) {
	h := NewAuthHandler(identityService, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register/employee", h.RegisterEmployee)
		auth.POST("/register/head", h.RegisterDepartmentHead)
	}
}

// registerProfileRoutes sets up the authenticated profile route.
func registerProfileRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade) {
	h := NewAuthHandler(identityService, nil)
	rg.GET("/me",
		middleware.RequireRole(identityService, domain.RoleEmployee, domain.RoleDepartmentHead, domain.RoleAdmin),
		h.Me)
}

// Login authenticates with a username or an employee ID plus password and
// returns a signed access token.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.identityService.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("login", req.Login))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// RegisterEmployee creates a user plus a pending employee profile.
func (h *AuthHandler) RegisterEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.identityService.RegisterEmployee(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// RegisterDepartmentHead creates a user plus a department head profile.
func (h *AuthHandler) RegisterDepartmentHead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterDepartmentHeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterDepartmentHead", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	head, err := h.identityService.RegisterDepartmentHead(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register department head")
		return
	}
	c.JSON(http.StatusCreated, head)
}

// Me returns the caller's resolved role-profile.
func (h *AuthHandler) Me(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
