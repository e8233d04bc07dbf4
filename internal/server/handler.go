package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/pfa-project/specgen/internal/auth"
	"github.com/pfa-project/specgen/internal/models"
)

const tokenLifetime = 24 * time.Hour

// Handler handles HTTP requests for the specgen API
type Handler struct {
	store      *Store
	jwtManager *auth.JWTManager
}

// NewHandler creates a new API handler
func NewHandler(store *Store, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		store:      store,
		jwtManager: jwtManager,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user account; password and confirmPassword must match
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Registration details"
// @Success 201 {object} models.UserInfo
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request", Code: models.ErrCodeInvalidRequest,
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Password and confirm password do not match",
			Code:  models.ErrCodePasswordMismatch,
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to hash password", Code: models.ErrCodeInternalError,
		})
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req.Name, req.Email, string(hashed))
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "Email already exists: " + req.Email,
				Code:  models.ErrCodeEmailExists,
			})
			return
		}
		log.Printf(`{"level":"error","message":"Failed to create user","error":"%v"}`, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create user", Code: models.ErrCodeInternalError,
		})
		return
	}

	c.JSON(http.StatusCreated, user.ToUserInfo())
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request", Code: models.ErrCodeInvalidRequest,
		})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf(`{"level":"warn","message":"User not found","email":"%s"}`, req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password", Code: models.ErrCodeUnauthorized,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		log.Printf(`{"level":"warn","message":"Invalid password","email":"%s"}`, req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password", Code: models.ErrCodeUnauthorized,
		})
		return
	}

	token, err := h.jwtManager.GenerateToken(c.Request.Context(), user.ID, user.Email, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token", Code: models.ErrCodeInternalError,
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(tokenLifetime),
		User:      user.ToUserInfo(),
	})
}

// ListSpecifications godoc
// @Summary List specifications
// @Description List every specification owned by the authenticated user
// @Tags specifications
// @Produce json
// @Success 200 {array} models.Specification
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /specifications [get]
func (h *Handler) ListSpecifications(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)

	specs, err := h.store.ListSpecifications(c.Request.Context(), userID)
	if err != nil {
		log.Printf(`{"level":"error","message":"Failed to list specifications","error":"%v","user_id":"%s"}`, err, userID)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list specifications", Code: models.ErrCodeInternalError,
		})
		return
	}

	c.JSON(http.StatusOK, specs)
}

// GetSpecification godoc
// @Summary Get a specification
// @Tags specifications
// @Produce json
// @Param id path string true "Specification ID"
// @Success 200 {object} models.Specification
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /specifications/{id} [get]
func (h *Handler) GetSpecification(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)

	spec, err := h.store.GetSpecification(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Specification not found", Code: models.ErrCodeNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get specification", Code: models.ErrCodeInternalError,
		})
		return
	}

	c.JSON(http.StatusOK, spec)
}

// CreateSpecification godoc
// @Summary Create a specification
// @Description Persist an assembled specification; the assigned id is returned
// @Tags specifications
// @Accept json
// @Produce json
// @Param request body models.Specification true "Specification document"
// @Success 201 {object} models.Specification
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /specifications [post]
func (h *Handler) CreateSpecification(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)

	var spec models.Specification
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request", Code: models.ErrCodeInvalidRequest,
		})
		return
	}
	spec.ID = "" // the store assigns identifiers

	created, err := h.store.CreateSpecification(c.Request.Context(), userID, spec)
	if err != nil {
		log.Printf(`{"level":"error","message":"Failed to create specification","error":"%v","user_id":"%s"}`, err, userID)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create specification", Code: models.ErrCodeInternalError,
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateSpecification godoc
// @Summary Update a specification
// @Tags specifications
// @Accept json
// @Produce json
// @Param id path string true "Specification ID"
// @Param request body models.Specification true "Specification document"
// @Success 200 {object} models.Specification
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /specifications/{id} [put]
func (h *Handler) UpdateSpecification(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)

	var spec models.Specification
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request", Code: models.ErrCodeInvalidRequest,
		})
		return
	}

	updated, err := h.store.UpdateSpecification(c.Request.Context(), userID, c.Param("id"), spec)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Specification not found", Code: models.ErrCodeNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update specification", Code: models.ErrCodeInternalError,
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteSpecification godoc
// @Summary Delete a specification
// @Tags specifications
// @Param id path string true "Specification ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /specifications/{id} [delete]
func (h *Handler) DeleteSpecification(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)

	if err := h.store.DeleteSpecification(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Specification not found", Code: models.ErrCodeNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to delete specification", Code: models.ErrCodeInternalError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
