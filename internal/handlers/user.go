package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
	"github.com/avant-dev/usersvc/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// POST /api/users
// body: { "id": "...", "name": "...", "email": "..." }
// The handler assigns a uuid when the caller leaves id empty; identity
// is always caller-side, the service never invents one.
func (uh *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	u, err := uh.userService.CreateUser(c.Request.Context(), req.ID, req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

// GET /api/users/:id?format=console|json
func (uh *UserHandler) GetUserDetails(c *gin.Context) {
	rendered, err := uh.userService.GetFormattedUserDetails(c.Request.Context(), c.Param("id"), c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": rendered})
}

// POST /api/users/:id/activate
func (uh *UserHandler) ActivateUser(c *gin.Context) {
	u, err := uh.userService.ActivateUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// respondError is the single spot where the error taxonomy becomes
// HTTP status codes; everything below this layer stays typed.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation_rejected", "reason": verr.Reason})
		return
	}
	var nferr *apperrors.NotFoundError
	if errors.As(err, &nferr) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "id": nferr.ID})
		return
	}
	var uferr *apperrors.UnsupportedFormatError
	if errors.As(err, &uferr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_format", "format": uferr.Format})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "detail": err.Error()})
}
