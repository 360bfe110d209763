package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/middleware"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

// UserHandler handles HTTP requests for user profiles. Identity itself
// lives with the external provider; this service only keeps the profile
// row keyed by the token subject.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// RegisterRequest is the HTTP request body for registering a profile.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// UserResponse is the HTTP representation of a user profile.
type UserResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.FullName == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "full_name and phone are required"})
		return
	}

	ctx := c.Request.Context()
	userID := c.GetString(middleware.ContextUserID)

	// Re-registering with the same token is a no-op returning the
	// existing profile.
	if existing, err := h.userRepo.GetByID(ctx, userID); err == nil {
		respondJSON(c, http.StatusOK, toUserResponse(existing))
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		respondError(c, err)
		return
	}

	role := domain.Role(c.GetString(middleware.ContextUserRole))
	if !role.IsValid() {
		role = domain.RoleUser
	}

	user := &domain.User{
		ID:        userID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := h.userRepo.Create(ctx, user); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toUserResponse(user))
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	respondJSON(c, http.StatusOK, responses)
}

// Me handles GET /v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userRepo.GetByID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
