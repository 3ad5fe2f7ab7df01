package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showtime/kahoot-api/internal/handler/dto"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
	"github.com/showtime/kahoot-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с профилем пользователя
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe возвращает профиль текущего пользователя
// GET /api/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint) // Устанавливается в AuthMiddleware

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetMyReferrals возвращает пользователей, приглашённых текущим пользователем
// GET /api/users/me/referrals
func (h *UserHandler) GetMyReferrals(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	referrals, total, err := h.userService.GetReferrals(user)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	userDTOs := make([]*dto.UserResponse, 0, len(referrals))
	for i := range referrals {
		userDTOs = append(userDTOs, dto.NewUserResponse(&referrals[i]))
	}

	c.JSON(http.StatusOK, dto.ReferralsResponse{
		Referrals: userDTOs,
		Total:     total,
	})
}

// SetUserLock блокирует или разблокирует пользователя.
// Доступно только администраторам (AdminOnly в middleware).
// PUT /api/users/:userId/lock
func (h *UserHandler) SetUserLock(c *gin.Context) {
	userID := c.MustGet("targetUserID").(uint) // Устанавливается в ExtractUintParam

	var req dto.LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.SetUserLock(userID, *req.IsLocked)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// handleUserError преобразует ошибки сервисного слоя в HTTP-ответы
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in UserHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
