package dto

import (
	"time"

	"github.com/showtime/kahoot-api/internal/domain/entity"
)

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ReferrerCode string `json:"referrer_code"`
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse представляет пользователя в формате для ответа клиенту.
// Пароль наружу не отдается никогда.
type UserResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	RefCode      string    `json:"ref_code"`
	ReferrerCode string    `json:"referrer_code,omitempty"`
	Balance      float64   `json:"balance"`
	IsLocked     bool      `json:"is_locked"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUserResponse создает DTO для пользователя
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
		RefCode:      user.RefCode,
		ReferrerCode: user.ReferrerCode,
		Balance:      user.Balance,
		IsLocked:     user.IsLocked,
		CreatedAt:    user.CreatedAt,
	}
}

// AuthResponse представляет ответ на регистрацию или вход
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user,omitempty"`
}

// LockRequest представляет запрос на блокировку или разблокировку пользователя.
// Указатель нужен, чтобы отличать явный false от отсутствующего поля.
type LockRequest struct {
	IsLocked *bool `json:"is_locked" binding:"required"`
}

// ReferralsResponse представляет список приглашённых пользователей
type ReferralsResponse struct {
	Referrals []*UserResponse `json:"referrals"`
	Total     int64           `json:"total"`
}
