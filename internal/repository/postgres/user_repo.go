package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/showtime/kahoot-api/internal/domain/entity"
	apperrors "github.com/showtime/kahoot-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create создает нового пользователя.
// Нарушение уникальности email или ref_code транслируется в ErrConflict.
func (r *UserRepo) Create(user *entity.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email or ref_code already taken", apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail возвращает пользователя по email
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail проверяет, занят ли email
func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// GetByRefCode возвращает владельца реферального кода
func (r *UserRepo) GetByRefCode(refCode string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("ref_code = ?", refCode).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByRefCode проверяет, занят ли реферальный код
func (r *UserRepo) ExistsByRefCode(refCode string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.User{}).Where("ref_code = ?", refCode).Count(&count).Error
	return count > 0, err
}

// ListByReferrerCode возвращает пользователей, приглашённых по данному коду
func (r *UserRepo) ListByReferrerCode(referrerCode string) ([]entity.User, error) {
	var users []entity.User
	err := r.db.Where("referrer_code = ?", referrerCode).Order("id").Find(&users).Error
	return users, err
}

// CountByReferrerCode возвращает количество приглашённых по данному коду
func (r *UserRepo) CountByReferrerCode(referrerCode string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.User{}).Where("referrer_code = ?", referrerCode).Count(&count).Error
	return count, err
}

// Update сохраняет пользователя целиком
func (r *UserRepo) Update(user *entity.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email or ref_code already taken", apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
