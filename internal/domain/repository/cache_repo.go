package repository

import "time"

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// SetJSON сохраняет структуру в кеше в виде JSON
	SetJSON(key string, value interface{}, expiration time.Duration) error
	// GetJSON читает структуру из кеша; возвращает ErrNotFound при промахе
	GetJSON(key string, dest interface{}) error
	Delete(key string) error
}
