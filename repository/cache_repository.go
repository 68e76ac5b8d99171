package repository

import (
	"errors"

	"github.com/drxagencia/mateus-burger/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheRepository é o armazenamento local durável chave/valor que sustenta
// o cache da empresa. Escritas substituem o registro inteiro.
type CacheRepository struct{ DB *gorm.DB }

func NewCacheRepository(db *gorm.DB) *CacheRepository { return &CacheRepository{DB: db} }

func (r *CacheRepository) Get(chave string) (string, bool, error) {
	var e entity.CacheEntry
	err := r.DB.First(&e, "chave = ?", chave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Valor, true, nil
}

func (r *CacheRepository) Set(chave, valor string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor"}),
	}).Create(&entity.CacheEntry{Chave: chave, Valor: valor}).Error
}

func (r *CacheRepository) Remove(chave string) error {
	return r.DB.Delete(&entity.CacheEntry{}, "chave = ?", chave).Error
}
