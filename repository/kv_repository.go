package repository

import (
	"errors"

	"github.com/julirosales079/parrillerosfast/entity"

	"gorm.io/gorm"
)

type KVRepository struct{ DB *gorm.DB }

func NewKVRepository(db *gorm.DB) *KVRepository { return &KVRepository{DB: db} }

// Get returns the stored value, or "" when the key was never written.
func (r *KVRepository) Get(key string) (string, error) {
	var row entity.KVEntry
	err := r.DB.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (r *KVRepository) Put(key, value string) error {
	row := entity.KVEntry{Key: key, Value: value}
	return r.DB.Save(&row).Error
}
