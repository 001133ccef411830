package repository

import (
	"errors" // Error inspection

	"gorm.io/gorm" // GORM ORM library
)

// Repository is the generic CRUD contract shared by every entity kind.
// conds are GORM query conditions ("name = ?", value). A pageSize of 0 means
// no paging; pageNumber below 1 is treated as 1.
type Repository[T any] interface {
	GetAll(pageSize, pageNumber int, conds ...any) ([]T, error) // Filtered, paginated list
	Get(conds ...any) (*T, error)                               // Single entity, nil when absent
	Create(entity *T) error                                     // Insert, persisted before return
	Update(entity *T) error                                     // Full save, persisted before return
	Remove(entity *T) error                                     // Delete, persisted before return
}

// gormRepository is the GORM-backed implementation of Repository
type gormRepository[T any] struct {
	db *gorm.DB // Database handle
}

// NewRepository creates a generic repository over the given database
func NewRepository[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

// GetAll returns all entities matching the conditions, paged when pageSize > 0
func (r *gormRepository[T]) GetAll(pageSize, pageNumber int, conds ...any) ([]T, error) {
	var entities []T
	tx := r.db // Base query
	// Apply the filter when one is given
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	// Apply pagination: skip (pageNumber-1)*pageSize, take pageSize
	if pageSize > 0 {
		if pageNumber < 1 {
			pageNumber = 1 // Page numbers start at 1
		}
		tx = tx.Offset((pageNumber - 1) * pageSize).Limit(pageSize)
	}
	err := tx.Find(&entities).Error // Execute the query
	return entities, err            // Return entities and error
}

// Get returns the first entity matching the conditions, or nil when none does
func (r *gormRepository[T]) Get(conds ...any) (*T, error) {
	var entity T
	tx := r.db // Base query
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	err := tx.First(&entity).Error // Fetch the first match
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absence is not an error at this layer
	}
	if err != nil {
		return nil, err // Other database error
	}
	return &entity, nil
}

// Create inserts the entity; generated fields are filled in on return
func (r *gormRepository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// Update saves all fields of the entity
func (r *gormRepository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Remove deletes the entity by its primary key
func (r *gormRepository[T]) Remove(entity *T) error {
	return r.db.Delete(entity).Error
}
