package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByIDs filters by a list of IDs
type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// FilterBy Generic Filter
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}

// CreatedAfter keeps rows created at or after the given instant. Column
// overrides the default "created_at" for joined queries that need a
// qualified name.
type CreatedAfter struct {
	After  interface{}
	Column string
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	column := s.Column
	if column == "" {
		column = "created_at"
	}
	return db.Where(column+" >= ?", s.After)
}

// CreatedBefore keeps rows created strictly before the given instant.
type CreatedBefore struct {
	Before interface{}
	Column string
}

func (s CreatedBefore) Apply(db *gorm.DB) *gorm.DB {
	column := s.Column
	if column == "" {
		column = "created_at"
	}
	return db.Where(column+" < ?", s.Before)
}
