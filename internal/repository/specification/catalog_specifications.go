package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question catalog specs

type ActiveQuestions struct{}

func (s ActiveQuestions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

type ByQuestionKey struct {
	Key string
}

func (s ByQuestionKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}

type BySection struct {
	Section string
}

func (s BySection) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section = ?", s.Section)
}

// CatalogOrder sorts by canonical sequence position.
type CatalogOrder struct{}

func (s CatalogOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Profile specs

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByProfileStatus struct {
	Status string
}

func (s ByProfileStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// Photo specs

type ByProfileID struct {
	ProfileID uuid.UUID
}

func (s ByProfileID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("profile_id = ?", s.ProfileID)
}

// PhotoDisplayOrder applies the board ordering: primary first, then
// order_index ascending.
type PhotoDisplayOrder struct{}

func (s PhotoDisplayOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, order_index ASC")
}

// Match specs

type ForProfile struct {
	ProfileID uuid.UUID
}

func (s ForProfile) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("profile_a_id = ? OR profile_b_id = ?", s.ProfileID, s.ProfileID)
}

type ByMatchStatus struct {
	Status string
}

func (s ByMatchStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
