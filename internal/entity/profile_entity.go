package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProfileStatus string

const (
	ProfileStatusIncomplete      ProfileStatus = "incomplete"
	ProfileStatusPendingApproval ProfileStatus = "pending_approval"
	ProfileStatusApproved        ProfileStatus = "approved"
	ProfileStatusRejected        ProfileStatus = "rejected"
)

// Profile is the owning aggregate over a user's answers and photos.
// CompletionPercentage is derived here on the server after every mutating
// action; clients only ever display the stored value.
type Profile struct {
	Id     uuid.UUID
	UserId uuid.UUID

	DisplayName string
	Birthdate   *string // YYYY-MM-DD, mirrored from the birthdate answer
	City        string

	Status               ProfileStatus
	CompletionPercentage int
	PhotoCount           int

	// Admin review fields. ReviewNotes autosaves from the admin editor.
	ReviewNotes *string
	ReviewedBy  *uuid.UUID
	ReviewedAt  *time.Time
	SubmittedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfilePhoto belongs to a profile. Listing order is primary first, then
// order_index ascending.
type ProfilePhoto struct {
	Id         uuid.UUID
	ProfileId  uuid.UUID
	URL        string
	OrderIndex int
	IsPrimary  bool
	CreatedAt  time.Time
}
