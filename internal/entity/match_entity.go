package entity

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusSuggested MatchStatus = "suggested"
	MatchStatusMutual    MatchStatus = "mutual"
	MatchStatusClosed    MatchStatus = "closed"
)

// Match pairs two profiles. A suggestion becomes mutual once both sides
// accept; a decline from either side closes it.
type Match struct {
	Id         uuid.UUID
	ProfileAId uuid.UUID
	ProfileBId uuid.UUID

	CompatibilityScore int
	Status             MatchStatus

	AAccepted *bool
	BAccepted *bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SideOf returns which acceptance flag belongs to profileId, or nil if the
// profile is not part of the match.
func (m *Match) SideOf(profileId uuid.UUID) **bool {
	switch profileId {
	case m.ProfileAId:
		return &m.AAccepted
	case m.ProfileBId:
		return &m.BAccepted
	}
	return nil
}

// OtherSide returns the opposing profile id.
func (m *Match) OtherSide(profileId uuid.UUID) uuid.UUID {
	if profileId == m.ProfileAId {
		return m.ProfileBId
	}
	return m.ProfileAId
}
