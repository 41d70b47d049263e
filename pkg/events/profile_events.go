package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeProfileSubmitted = "PROFILE_SUBMITTED"
	TypeProfileApproved  = "PROFILE_APPROVED"
	TypeProfileRejected  = "PROFILE_REJECTED"
	TypeMatchCreated     = "MATCH_CREATED"
	TypeMatchMutual      = "MATCH_MUTUAL"
)

// NewProfileSubmitted fires when a member completes onboarding and their
// profile enters the review queue. Admins are the audience.
func NewProfileSubmitted(profileID, userID uuid.UUID) Event {
	return BaseEvent{
		Type: TypeProfileSubmitted,
		Data: map[string]interface{}{
			"profile_id": profileID.String(),
			"user_id":    userID.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewProfileApproved(profileID, userID, reviewerID uuid.UUID) Event {
	return BaseEvent{
		Type: TypeProfileApproved,
		Data: map[string]interface{}{
			"profile_id":  profileID.String(),
			"user_id":     userID.String(),
			"reviewer_id": reviewerID.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewProfileRejected(profileID, userID, reviewerID uuid.UUID, notes string) Event {
	return BaseEvent{
		Type: TypeProfileRejected,
		Data: map[string]interface{}{
			"profile_id":  profileID.String(),
			"user_id":     userID.String(),
			"reviewer_id": reviewerID.String(),
			"notes":       notes,
		},
		OccurredAt: time.Now(),
	}
}

// NewMatchCreated notifies both sides of a new curated pairing.
func NewMatchCreated(matchID uuid.UUID, userA, userB uuid.UUID) Event {
	return BaseEvent{
		Type: TypeMatchCreated,
		Data: map[string]interface{}{
			"match_id": matchID.String(),
			"user_a":   userA.String(),
			"user_b":   userB.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewMatchMutual(matchID uuid.UUID, userA, userB uuid.UUID) Event {
	return BaseEvent{
		Type: TypeMatchMutual,
		Data: map[string]interface{}{
			"match_id": matchID.String(),
			"user_a":   userA.String(),
			"user_b":   userB.String(),
		},
		OccurredAt: time.Now(),
	}
}
