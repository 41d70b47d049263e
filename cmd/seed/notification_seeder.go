package main

import (
	"log"

	"bloom-be/internal/model"

	"gorm.io/gorm"
)

// SeedNotificationTypes populates the registry that maps domain events to
// notification templates and delivery targets.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "PROFILE_SUBMITTED",
			DisplayName: "Profile Submitted for Review",
			Template:    "A new profile is waiting for review (user {user_id}).",
			TargetType:  "ADMIN",
			IsActive:    true,
		},
		{
			Code:        "PROFILE_APPROVED",
			DisplayName: "Profile Approved",
			Template:    "Congratulations! Your profile has been approved. You can now receive match suggestions.",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "PROFILE_REJECTED",
			DisplayName: "Profile Needs Changes",
			Template:    "Your profile needs some changes before it can go live. Reviewer notes: {notes}",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "MATCH_CREATED",
			DisplayName: "New Match Suggestion",
			Template:    "You have a new match suggestion! Open your match board to take a look.",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "MATCH_MUTUAL",
			DisplayName: "It's a Match",
			Template:    "It's a match! You both said yes. Time to say hello.",
			TargetType:  "SELF",
			IsActive:    true,
		},
	}

	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("✅ Notification types seeded successfully.")
}
