package main

import (
	"encoding/json"
	"log"

	"bloom-be/internal/model"
	"bloom-be/pkg/questionnaire"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error: failed to marshal seed payload: %v", err)
	}
	return datatypes.JSON(b)
}

// SeedQuestions writes the default onboarding catalog. The transition screen
// sits after the last "profile" question and before the first "preference"
// question, so exactly one row carries InsertsTransitionAfter.
func SeedQuestions(db *gorm.DB) {
	questions := []model.Question{
		{
			Key:       "display_name",
			Position:  1,
			Prompt:    "What should we call you?",
			Subtitle:  "This name is shown to your matches.",
			InputType: string(questionnaire.InputText),
			Rules:     mustJSON(questionnaire.Rules{MaxLength: 50}),
			IconName:  "user",
			Section:   string(questionnaire.SectionProfile),
		},
		{
			Key:       "birthdate",
			Position:  2,
			Prompt:    "When were you born?",
			Subtitle:  "You must be at least 18 to join.",
			HelpText:  "Your age is shown to matches, your birthday is not.",
			InputType: string(questionnaire.InputDate),
			IconName:  "cake",
			Section:   string(questionnaire.SectionProfile),
		},
		{
			Key:       "city",
			Position:  3,
			Prompt:    "Where do you live?",
			InputType: string(questionnaire.InputAutocomplete),
			Options: mustJSON(questionnaire.Options{Choices: []string{
				"Tokyo", "Yokohama", "Osaka", "Nagoya", "Sapporo",
				"Fukuoka", "Kobe", "Kyoto", "Sendai", "Hiroshima",
			}}),
			IconName: "map-pin",
			Section:  string(questionnaire.SectionProfile),
		},
		{
			Key:       "occupation",
			Position:  4,
			Prompt:    "What do you do for work?",
			InputType: string(questionnaire.InputText),
			Rules:     mustJSON(questionnaire.Rules{MaxLength: 100}),
			IconName:  "briefcase",
			Section:   string(questionnaire.SectionProfile),
		},
		{
			Key:       "education",
			Position:  5,
			Prompt:    "What is your highest education?",
			InputType: string(questionnaire.InputSingleChoice),
			Options: mustJSON(questionnaire.Options{Choices: []string{
				"High school", "Vocational school", "Bachelor's degree",
				"Master's degree", "Doctorate", "Other",
			}}),
			IconName: "graduation-cap",
			Section:  string(questionnaire.SectionProfile),
		},
		{
			Key:       "height_cm",
			Position:  6,
			Prompt:    "How tall are you?",
			Subtitle:  "In centimeters.",
			InputType: string(questionnaire.InputNumber),
			Options:   mustJSON(questionnaire.Options{Min: 130, Max: 210, Default: 165}),
			IconName:  "ruler",
			Section:   string(questionnaire.SectionProfile),
		},
		{
			Key:       "smoking",
			Position:  7,
			Prompt:    "Do you smoke?",
			InputType: string(questionnaire.InputSingleChoice),
			Options: mustJSON(questionnaire.Options{Choices: []string{
				"Never", "Socially", "Regularly", "Trying to quit",
			}}),
			IconName: "cigarette",
			Section:  string(questionnaire.SectionProfile),
		},
		{
			Key:       "drinking",
			Position:  8,
			Prompt:    "How often do you drink?",
			InputType: string(questionnaire.InputSingleChoice),
			Options: mustJSON(questionnaire.Options{Choices: []string{
				"Never", "Rarely", "Socially", "Often",
			}}),
			IconName: "wine",
			Section:  string(questionnaire.SectionProfile),
		},
		{
			Key:       "self_intro",
			Position:  9,
			Prompt:    "Tell us about yourself.",
			Subtitle:  "A few sentences your matches will read first.",
			InputType: string(questionnaire.InputTextarea),
			Rules:     mustJSON(questionnaire.Rules{MaxLength: 500}),
			IconName:  "pen",
			Section:   string(questionnaire.SectionProfile),
		},
		{
			Key:       "mbti_type",
			Position:  10,
			Prompt:    "What is your personality type?",
			Subtitle:  "Pick the MBTI type that fits you best.",
			HelpText:  "Not sure? Any free online test will give you a four-letter code.",
			InputType: string(questionnaire.InputSingleChoice),
			Options:   mustJSON(questionnaire.Options{Choices: questionnaire.MBTITypes}),
			IconName:  "sparkles",
			Section:   string(questionnaire.SectionProfile),
		},
		{
			Key:       "interests",
			Position:  11,
			Prompt:    "What are you into?",
			Subtitle:  "Pick at least five interests.",
			InputType: string(questionnaire.InputMultipleChoice),
			Options: mustJSON(questionnaire.Options{
				Choices: questionnaire.DefaultInterestCatalog.AllTags(),
			}),
			Rules: mustJSON(questionnaire.Rules{
				MinSelections: questionnaire.DefaultMinInterests,
				MaxSelections: 15,
			}),
			IconName: "heart",
			Section:  string(questionnaire.SectionProfile),

			// Last profile question: the one-time transition screen follows.
			InsertsTransitionAfter: true,
		},
		{
			Key:       "relationship_goal",
			Position:  12,
			Prompt:    "What are you looking for?",
			InputType: string(questionnaire.InputSingleChoice),
			Options: mustJSON(questionnaire.Options{Choices: []string{
				"Marriage within a year", "Marriage eventually",
				"A serious relationship", "Not sure yet",
			}}),
			IconName: "rings",
			Section:  string(questionnaire.SectionPreference),
		},
		{
			Key:       "partner_age_range",
			Position:  13,
			Prompt:    "Up to how many years of age difference is fine?",
			InputType: string(questionnaire.InputScale),
			Options: mustJSON(questionnaire.Options{
				Min: 0, Max: 15, Default: 5,
				MinLabel: "Same age", MaxLabel: "15+ years",
			}),
			IconName: "calendar",
			Section:  string(questionnaire.SectionPreference),
		},
		{
			Key:       "partner_qualities",
			Position:  14,
			Prompt:    "Which qualities matter most in a partner?",
			InputType: string(questionnaire.InputMultipleChoice),
			Options: mustJSON(questionnaire.Options{Choices: []string{
				"Kindness", "Humor", "Ambition", "Honesty", "Stability",
				"Curiosity", "Family-minded", "Independence", "Optimism",
			}}),
			Rules:    mustJSON(questionnaire.Rules{MinSelections: 3, MaxSelections: 5}),
			IconName: "star",
			Section:  string(questionnaire.SectionPreference),
		},
		{
			Key:       "importance_family",
			Position:  15,
			Prompt:    "How important is family life to you?",
			InputType: string(questionnaire.InputScale),
			Options: mustJSON(questionnaire.Options{
				Min: 1, Max: 5, Default: 3,
				MinLabel: "Not important", MaxLabel: "Very important",
			}),
			IconName: "home",
			Section:  string(questionnaire.SectionPreference),
		},
		{
			Key:       "importance_career",
			Position:  16,
			Prompt:    "How important is your partner's career to you?",
			InputType: string(questionnaire.InputScale),
			Options: mustJSON(questionnaire.Options{
				Min: 1, Max: 5, Default: 3,
				MinLabel: "Not important", MaxLabel: "Very important",
			}),
			IconName: "trending-up",
			Section:  string(questionnaire.SectionPreference),
		},
		{
			Key:       "weekend_style",
			Position:  17,
			Prompt:    "What does your ideal weekend look like?",
			InputType: string(questionnaire.InputSingleChoice),
			Options: mustJSON(questionnaire.Options{Choices: []string{
				"Out exploring", "Quiet time at home", "With friends", "A mix of everything",
			}}),
			IconName: "sun",
			Section:  string(questionnaire.SectionPreference),
		},
		{
			Key:       "ideal_first_date",
			Position:  18,
			Prompt:    "Describe your ideal first date.",
			InputType: string(questionnaire.InputTextarea),
			Rules:     mustJSON(questionnaire.Rules{MaxLength: 300}),
			IconName:  "coffee",
			Section:   string(questionnaire.SectionPreference),
		},
	}

	for _, q := range questions {
		q.Active = true
		if err := db.Where("key = ?", q.Key).FirstOrCreate(&q).Error; err != nil {
			log.Printf("Error seeding question %s: %v", q.Key, err)
		}
	}
	log.Println("✅ Question catalog seeded successfully.")
}
