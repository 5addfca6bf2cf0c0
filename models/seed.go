package models

// DefaultMatchCollections returns the demo matches a user sees before any
// state has been stored for them. Ids are unique across all collections.
func DefaultMatchCollections() MatchCollections {
	return MatchCollections{
		Pending: []PendingMatch{
			{
				ID: "1",
				Counterpart: Counterpart{
					Name:           "Alex Rodriguez",
					Avatar:         "/professional-man.png",
					Skills:         []string{"Python", "Machine Learning"},
					LearningGoals:  []string{"React", "UI/UX Design"},
					MutualInterest: "JavaScript",
				},
				MatchScore:  95,
				RequestedAt: "2 hours ago",
				Message:     "Hi! I'd love to help you with Python in exchange for learning React. Are you available this week?",
			},
			{
				ID: "2",
				Counterpart: Counterpart{
					Name:           "Maria Santos",
					Avatar:         "/professional-woman-diverse.png",
					Skills:         []string{"UI/UX Design", "Figma"},
					LearningGoals:  []string{"Frontend Development"},
					MutualInterest: "Design Systems",
				},
				MatchScore:  88,
				RequestedAt: "1 day ago",
				Message:     "Your portfolio looks amazing! I'd love to exchange UX knowledge for frontend development tips.",
			},
		},
		Active: []ActiveMatch{
			{
				ID: "3",
				Counterpart: Counterpart{
					Name:          "James Chen",
					Avatar:        "/professional-asian-man.png",
					Skills:        []string{"React", "Node.js"},
					LearningGoals: []string{"DevOps", "Cloud Architecture"},
				},
				MatchScore:        93,
				Status:            ActiveStatusInProgress,
				NextSession:       "Tomorrow, 2:00 PM",
				SessionsCompleted: 3,
				Rating:            4.9,
				LastActivity:      "Active now",
			},
			{
				ID: "4",
				Counterpart: Counterpart{
					Name:          "Sarah Johnson",
					Avatar:        "/professional-blonde-woman.png",
					Skills:        []string{"Spanish", "Language Teaching"},
					LearningGoals: []string{"Web Development"},
				},
				MatchScore:        81,
				Status:            ActiveStatusScheduled,
				NextSession:       "Friday, 10:00 AM",
				SessionsCompleted: 1,
				Rating:            4.7,
				LastActivity:      "2 hours ago",
			},
		},
		Completed: []CompletedMatch{
			{
				ID: "5",
				Counterpart: Counterpart{
					Name:          "David Kim",
					Avatar:        "/young-asian-professional.png",
					Skills:        []string{"Guitar", "Music Theory"},
					LearningGoals: []string{"Photography"},
				},
				SessionsCompleted: 5,
				Rating:            4.6,
				CompletedAt:       "Last week",
				Feedback:          "Great teacher! Really helped me understand music theory basics.",
			},
			{
				ID: "6",
				Counterpart: Counterpart{
					Name:          "Lisa Wang",
					Avatar:        "/professional-asian-woman.png",
					Skills:        []string{"Photography", "Lightroom"},
					LearningGoals: []string{"Graphic Design"},
				},
				SessionsCompleted: 4,
				Rating:            4.8,
				CompletedAt:       "2 weeks ago",
				Feedback:          "Amazing photography mentor. Learned so much about composition and editing!",
			},
		},
	}
}
