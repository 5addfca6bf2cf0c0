package models

// MatchState is the lifecycle state a match occupies.
type MatchState string

const (
	MatchStatePending   MatchState = "pending"
	MatchStateActive    MatchState = "active"
	MatchStateCompleted MatchState = "completed"
)

// Active sub-labels and display sentinels
const (
	ActiveStatusScheduled  = "Scheduled"
	ActiveStatusInProgress = "In Progress"

	NextSessionUnscheduled = "To be scheduled"
	RecencyJustNow         = "Just now"
	DefaultFeedback        = "No feedback provided."
)

// MatchStatesTable is the DynamoDB table holding one match record per user
const MatchStatesTable = "MatchStates"

// Match is implemented by the three per-state match variants.
type Match interface {
	MatchID() string
	State() MatchState
}

// Counterpart describes the other side of a skill exchange.
type Counterpart struct {
	Name           string   `dynamodbav:"name" json:"name"`
	Avatar         string   `dynamodbav:"avatar" json:"avatar"`
	Skills         []string `dynamodbav:"skills" json:"skills"`                                     // Skills they can teach
	LearningGoals  []string `dynamodbav:"learningGoals" json:"learningGoals"`                       // Skills they want to learn
	MutualInterest string   `dynamodbav:"mutualInterest,omitempty" json:"mutualInterest,omitempty"` // Shared topic, if any
}

// PendingMatch is a proposed match awaiting accept or decline.
type PendingMatch struct {
	ID string `dynamodbav:"id" json:"id"`
	Counterpart
	MatchScore  int    `dynamodbav:"matchScore" json:"matchScore"` // 0-100, supplied by the recommender
	RequestedAt string `dynamodbav:"requestedAt" json:"requestedAt"`
	Message     string `dynamodbav:"message" json:"message"` // Opening message from the counterpart
}

// ActiveMatch is an accepted match with sessions in flight.
type ActiveMatch struct {
	ID string `dynamodbav:"id" json:"id"`
	Counterpart
	MatchScore        int     `dynamodbav:"matchScore" json:"matchScore"`
	Status            string  `dynamodbav:"status" json:"status"`           // "Scheduled" or "In Progress"
	NextSession       string  `dynamodbav:"nextSession" json:"nextSession"` // Formatted schedule or "To be scheduled"
	SessionNotes      string  `dynamodbav:"sessionNotes,omitempty" json:"sessionNotes,omitempty"`
	SessionsCompleted int     `dynamodbav:"sessionsCompleted" json:"sessionsCompleted"`
	Rating            float64 `dynamodbav:"rating" json:"rating"` // 0 = unrated
	LastActivity      string  `dynamodbav:"lastActivity" json:"lastActivity"`
}

// CompletedMatch is a reviewed match. Terminal.
type CompletedMatch struct {
	ID string `dynamodbav:"id" json:"id"`
	Counterpart
	MatchScore        int     `dynamodbav:"matchScore,omitempty" json:"matchScore,omitempty"`
	SessionsCompleted int     `dynamodbav:"sessionsCompleted" json:"sessionsCompleted"`
	Rating            float64 `dynamodbav:"rating" json:"rating"`
	Feedback          string  `dynamodbav:"feedback" json:"feedback"`
	CompletedAt       string  `dynamodbav:"completedAt" json:"completedAt"`
}

func (m PendingMatch) MatchID() string   { return m.ID }
func (m ActiveMatch) MatchID() string    { return m.ID }
func (m CompletedMatch) MatchID() string { return m.ID }

func (PendingMatch) State() MatchState   { return MatchStatePending }
func (ActiveMatch) State() MatchState    { return MatchStateActive }
func (CompletedMatch) State() MatchState { return MatchStateCompleted }

// MatchCollections is the per-user persisted record.
type MatchCollections struct {
	Pending   []PendingMatch   `dynamodbav:"pending" json:"pending"`
	Active    []ActiveMatch    `dynamodbav:"active" json:"active"`
	Completed []CompletedMatch `dynamodbav:"completed" json:"completed"`
}

// Normalized returns a copy whose collections are non-nil, so empty
// collections persist as empty lists rather than null.
func (c MatchCollections) Normalized() MatchCollections {
	out := MatchCollections{
		Pending:   make([]PendingMatch, len(c.Pending)),
		Active:    make([]ActiveMatch, len(c.Active)),
		Completed: make([]CompletedMatch, len(c.Completed)),
	}
	copy(out.Pending, c.Pending)
	copy(out.Active, c.Active)
	copy(out.Completed, c.Completed)
	return out
}

// Contains reports whether id is present in any collection.
func (c MatchCollections) Contains(id string) bool {
	_, ok := c.Find(id)
	return ok
}

// Find returns the match with the given id from whichever collection holds it.
func (c MatchCollections) Find(id string) (Match, bool) {
	for _, m := range c.Pending {
		if m.ID == id {
			return m, true
		}
	}
	for _, m := range c.Active {
		if m.ID == id {
			return m, true
		}
	}
	for _, m := range c.Completed {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// MatchStats summarizes a user's collections for the dashboard header.
type MatchStats struct {
	Pending           int     `json:"pending"`
	Active            int     `json:"active"`
	Completed         int     `json:"completed"`
	SessionsCompleted int     `json:"sessionsCompleted"`
	AverageRating     float64 `json:"averageRating"`
}
