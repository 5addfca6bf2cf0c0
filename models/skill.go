package models

// Skill is one skill a user has listed.
type Skill struct {
	UserID    string `dynamodbav:"userId" json:"userId"`   // Partition Key (PK)
	SkillID   string `dynamodbav:"skillId" json:"skillId"` // Sort Key (SK)
	Skill     string `dynamodbav:"skill" json:"skill"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// TableName returns the DynamoDB table name for the Skill model
func (Skill) TableName() string {
	return "Skills"
}
