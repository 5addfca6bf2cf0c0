package models

// User is a registered member, keyed by the identity provider's user id.
type User struct {
	ID        string `dynamodbav:"id" json:"id"`
	Name      string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Email     string `dynamodbav:"email" json:"email"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// UsersTable is the DynamoDB table name for users
const UsersTable = "Users"
