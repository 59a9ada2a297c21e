package model

// Inquiry is a message submitted through the public contact form.
// ID and CreatedAt are assigned server-side at insertion and never change.
// IsRead starts false and only ever transitions to true.
type Inquiry struct {
	ID        string `json:"id" dynamodbav:"id"`
	Name      string `json:"name,omitempty" dynamodbav:"name"`
	Email     string `json:"email" dynamodbav:"email"`
	Phone     string `json:"phone,omitempty" dynamodbav:"phone"`
	Message   string `json:"message" dynamodbav:"message"`
	LoanType  string `json:"loanType,omitempty" dynamodbav:"loanType"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"` // ISO-8601 UTC
	IsRead    bool   `json:"isRead" dynamodbav:"isRead"`
}
