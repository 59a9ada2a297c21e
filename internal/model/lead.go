package model

// Lead is a full pre-qualification submission from the multi-step form.
// Field values arrive as free-form strings from the form and are stored
// as-is; ID/CreatedAt/IsRead follow the same contract as Inquiry.
type Lead struct {
	ID            string `json:"id" dynamodbav:"id"`
	FirstName     string `json:"firstName,omitempty" dynamodbav:"firstName"`
	LastName      string `json:"lastName,omitempty" dynamodbav:"lastName"`
	Email         string `json:"email" dynamodbav:"email"`
	Phone         string `json:"phone,omitempty" dynamodbav:"phone"`
	LoanType      string `json:"loanType,omitempty" dynamodbav:"loanType"`
	PropertyValue string `json:"propertyValue,omitempty" dynamodbav:"propertyValue"`
	DownPayment   string `json:"downPayment,omitempty" dynamodbav:"downPayment"`
	CreditScore   string `json:"creditScore,omitempty" dynamodbav:"creditScore"`
	Timeframe     string `json:"timeframe,omitempty" dynamodbav:"timeframe"`
	CreatedAt     string `json:"createdAt" dynamodbav:"createdAt"` // ISO-8601 UTC
	IsRead        bool   `json:"isRead" dynamodbav:"isRead"`
}
