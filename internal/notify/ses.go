package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// SESAPI is the subset of the SES v2 client the sender uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends the fixed new-lead email through Amazon SES under a fixed
// from/to/cc configuration.
type SESSender struct {
	client SESAPI
	from   string
	to     []string
	cc     []string
}

// NewSESSender creates a sender with the configured addresses.
func NewSESSender(client SESAPI, from string, to, cc []string) *SESSender {
	return &SESSender{client: client, from: from, to: to, cc: cc}
}

var _ Sender = (*SESSender)(nil)

var leadEmailTmpl = template.Must(template.New("lead").Parse(`<html>
<body>
  <h2>New Lead Submission</h2>
  <table cellpadding="4">
    <tr><td><b>Name</b></td><td>{{.FirstName}} {{.LastName}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
    <tr><td><b>Loan Type</b></td><td>{{.LoanType}}</td></tr>
    <tr><td><b>Property Value</b></td><td>{{.PropertyValue}}</td></tr>
    <tr><td><b>Down Payment</b></td><td>{{.DownPayment}}</td></tr>
    <tr><td><b>Credit Score</b></td><td>{{.CreditScore}}</td></tr>
    <tr><td><b>Timeframe</b></td><td>{{.Timeframe}}</td></tr>
    <tr><td><b>Submitted</b></td><td>{{.CreatedAt}}</td></tr>
  </table>
</body>
</html>`))

// Send renders the lead into the fixed HTML template and delivers it.
func (s *SESSender) Send(ctx context.Context, lead *model.Lead) error {
	var body bytes.Buffer
	if err := leadEmailTmpl.Execute(&body, lead); err != nil {
		return fmt.Errorf("render lead email: %w", err)
	}

	subject := fmt.Sprintf("New Lead: %s", strings.TrimSpace(lead.FirstName+" "+lead.LastName))
	if subject == "New Lead: " {
		subject = "New Lead Submission"
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &sestypes.Destination{
			ToAddresses: s.to,
			CcAddresses: s.cc,
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(body.String())},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
