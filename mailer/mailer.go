package mailer

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/kmpicazo/HR201System/models"
)

// Mailer sends the HR alert mails. Delivery is fire-and-forget everywhere it
// is used: callers log errors and move on, they never fail a request over mail.
type Mailer interface {
	SendContractExpirationAlert(e models.Employee) error
	SendIncompleteFileAlert(e models.Employee) error
	SendUploadConfirmation(e models.Employee, fileType string) error
}

type ResendMailer struct {
	client *resend.Client
	from   string
	to     string // HR inbox for internal alerts
}

func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from, to: to}
}

func (m *ResendMailer) send(to, subject, html string) error {
	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("[mailer] send failed: %v", err)
	}
	return err
}

func (m *ResendMailer) SendContractExpirationAlert(e models.Employee) error {
	subject := fmt.Sprintf("Contract Expiration Alert - %s", e.FullName())
	html := fmt.Sprintf(`<h2>Contract Expiration Alert</h2>
<p>The contract for <strong>%s</strong> will expire in 30 days.</p>
<p><strong>Employee ID:</strong> %s</p>
<p><strong>Position:</strong> %s</p>
<p><strong>Department:</strong> %s</p>
<p>Please take necessary action to renew or terminate the contract.</p>`,
		e.FullName(), e.EmployeeCode, e.Position, e.Department)
	return m.send(m.to, subject, html)
}

func (m *ResendMailer) SendIncompleteFileAlert(e models.Employee) error {
	subject := fmt.Sprintf("Incomplete 201 File - %s", e.FullName())
	html := fmt.Sprintf(`<h2>Incomplete 201 File Alert</h2>
<p>The 201 file for <strong>%s</strong> is incomplete.</p>
<p><strong>Employee ID:</strong> %s</p>
<p><strong>Position:</strong> %s</p>
<p>Please complete the required documents.</p>`,
		e.FullName(), e.EmployeeCode, e.Position)
	return m.send(m.to, subject, html)
}

func (m *ResendMailer) SendUploadConfirmation(e models.Employee, fileType string) error {
	if e.Email == "" {
		return nil
	}
	subject := fmt.Sprintf("Document Upload Confirmation - %s", fileType)
	html := fmt.Sprintf(`<h2>Document Upload Confirmation</h2>
<p>Your <strong>%s</strong> has been successfully uploaded to your 201 file.</p>
<p>You can view it anytime in your employee portal.</p>`, fileType)
	return m.send(e.Email, subject, html)
}
