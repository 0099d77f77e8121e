package email

import (
	"bytes"
	"fmt"
	"go-jobmatch-backend/config"
	"html/template"
	"net/smtp"
)

// Notifier sends transactional notification mail via SMTP. Every send is
// fire-and-forget from the caller's point of view: a failed notification is
// logged by the caller and never rolls back the write that triggered it.
type Notifier struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// ApprovalDecisionData holds the data for approval decision emails
type ApprovalDecisionData struct {
	CompanyName string
	Decision    string // approved / rejected / approval canceled
	Reason      string // empty for approvals
}

// InquiryNotificationData holds the data for new-inquiry emails
type InquiryNotificationData struct {
	JobSeekerName string
	CompanyName   string
	Position      string
	Message       string
}

// NewNotifier creates a notifier from SMTP configuration
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

const approvalDecisionTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Account Review Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .reason-box { background: white; padding: 15px; border-left: 4px solid #cc3300; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Employer Account Review</h1>
        </div>
        <div class="content">
            <p>Hello {{.CompanyName}},</p>
            <p>Your employer account has been <strong>{{.Decision}}</strong>.</p>
            {{if .Reason}}
            <div class="reason-box">{{.Reason}}</div>
            {{end}}
        </div>
        <div class="footer">
            <p>This is an automated message from the jobmatch platform.</p>
        </div>
    </div>
</body>
</html>`

const inquiryNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Job Inquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Job Inquiry</h1>
        </div>
        <div class="content">
            <p>Hello {{.JobSeekerName}},</p>
            <p><strong>{{.CompanyName}}</strong> reached out about the position of <strong>{{.Position}}</strong>.</p>
            <div class="message-box">{{.Message}}</div>
            <p>Sign in to read and respond to this inquiry.</p>
        </div>
        <div class="footer">
            <p>This is an automated message from the jobmatch platform.</p>
        </div>
    </div>
</body>
</html>`

// SendApprovalDecision notifies an employer of an approval decision
func (n *Notifier) SendApprovalDecision(to string, data ApprovalDecisionData) error {
	subject := fmt.Sprintf("Employer account %s", data.Decision)
	return n.send(to, subject, approvalDecisionTemplate, data)
}

// SendInquiryNotification notifies a job seeker of a new inquiry
func (n *Notifier) SendInquiryNotification(to string, data InquiryNotificationData) error {
	subject := fmt.Sprintf("New job inquiry from %s", data.CompanyName)
	return n.send(to, subject, inquiryNotificationTemplate, data)
}

func (n *Notifier) send(to, subject, tmplText string, data interface{}) error {
	tmpl, err := template.New("mail").Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		n.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", n.username, n.password, n.host)

	addr := fmt.Sprintf("%s:%s", n.host, n.port)
	if err := smtp.SendMail(addr, auth, n.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the notifier has valid SMTP configuration
func (n *Notifier) IsConfigured() bool {
	return n.host != "" && n.username != "" && n.password != ""
}
