package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendErrorAlert(toEmails []string, source, errorType, message string) error
	SendDailySummary(toEmails []string, date string, verifications, errors int64, successRate float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendErrorAlert(toEmails []string, source, errorType, message string) error {
	if len(toEmails) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmails...)
	m.SetHeader("Subject", fmt.Sprintf("New error from %s: %s", source, errorType))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New system error</h2>
			<p><strong>Source:</strong> %s</p>
			<p><strong>Type:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<pre style="background: #f5f5f5; padding: 10px; border-radius: 5px;">%s</pre>
		</div>
	`, source, errorType, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send error alert to %s: %v\n", strings.Join(toEmails, ","), err)
		return err
	}
	return nil
}

func (s *emailService) SendDailySummary(toEmails []string, date string, verifications, errors int64, successRate float64) error {
	if len(toEmails) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmails...)
	m.SetHeader("Subject", fmt.Sprintf("Daily summary for %s", date))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Daily summary %s</h2>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 5px 15px 5px 0;">Verifications</td><td><strong>%d</strong></td></tr>
				<tr><td style="padding: 5px 15px 5px 0;">Success rate</td><td><strong>%.1f%%</strong></td></tr>
				<tr><td style="padding: 5px 15px 5px 0;">New errors</td><td><strong>%d</strong></td></tr>
			</table>
		</div>
	`, date, verifications, successRate, errors)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send daily summary to %s: %v\n", strings.Join(toEmails, ","), err)
		return err
	}
	return nil
}
