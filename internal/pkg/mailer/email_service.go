package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReport(toEmail, targetRole string, pdf []byte) error
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

func (s *emailService) SendReport(toEmail, targetRole string, pdf []byte) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your CareerIQ Analysis Is Ready")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your CareerIQ analysis is ready</h2>
			<p>The full report for your target role <b>%s</b> is attached as a PDF.</p>
			<p>The report describes how the market reads your profile. Keep it private.</p>
		</div>
	`, targetRole)

	m.SetBody("text/html", body)
	m.Attach("careeriq-report.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send report to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Report sent to %s\n", toEmail)
	return nil
}
