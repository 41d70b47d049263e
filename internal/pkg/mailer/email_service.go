package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, displayName string) error
	SendProfileApproved(toEmail, displayName string) error
	SendProfileRejected(toEmail, displayName, notes string) error
	SendMatchCreated(toEmail, displayName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderName, clientURL string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		clientURL:   clientURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendWelcome(toEmail, displayName string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Bloom, %s!</h2>
			<p>Your account is ready. Complete your profile to start receiving curated match suggestions.</p>
			<a href="%s/onboarding" style="background-color: #E8557A; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Start onboarding</a>
		</div>
	`, displayName, s.clientURL)
	return s.send(toEmail, "Welcome to Bloom", body)
}

func (s *emailService) SendProfileApproved(toEmail, displayName string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your profile is live, %s!</h2>
			<p>Our team has reviewed and approved your profile. You can now receive match suggestions.</p>
			<a href="%s/matches" style="background-color: #E8557A; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">See your matches</a>
		</div>
	`, displayName, s.clientURL)
	return s.send(toEmail, "Your profile has been approved", body)
}

func (s *emailService) SendProfileRejected(toEmail, displayName, notes string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>About your profile, %s</h2>
			<p>Our team reviewed your profile and it needs a few changes before it can go live:</p>
			<blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #555;">%s</blockquote>
			<p>Update your profile and resubmit whenever you are ready.</p>
			<a href="%s/profile" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Edit profile</a>
		</div>
	`, displayName, notes, s.clientURL)
	return s.send(toEmail, "Your profile needs changes", body)
}

func (s *emailService) SendMatchCreated(toEmail, displayName string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You have a new match, %s!</h2>
			<p>Our matchmakers picked someone for you. Take a look and decide.</p>
			<a href="%s/matches" style="background-color: #E8557A; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View match</a>
		</div>
	`, displayName, s.clientURL)
	return s.send(toEmail, "You have a new match", body)
}
