package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lewagon/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Le Wagon <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #D23333; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E1E1E; line-height: 1.6; }
			.content h2 { color: #1E1E1E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #FDEAEA; padding: 15px; border-radius: 4px; border-left: 4px solid #D23333; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LE WAGON</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Le Wagon Learning. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Le Wagon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Le Wagon</strong>! Your account has been created.</p>
		<p>Browse the catalog and enroll in your first course to get started.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment Confirmation
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Head to your dashboard and start the first lesson.
		</div>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 3. Payment Receipt
func SendPaymentReceiptEmail(email, name, courseTitle string, amount float64, currency string) {
	subject := "Payment Received: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>%.2f %s</strong> for <strong>%s</strong>.</p>
		<p>Your enrollment is active. Happy learning!</p>
	`, name, amount, currency, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Confirmed", body))
}

// 4. Contact Form Notification (to operator inbox). Returned error is the
// caller's problem; the contact intake logs and swallows it.
func SendContactNotificationEmail(name, email, subject, message string) error {
	mailSubject := "New Contact Form Submission"
	if subject != "" {
		mailSubject = "New Contact Form Submission: " + subject
	}
	body := fmt.Sprintf(`
		<p>New contact form submission received:</p>
		<div class="info-box">
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
		</div>
		<p>%s</p>
	`, name, email, message)

	return SendEmail([]string{config.AppConfig.ContactInbox}, mailSubject, getEmailTemplate(mailSubject, body))
}
