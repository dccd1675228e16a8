package mailer

import (
	"fmt"
	"net/smtp"

	"marketplace-admin/config"
	"marketplace-admin/internal/domain/notify"
)

// SMTPNotifier delivers notifications as plain-text email. With no SMTP host
// configured it logs the message instead, which keeps dev environments quiet.
type SMTPNotifier struct{}

func (SMTPNotifier) Send(kind notify.Kind, recipient string, payload map[string]string) error {
	subject, body := render(kind, recipient, payload)

	if config.SMTP_HOST == "" {
		fmt.Printf("📬 [%s] to=%s subject=%q\n", kind, recipient, subject)
		return nil
	}

	from := config.SMTP_FROM
	auth := smtp.PlainAuth("", from, config.SMTP_PASSWORD, config.SMTP_HOST)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + recipient + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, from, []string{recipient}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}

func render(kind notify.Kind, recipient string, payload map[string]string) (string, string) {
	switch kind {
	case notify.KindVendorActivated:
		company := payload["company_name"]
		subject := "Your Vendor Account is Now Active"
		body := fmt.Sprintf(`Hello %s,

Congratulations! Your vendor account has been approved and activated.

Your Account Details:
- Company Name: %s
- Email: %s
- Account Status: Active & Verified

You can now login to your vendor dashboard using your email address. We use
a secure OTP (One-Time Password) system for login - no need to remember
passwords!

To login:
1. Visit: %s/register
2. Enter your email address
3. You'll receive an OTP code via email
4. Enter the OTP to access your dashboard

Best regards,
The Admin Team`, company, company, recipient, config.APP_URL)
		return subject, body

	case notify.KindLoginOTP:
		subject := "Your Login Code"
		body := fmt.Sprintf(`Hello,

Your one-time login code is: %s

It expires in 10 minutes. If you did not request it, ignore this email.

Best regards,
The Admin Team`, payload["code"])
		return subject, body

	case notify.KindSubscriptionTrialEnding:
		subject := "Your Trial is Ending Soon"
		body := fmt.Sprintf(`Hello,

Your trial for %s ends on %s. Renew to keep access to your subscription.

Best regards,
The Admin Team`, payload["plan_name"], payload["trial_ends_at"])
		return subject, body
	}

	return string(kind), ""
}
