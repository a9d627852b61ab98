package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"github.com/jordan-wright/email"
)

// SendPasswordResetEmail mails a reset link. Plain text is enough here;
// the token expires, so no unsubscribe or branding needed.
func SendPasswordResetEmail(to, token string) {
	go func() {
		link := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("FRONTEND_URL"), token)

		e := email.NewEmail()
		e.From = os.Getenv("SMTP_FROM")
		e.To = []string{to}
		e.Subject = "Password reset request"
		e.Text = []byte(fmt.Sprintf(
			"A password reset was requested for your account.\n\n"+
				"Open the link below to choose a new password. The link expires in 30 minutes.\n\n%s\n\n"+
				"If you did not request this, you can ignore this email.", link))

		addr := os.Getenv("SMTP_HOST") + ":" + os.Getenv("SMTP_PORT")
		auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
		if err := e.Send(addr, auth); err != nil {
			log.Printf("failed to send reset email to %s: %v", to, err)
		}
	}()
}
