package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	BookingCode  string
	HotelName    string
	ResourceName string
	CheckIn      string
	CheckOut     string
	Nights       int
	Guests       int
	TotalAmount  float64
	DetailLink   string
}

// BookingCancellationData feeds the cancellation email template.
type BookingCancellationData struct {
	BookingCode string
	HotelName   string
	CheckIn     string
	CheckOut    string
	CancelledAt string
}

func smtpDialer() *gomail.Dialer {
	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	return gomail.NewDialer(host, port, username, password)
}

func renderTemplate(path string, data any) (string, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", err
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendBookingConfirmationEmail mails the guest after a booking is admitted.
// Runs async so the request is not delayed; a QR of the booking code is
// embedded when qrPNG is non-nil.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, qrPNG []byte) {
	go func() {
		body, err := renderTemplate("templates/booking_confirmation.html", data)
		if err != nil {
			log.Printf("failed to render confirmation template: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmation #"+data.BookingCode)
		m.SetBody("text/html", body)

		if qrPNG != nil {
			m.Embed("qr_booking.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_booking_code>"},
				"Content-Disposition": {"inline"},
			}))
		}

		if err := smtpDialer().DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email to %s: %v", to, err)
		}
	}()
}

// SendBookingCancellationEmail mails the guest after a cancellation.
func SendBookingCancellationEmail(to string, data BookingCancellationData) {
	go func() {
		body, err := renderTemplate("templates/booking_cancelled.html", data)
		if err != nil {
			log.Printf("failed to render cancellation template: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking cancelled - "+data.BookingCode)
		m.SetBody("text/html", body)

		if err := smtpDialer().DialAndSend(m); err != nil {
			log.Printf("failed to send cancellation email to %s: %v", to, err)
		}
	}()
}
