package service

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/oportuna/oportuna-api/internal/config"
	"github.com/oportuna/oportuna-api/internal/domain"
)

// EmailSender delivers notifications over SMTP. Every send happens on
// its own goroutine; failures are logged and never surfaced to callers.
type EmailSender struct {
	conf *config.SMTPConfig
}

func NewEmailSender(conf *config.SMTPConfig) *EmailSender {
	return &EmailSender{
		conf: conf,
	}
}

func (s *EmailSender) SendActivationEmail(user domain.User) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.conf.From)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Activate your Oportuna account")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nUse this token to activate your account: %s\n\nThe token expires on %s.",
		user.Name, user.Token, user.TokenExpiry.Format("02/01/2006 15:04"),
	))

	s.send(m)
}

func (s *EmailSender) SendReservationConfirmation(customer, owner domain.User, reservation domain.Reservation, opportunity domain.Opportunity) {
	toCustomer := gomail.NewMessage()
	toCustomer.SetHeader("From", s.conf.From)
	toCustomer.SetHeader("To", customer.Email)
	toCustomer.SetHeader("Subject", "Reservation confirmed")
	toCustomer.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour reservation for %q on %s (%d people, %s EUR total) is confirmed.",
		customer.Name, opportunity.Name, reservation.CheckInDate.Format("02/01/2006"),
		reservation.NumOfPeople, reservation.FixedPrice.StringFixed(2),
	))
	s.send(toCustomer)

	toOwner := gomail.NewMessage()
	toOwner.SetHeader("From", s.conf.From)
	toOwner.SetHeader("To", owner.Email)
	toOwner.SetHeader("Subject", "New reservation received")
	toOwner.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\n%s booked %q for %s (%d people).",
		owner.Name, customer.Name, opportunity.Name,
		reservation.CheckInDate.Format("02/01/2006"), reservation.NumOfPeople,
	))
	s.send(toOwner)
}

func (s *EmailSender) send(m *gomail.Message) {
	go func() {
		d := gomail.NewDialer(s.conf.Host, s.conf.Port, s.conf.Username, s.conf.Password)
		if err := d.DialAndSend(m); err != nil {
			zap.L().Warn("failed to send email", zap.Error(err))
		}
	}()
}
