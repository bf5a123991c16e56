package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"sync"

	"health-tracker/pkg/utils"

	"go.uber.org/zap"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers email through a bounded worker pool so request handlers
// never block on SMTP. Enqueueing is non-blocking: when the queue is full
// the message is dropped and logged.
type Mailer struct {
	config utils.EmailConfig
	log    *zap.Logger
	jobs   chan Message
	wg     sync.WaitGroup
	once   sync.Once
}

func New(config utils.EmailConfig, log *zap.Logger) *Mailer {
	workers := config.Workers
	if workers <= 0 {
		workers = 10
	}
	queueSize := config.QueueSize
	if queueSize <= 0 {
		queueSize = 100
	}

	m := &Mailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
		jobs:   make(chan Message, queueSize),
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}

	return m
}

// Enqueue hands a message to the pool without blocking.
func (m *Mailer) Enqueue(msg Message) {
	select {
	case m.jobs <- msg:
	default:
		m.log.Error("Mail queue full, dropping message",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}

// SendConfirmation enqueues the registration confirmation carrying the
// verification link.
func (m *Mailer) SendConfirmation(email, username, verifyURL string) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nplease confirm your email address by opening the link below:\r\n\r\n%s\r\n",
		username, verifyURL)

	m.Enqueue(Message{
		To:      email,
		Subject: "Confirm your registration",
		Body:    body,
	})
}

// SendPasswordPin enqueues the password reset pin mail.
func (m *Mailer) SendPasswordPin(email, pin string) {
	body := fmt.Sprintf(
		"A password change was requested for this address.\r\n\r\nYour pin: %s\r\n\r\nIf this wasn't you, ignore this mail.\r\n",
		pin)

	m.Enqueue(Message{
		To:      email,
		Subject: "Password change pin",
		Body:    body,
	})
}

// Close stops accepting messages and waits for in-flight deliveries.
func (m *Mailer) Close() {
	m.once.Do(func() {
		close(m.jobs)
	})
	m.wg.Wait()
}

func (m *Mailer) worker() {
	defer m.wg.Done()

	for msg := range m.jobs {
		if err := m.deliver(msg); err != nil {
			m.log.Error("Failed to send mail",
				zap.Error(err),
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
			)
			continue
		}
		m.log.Info("Mail sent",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}

func (m *Mailer) deliver(msg Message) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var sb strings.Builder
	sb.WriteString("From: " + m.config.From + "\r\n")
	sb.WriteString("To: " + msg.To + "\r\n")
	sb.WriteString("Subject: " + msg.Subject + "\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(msg.Body)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{msg.To}, []byte(sb.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	return nil
}
