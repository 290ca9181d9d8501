// Package notify is a thin Subsystem adapter for Hydrogen's operator
// notification channel, adapted from the teacher's retention janitor
// (ticker + context-cancel goroutine) into an SMTP retry/backoff loop.
package notify

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/config"
	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// Message is a single queued notification.
type Message struct {
	Subject string
	Body    string
}

// Subsystem drains a queue of notifications to the configured SMTP target,
// retrying failed sends up to MaxRetries.
type Subsystem struct {
	cfg config.NotifyConfig

	mu     sync.Mutex
	queue  chan Message
	stopCh chan struct{}
	wg     sync.WaitGroup
}

var _ registry.Subsystem = (*Subsystem)(nil)

// New returns a notify Subsystem bound to cfg.
func New(cfg config.NotifyConfig) *Subsystem {
	return &Subsystem{cfg: cfg}
}

// Readiness reports ready only when Notify is enabled and an SMTP host is
// configured.
func (s *Subsystem) Readiness() (bool, []string) {
	if !s.cfg.Enabled {
		return false, []string{"Notify: disabled"}
	}
	if s.cfg.SMTP.Host == "" {
		return false, []string{"Notify: SMTP.Host not configured"}
	}
	return true, []string{fmt.Sprintf("Notify: ready via %s, notifier %q", s.cfg.SMTP.Host, s.cfg.Notifier)}
}

// Enqueue queues a notification for best-effort delivery. Returns false if
// the subsystem has not been started.
func (s *Subsystem) Enqueue(msg Message) bool {
	s.mu.Lock()
	q := s.queue
	s.mu.Unlock()
	if q == nil {
		return false
	}
	select {
	case q <- msg:
		return true
	default:
		log.Warn().Msg("notify queue full, dropping message")
		return false
	}
}

// Init starts the delivery loop.
func (s *Subsystem) Init() error {
	s.mu.Lock()
	s.queue = make(chan Message, 256)
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.deliverLoop()
	return nil
}

func (s *Subsystem) deliverLoop() {
	defer s.wg.Done()
	for {
		select {
		case msg := <-s.queue:
			s.deliverWithRetry(msg)
		case <-s.stopCh:
			return
		}
	}
}

func (s *Subsystem) deliverWithRetry(msg Message) {
	var lastErr error
	for attempt := int64(0); attempt <= s.cfg.SMTP.MaxRetries; attempt++ {
		if lastErr = s.deliver(msg); lastErr == nil {
			return
		}
		log.Warn().Err(lastErr).Int64("attempt", attempt).Msg("notify delivery failed, retrying")
		time.Sleep(time.Second)
	}
	log.Error().Err(lastErr).Str("subject", msg.Subject).Msg("notify delivery exhausted retries")
}

func (s *Subsystem) deliver(msg Message) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTP.Host, s.cfg.SMTP.Port)
	var auth smtp.Auth
	if s.cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTP.Username, s.cfg.SMTP.Password, s.cfg.SMTP.Host)
	}

	body := []byte(fmt.Sprintf("Subject: %s\r\n\r\n%s", msg.Subject, msg.Body))

	if !s.cfg.SMTP.UseTLS {
		return smtp.SendMail(addr, auth, s.cfg.SMTP.FromAddress, []string{s.cfg.SMTP.FromAddress}, body)
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.SMTP.Host})
	if err != nil {
		return fmt.Errorf("notify tls dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.SMTP.Host)
	if err != nil {
		return fmt.Errorf("notify smtp client: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("notify smtp auth: %w", err)
		}
	}
	if err := client.Mail(s.cfg.SMTP.FromAddress); err != nil {
		return err
	}
	if err := client.Rcpt(s.cfg.SMTP.FromAddress); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	return w.Close()
}

// Shutdown stops the delivery loop and waits for it to exit.
func (s *Subsystem) Shutdown() error {
	s.mu.Lock()
	stopCh := s.stopCh
	s.mu.Unlock()
	if stopCh == nil {
		return nil
	}
	close(stopCh)
	s.wg.Wait()
	return nil
}
