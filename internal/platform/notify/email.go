package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	// If true, skip TLS certificate verification (useful for local dev like MailHog).
	InsecureSkipVerify bool
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

// send — простая отправка HTML-письма через net/smtp.
// Работает с MailHog (без аутентификации) и обычными серверами (PlainAuth).
func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	headers := map[string]string{
		"From":         m.from,
		"To":           to,
		"Subject":      encodeRFC2047(subject),
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}
	var sb strings.Builder
	for k, v := range headers {
		sb.WriteString(k + ": " + v + "\r\n")
	}
	sb.WriteString("\r\n")
	sb.WriteString(htmlBody)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	dialer := &net.Dialer{Timeout: 5 * time.Second}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}
	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Quit(); err != nil {
			fmt.Printf("smtp client quit error: %v\n", err)
		}
	}()

	if err := c.Hello("localhost"); err != nil {
		return err
	}

	// STARTTLS, если сервер умеет
	if ok, _ := c.Extension("STARTTLS"); ok {
		cfg := &tls.Config{
			ServerName:         m.host,
			InsecureSkipVerify: m.InsecureSkipVerify,
		}
		if err := c.StartTLS(cfg); err != nil {
			return err
		}
		// после TLS — повторим EHLO для обновления расширений
		if err := c.Hello("localhost"); err != nil {
			return err
		}
	}

	if auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err := c.Mail(m.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(sb.String())); err != nil {
		return err
	}
	return w.Close()
}

// SendResetCode отправляет одноразовый код восстановления пароля.
func (m *Mailer) SendResetCode(ctx context.Context, to, code string, ttl time.Duration) error {
	body := fmt.Sprintf(
		`<h2>Password reset</h2><p>Your verification code: <b>%s</b></p><p>The code is valid for %d minutes. If you did not request a reset, ignore this email.</p>`,
		code, int(ttl.Minutes()))
	return m.send(ctx, to, "Password reset code", body)
}

// SendWelcome — письмо после регистрации.
func (m *Mailer) SendWelcome(ctx context.Context, to, username string) error {
	body := fmt.Sprintf(`<h2>Welcome to RareViewIT</h2><p>Your account <b>%s</b> has been created.</p>`, username)
	return m.send(ctx, to, "Welcome to RareViewIT", body)
}

// SendContactNotice уведомляет админов о новой заявке с сайта.
func (m *Mailer) SendContactNotice(ctx context.Context, to, fromName, subject string) error {
	body := fmt.Sprintf(`<h2>New contact submission</h2><p>From: <b>%s</b></p><p>Subject: %s</p>`, fromName, subject)
	return m.send(ctx, to, "New contact submission", body)
}

// кодировка Subject в RFC2047 (на случай не-ASCII)
func encodeRFC2047(s string) string {
	return fmt.Sprintf("=?UTF-8?Q?%s?=", qEncode(s))
}

func qEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == ' ' {
			if c == ' ' {
				b.WriteByte('_')
			} else {
				b.WriteByte(c)
			}
		} else {
			b.WriteString(fmt.Sprintf("=%02X", c))
		}
	}
	return b.String()
}
