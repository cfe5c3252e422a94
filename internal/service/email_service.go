package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/ikay-store/api/internal/config"
	"github.com/ikay-store/api/internal/models"
)

// EmailService 邮件发送服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled 判断邮件服务是否启用
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// OrderConfirmationEmailInput 订单确认邮件输入
type OrderConfirmationEmailInput struct {
	OrderNo      string
	CustomerName string
	Items        []models.OrderItem
	TotalAmount  models.Money
}

// SendOrderConfirmationEmail 发送订单确认邮件
func (s *EmailService) SendOrderConfirmationEmail(toEmail string, input OrderConfirmationEmailInput) error {
	subject, body := buildOrderConfirmationContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendCustomEmail 发送测试邮件或自定义邮件
func (s *EmailService) SendCustomEmail(toEmail, subject, body string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "IKAY SMTP test"
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = "This is a test email from IKAY. Your SMTP configuration works."
	}
	return s.sendTextEmail(toEmail, subject, body)
}

func buildOrderConfirmationContent(input OrderConfirmationEmailInput) (string, string) {
	subject := fmt.Sprintf("IKAY order %s confirmed", input.OrderNo)

	var buf bytes.Buffer
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&buf, "Hi %s,\n\n", name)
	fmt.Fprintf(&buf, "Thanks for shopping with IKAY. Your order %s has been placed.\n\n", input.OrderNo)
	for _, item := range input.Items {
		fmt.Fprintf(&buf, "  %s x%d  %s\n", item.Name, item.Quantity, FormatINR(item.TotalPrice))
	}
	fmt.Fprintf(&buf, "\nTotal: %s\n\n", FormatINR(input.TotalAmount))
	buf.WriteString("We will email you again once your order ships.\n")
	return subject, buf.String()
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	if s.cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
