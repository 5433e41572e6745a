// Package smtp sends quotation and invoice documents by mail through a plain
// SMTP relay with a multipart MIME attachment.
package smtp

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"negoce/internal/core/ports"
)

// Mailer sends documents through an authenticated SMTP relay.
type Mailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewMailer configures a mailer for the given relay. host is the bare
// hostname used for authentication, addr the host:port dial target. Leave
// username empty for an unauthenticated relay.
func NewMailer(addr, host, from, username, password string) *Mailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &Mailer{addr: addr, from: from, auth: auth}
}

// Send mails the document as a base64 attachment alongside the plain-text
// body. The context is checked before dialing; net/smtp itself does not
// support cancellation mid-send.
func (m *Mailer) Send(ctx context.Context, recipients []string, subject, body string, doc ports.Document) error {
	if len(recipients) == 0 {
		return fmt.Errorf("send document %q: no recipients", doc.Filename)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := m.buildMessage(recipients, subject, body, doc)

	if err := smtp.SendMail(m.addr, m.auth, m.from, recipients, msg); err != nil {
		return fmt.Errorf("send document %q: %w", doc.Filename, err)
	}

	return nil
}

func (m *Mailer) buildMessage(recipients []string, subject, body string, doc ports.Document) []byte {
	const boundary = "negoce-document-boundary"

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", m.from)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: application/octet-stream\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n", doc.Filename)
	buf.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString(doc.Content)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	return buf.Bytes()
}
