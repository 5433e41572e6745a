package ports

import (
	"context"
)

// Document is a pre-rendered file to dispatch by mail. The application never
// renders documents itself; clients upload the finished PDF.
type Document struct {
	Filename string
	Content  []byte
}

// DocumentMailer sends a pre-rendered document to a list of recipients.
type DocumentMailer interface {
	// Send mails the document with the given subject and body text.
	Send(ctx context.Context, recipients []string, subject, body string, doc Document) error
}
