package relay

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
)

// Outbox writes each message as an RFC 5322 file instead of sending it.
// It stands in for the mail service when running offline; an operator can
// forward the files by hand. The public key is never written.
type Outbox struct {
	dir string
	now func() time.Time
}

// NewOutbox creates an outbox rooted at dir. The directory is created on
// first use.
func NewOutbox(dir string) *Outbox {
	return &Outbox{dir: dir, now: time.Now}
}

// Dir returns the outbox directory.
func (o *Outbox) Dir() string { return o.dir }

// Send writes msg to a new .eml file.
func (o *Outbox) Send(ctx context.Context, creds Credentials, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(o.dir, 0o700); err != nil {
		return fmt.Errorf("creating outbox %s: %w", o.dir, err)
	}

	name := fmt.Sprintf("%s-%s.eml", o.now().UTC().Format("20060102T150405Z"), uuid.NewString()[:8])
	path := filepath.Join(o.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := writeMessage(f, o.now(), creds, msg); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writeMessage(w io.Writer, date time.Time, creds Credentials, msg Message) error {
	var h mail.Header
	h.SetDate(date)
	h.SetSubject(msg.Subject)
	h.SetAddressList("From", []*mail.Address{{Address: msg.FromEmail}})
	h.SetAddressList("To", []*mail.Address{{Address: msg.Recipient}})
	h.Set("X-Relay-Service", creds.ServiceID)
	h.Set("X-Relay-Template", creds.TemplateID)
	h.Set("X-Forum-Category", msg.Category)
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	if err := h.GenerateMessageID(); err != nil {
		return fmt.Errorf("generating message id: %w", err)
	}

	mw, err := mail.CreateSingleInlineWriter(w, h)
	if err != nil {
		return fmt.Errorf("creating message writer: %w", err)
	}
	if _, err := io.WriteString(mw, msg.Body); err != nil {
		mw.Close()
		return fmt.Errorf("writing body: %w", err)
	}
	return mw.Close()
}
