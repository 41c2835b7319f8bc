package mail

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/apextheme/apexstore/internal/domain/model"
)

const (
	senderIdentity = "APEX Theme <onboarding@resend.dev>"
	replyToAddress = "support@apextheme.dev"
	emailSubject   = "Your APEX Theme is Ready!"

	// expiryLayout mirrors a full date with short time, e.g.
	// "Monday, January 2, 2006 at 3:04 PM".
	expiryLayout = "Monday, January 2, 2006 at 3:04 PM"
)

// Notifier renders and sends the download notification email.
type Notifier struct {
	client *Client
}

// NewNotifier constructs Notifier over the given client.
func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

// SendDownloadLink emails the customer their personalized download link.
func (n *Notifier) SendDownloadLink(ctx context.Context, to, customerName, downloadURL string, expiresAt time.Time) error {
	var body bytes.Buffer
	err := downloadEmailTemplate.Execute(&body, downloadEmailData{
		CustomerName: customerName,
		DownloadURL:  downloadURL,
		Expiry:       expiresAt.Format(expiryLayout),
		MaxDownloads: model.DefaultMaxDownloads,
		SupportEmail: replyToAddress,
	})
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	return n.client.Send(ctx, Message{
		From:    senderIdentity,
		ReplyTo: replyToAddress,
		To:      []string{to},
		Subject: emailSubject,
		HTML:    body.String(),
	})
}
