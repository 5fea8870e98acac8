package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tgimg/internal/domain/entity"
)

// Notifier posts compression reports to the configured chat as text messages.
type Notifier struct {
	client *Client
}

func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Report(ctx context.Context, report *entity.CompressionReport) error {
	summary, err := json.Marshal(report)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{
		"chat_id": n.client.chatID,
		"text":    fmt.Sprintf("compressed %s: %s", report.FileName, summary),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.client.methodURL("sendMessage"),
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := n.client.call(req, "sendMessage failed"); err != nil {
		return fmt.Errorf("sendMessage: %w", err)
	}

	return nil
}
