// Package notify sends boosting updates to Telegram.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"
)

// telegramAPI is the Bot API base, overridable in tests
const telegramAPI = "https://api.telegram.org"

// Telegram posts boosting updates to a chat via the Bot API. Messages are
// sent silently and optionally into a forum topic.
type Telegram struct {
	botToken string
	chatID   string
	topicID  string
	client   *http.Client
	baseURL  string
}

// NewTelegram creates a Telegram notifier. The topic ID is optional and
// targets a forum thread when set.
func NewTelegram(botToken, chatID, topicID string) *Telegram {
	return &Telegram{
		botToken: botToken,
		chatID:   chatID,
		topicID:  topicID,
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  telegramAPI,
	}
}

// Notify sends a boosting update for an episode describing the action taken
func (t *Telegram) Notify(ctx context.Context, episodeTitle, action string) error {
	message := fmt.Sprintf("<b>Release-Boosting Update:</b>\nEpisode: %s\nAction: %s\n",
		html.EscapeString(episodeTitle), html.EscapeString(action))

	payload := map[string]any{
		"chat_id":              t.chatID,
		"text":                 message,
		"parse_mode":           "HTML",
		"disable_notification": true,
	}
	if t.topicID != "" {
		payload["message_thread_id"] = t.topicID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
