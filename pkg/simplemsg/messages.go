package simplemsg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SendMessage submits an outbound message addressed to a contact by ID.
func (c *Client) SendMessage(ctx context.Context, fromPhone, toContactID, content string) (Message, error) {
	if strings.TrimSpace(toContactID) == "" {
		return nil, errors.New("simplemsg: recipient contact id required")
	}
	// Wire shape the API expects: "to" is an object holding the contact ID.
	body, err := json.Marshal(struct {
		From    string            `json:"from"`
		To      map[string]string `json:"to"`
		Content string            `json:"content"`
	}{
		From:    fromPhone,
		To:      map[string]string{"id": toContactID},
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("simplemsg: marshal message body: %w", err)
	}
	data, err := c.invoke(ctx, http.MethodPost, "/messages", nil, body)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Message](data)
}

// GetMessage fetches a single message by ID.
func (c *Client) GetMessage(ctx context.Context, messageID string) (Message, error) {
	if strings.TrimSpace(messageID) == "" {
		return nil, errors.New("simplemsg: message id required")
	}
	data, err := c.invoke(ctx, http.MethodGet, "/messages/"+url.PathEscape(messageID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Message](data)
}

// ListMessages returns one page of messages.
func (c *Client) ListMessages(ctx context.Context, page, limit int) ([]Message, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	data, err := c.invoke(ctx, http.MethodGet, "/messages", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[[]Message](data)
}
