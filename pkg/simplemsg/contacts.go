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

// CreateContact registers a new contact and returns the provider's record.
func (c *Client) CreateContact(ctx context.Context, name, phone string) (Contact, error) {
	body, err := json.Marshal(map[string]string{"name": name, "phone": phone})
	if err != nil {
		return nil, fmt.Errorf("simplemsg: marshal contact body: %w", err)
	}
	data, err := c.invoke(ctx, http.MethodPost, "/contacts", nil, body)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Contact](data)
}

// GetContact fetches a single contact by ID.
func (c *Client) GetContact(ctx context.Context, contactID string) (Contact, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, errors.New("simplemsg: contact id required")
	}
	data, err := c.invoke(ctx, http.MethodGet, "/contacts/"+url.PathEscape(contactID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Contact](data)
}

// ListContacts returns one page of contacts. Page bounds are validated by the
// provider, not locally.
func (c *Client) ListContacts(ctx context.Context, pageIndex, maxPerPage int) ([]Contact, error) {
	q := url.Values{}
	q.Set("pageIndex", strconv.Itoa(pageIndex))
	q.Set("max", strconv.Itoa(maxPerPage))
	data, err := c.invoke(ctx, http.MethodGet, "/contacts", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[[]Contact](data)
}

// UpdateContact patches a contact's name and phone and returns the updated record.
func (c *Client) UpdateContact(ctx context.Context, contactID, name, phone string) (Contact, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, errors.New("simplemsg: contact id required")
	}
	body, err := json.Marshal(map[string]string{"name": name, "phone": phone})
	if err != nil {
		return nil, fmt.Errorf("simplemsg: marshal contact body: %w", err)
	}
	data, err := c.invoke(ctx, http.MethodPatch, "/contacts/"+url.PathEscape(contactID), nil, body)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Contact](data)
}

// DeleteContact removes a contact. The provider's response body, if any, is
// discarded; a nil error means the delete was accepted.
func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	if strings.TrimSpace(contactID) == "" {
		return errors.New("simplemsg: contact id required")
	}
	_, err := c.invoke(ctx, http.MethodDelete, "/contacts/"+url.PathEscape(contactID), nil, nil)
	return err
}
