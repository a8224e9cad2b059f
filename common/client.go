// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alphagov/passport-verify/auth"
)

// Client holds configuration data associated with the HTTP(s) connection to
// the Verify Service Provider.
type Client struct {
	HTTPClient http.Client
	Auth       auth.IAuthenticator
}

// NewClient instantiates a new Client with a default timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// PostJSON encodes body as JSON and POSTs it to the supplied URI. The raw
// response is returned undecoded so that the caller can discriminate on the
// status code before interpreting the body.
func (c *Client) PostJSON(ctx context.Context, uri string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("POST %q, encoding request body: %w", uri, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("POST %q, request creation failed: %w", uri, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.Auth != nil {
		header, err := c.Auth.EncodeHeader()
		if err != nil {
			return nil, fmt.Errorf("POST %q, encoding Authorization header: %w", uri, err)
		}
		if header != "" {
			req.Header.Set("Authorization", header)
		}
	}

	hc := &c.HTTPClient

	res, err := hc.Do(req)
	if err != nil {
		return nil, err
	}

	return res, nil
}
