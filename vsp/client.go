// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package vsp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alphagov/passport-verify/common"
)

const (
	generateRequestEndpoint   = "/generate-request"
	translateResponseEndpoint = "/translate-response"
)

// Client issues the two Verify Service Provider operations. It holds no
// per-run state, so a single Client may serve any number of concurrent
// verification runs.
type Client struct {
	Host       string         // base URI the Verify Service Provider listens on
	HTTPClient *common.Client // HTTP(s) client connection configuration
	Logger     *slog.Logger   // optional; slog.Default() when nil
}

// NewClient instantiates a Client against the supplied host.
func NewClient(host string) *Client {
	return &Client{
		Host:       host,
		HTTPClient: common.NewClient(),
	}
}

// GenerateResult is the outcome of a GenerateRequest call. Exactly one of
// AuthnRequest and Err is set, according to Status.
type GenerateResult struct {
	Status       int
	AuthnRequest *AuthnRequest
	Err          *ErrorMessage
}

// TranslateResult is the outcome of a TranslateResponse call. Exactly one of
// Outcome and Err is set, according to Status.
type TranslateResult struct {
	Status  int
	Outcome *TranslatedResponse
	Err     *ErrorMessage
}

type generateRequestBody struct {
	LevelOfAssurance LevelOfAssurance `json:"levelOfAssurance"`
	EntityID         string           `json:"entityId,omitempty"`
}

type translateRequestBody struct {
	SAMLResponse     string           `json:"samlResponse"`
	RequestID        string           `json:"requestId"`
	LevelOfAssurance LevelOfAssurance `json:"levelOfAssurance"`
	EntityID         string           `json:"entityId,omitempty"`
}

// GenerateRequest asks the Verify Service Provider for a fresh SAML authn
// request at the supplied level of assurance. entityID identifies the
// relying party in multi-tenant deployments and is omitted from the request
// body when empty. Error replies from the provider are returned as a typed
// ErrorMessage with the HTTP status preserved, not as a Go error, so that
// the caller can discriminate; only transport and decoding failures err.
func (c *Client) GenerateRequest(ctx context.Context, loa LevelOfAssurance, entityID string) (*GenerateResult, error) {
	body := generateRequestBody{LevelOfAssurance: loa, EntityID: entityID}

	res, err := c.post(ctx, generateRequestEndpoint, body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode/100 != 2 {
		errMsg := c.decodeError(ctx, res, "generating authn request failed")
		return &GenerateResult{Status: res.StatusCode, Err: errMsg}, nil
	}

	var authnRequest AuthnRequest
	if err := common.DecodeJSONBody(res, &authnRequest); err != nil {
		return nil, fmt.Errorf("decoding authn request body: %w", err)
	}

	c.logger().InfoContext(ctx, "authn request generated",
		slog.String("requestId", authnRequest.RequestID))

	return &GenerateResult{Status: res.StatusCode, AuthnRequest: &authnRequest}, nil
}

// TranslateResponse submits the raw SAML response posted back by the hub,
// together with the correlation token of the authn request that triggered
// it, for classification by the Verify Service Provider. The same
// status-discrimination contract as GenerateRequest applies.
func (c *Client) TranslateResponse(ctx context.Context, samlResponse, requestID string, loa LevelOfAssurance, entityID string) (*TranslateResult, error) {
	body := translateRequestBody{
		SAMLResponse:     samlResponse,
		RequestID:        requestID,
		LevelOfAssurance: loa,
		EntityID:         entityID,
	}

	res, err := c.post(ctx, translateResponseEndpoint, body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode/100 != 2 {
		errMsg := c.decodeError(ctx, res, "translating response failed")
		return &TranslateResult{Status: res.StatusCode, Err: errMsg}, nil
	}

	var envelope translatedEnvelope
	if err := common.DecodeJSONBody(res, &envelope); err != nil {
		return nil, fmt.Errorf("decoding translated response body: %w", err)
	}

	outcome, err := envelope.toResponse()
	if err != nil {
		return nil, err
	}

	c.logger().InfoContext(ctx, "response translated",
		slog.String("requestId", requestID),
		slog.String("scenario", string(outcome.Scenario)))

	return &TranslateResult{Status: res.StatusCode, Outcome: outcome}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body interface{}) (*http.Response, error) {
	uri, err := common.JoinURI(c.Host, endpoint)
	if err != nil {
		return nil, fmt.Errorf("resolving %s endpoint: %w", endpoint, err)
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = common.NewClient()
	}

	c.logger().DebugContext(ctx, "sending request",
		slog.String("method", http.MethodPost),
		slog.String("uri", uri))

	res, err := hc.PostJSON(ctx, uri, body)
	if err != nil {
		return nil, fmt.Errorf("POST %s failed: %w", endpoint, err)
	}

	return res, nil
}

// decodeError extracts the typed error body from a non-2xx response. It
// understands both the provider's plain {code,message} shape and RFC7807
// problem documents, and falls back to the HTTP status line when the body is
// not decodable.
func (c *Client) decodeError(ctx context.Context, res *http.Response, msg string) *ErrorMessage {
	errMsg := ErrorMessage{Code: res.StatusCode, Message: res.Status}

	if common.IsProblemResponse(res) {
		if prob, err := common.DecodeProblem(res); err == nil {
			errMsg.Message = prob.Error()
		}
	} else {
		var decoded ErrorMessage
		if err := common.DecodeJSONBody(res, &decoded); err == nil && decoded.Message != "" {
			errMsg = decoded
			if errMsg.Code == 0 {
				errMsg.Code = res.StatusCode
			}
		}
	}

	c.logger().WarnContext(ctx, msg,
		slog.Int("status", res.StatusCode),
		slog.String("message", errMsg.Message))

	return &errMsg
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
