// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package vsp

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Scenario classifies the outcome of a translated SAML response. The set is
// closed: exactly one scenario applies to a completed verification run.
type Scenario string

const (
	ScenarioIdentityVerified     Scenario = "IDENTITY_VERIFIED"
	ScenarioSuccessMatch         Scenario = "SUCCESS_MATCH"
	ScenarioAccountCreation      Scenario = "ACCOUNT_CREATION"
	ScenarioNoMatch              Scenario = "NO_MATCH"
	ScenarioCancellation         Scenario = "CANCELLATION"
	ScenarioNoAuthentication     Scenario = "NO_AUTHENTICATION"
	ScenarioAuthenticationFailed Scenario = "AUTHENTICATION_FAILED"

	// ScenarioRequestError is synthetic: it is raised locally when the
	// application declines an otherwise valid subject, never transmitted by
	// the Verify Service Provider.
	ScenarioRequestError Scenario = "REQUEST_ERROR"
)

// LevelOfAssurance is the strength of identity verification requested from
// the hub. It implements the pflag.Value interface.
type LevelOfAssurance string

const (
	Level1 LevelOfAssurance = "LEVEL_1"
	Level2 LevelOfAssurance = "LEVEL_2"
)

// String representation of the LevelOfAssurance
func (o *LevelOfAssurance) String() string {
	return string(*o)
}

// Set the value of the LevelOfAssurance
func (o *LevelOfAssurance) Set(v string) error {
	switch v {
	case "1", "LEVEL_1":
		*o = Level1
	case "2", "LEVEL_2":
		*o = Level2
	default:
		return fmt.Errorf("unexpected LevelOfAssurance %q", v)
	}

	return nil
}

// Type returns the string representing the type name (used by pflag).
func (o *LevelOfAssurance) Type() string {
	return "LevelOfAssurance"
}

// AuthnRequest is the challenge issued by the /generate-request endpoint.
// The SAML request and SSO location are handed to the user's browser; the
// request id is the correlation token the application must hold on to until
// the matching response comes back.
type AuthnRequest struct {
	SAMLRequest string `json:"samlRequest"`
	RequestID   string `json:"requestId"`
	SSOLocation string `json:"ssoLocation"`
}

// ErrorMessage is the body of every error response from the Verify Service
// Provider.
type ErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TranslatedResponse is the classified result of a /translate-response call.
// At most one of Matching and Identity is set, and only for the scenarios
// that represent a successful outcome: Identity for IDENTITY_VERIFIED,
// Matching for SUCCESS_MATCH and ACCOUNT_CREATION. The variant is
// discriminated once, here at the client boundary, so consumers never
// re-inspect raw shape.
type TranslatedResponse struct {
	Scenario         Scenario
	PID              string
	LevelOfAssurance string
	Matching         *MatchingAttributes
	Identity         *IdentityAttributes
}

// VerifiableAttribute is a single user account creation attribute.
// "Verified" attributes have been checked by the identity provider (for
// example against a driving licence or passport); unverified attributes
// were entered by the user and have not been checked.
type VerifiableAttribute[T any] struct {
	Value    T    `json:"value" mapstructure:"value"`
	Verified bool `json:"verified" mapstructure:"verified"`
}

// VerifiableIdentityAttribute carries, in addition, the period over which
// the identity provider knows the attribute to have held.
type VerifiableIdentityAttribute[T any] struct {
	Value    T      `json:"value" mapstructure:"value"`
	Verified bool   `json:"verified" mapstructure:"verified"`
	From     string `json:"from,omitempty" mapstructure:"from"`
	To       string `json:"to,omitempty" mapstructure:"to"`
}

// MatchingAttributes are present on a matching-journey response when the
// matching service returned NO_MATCH and the service is configured to
// perform user account creation.
type MatchingAttributes struct {
	FirstName      *VerifiableAttribute[string]  `json:"firstName,omitempty" mapstructure:"firstName"`
	MiddleName     *VerifiableAttribute[string]  `json:"middleName,omitempty" mapstructure:"middleName"`
	Surname        *VerifiableAttribute[string]  `json:"surname,omitempty" mapstructure:"surname"`
	DateOfBirth    *VerifiableAttribute[string]  `json:"dateOfBirth,omitempty" mapstructure:"dateOfBirth"`
	Address        *VerifiableAttribute[Address] `json:"address,omitempty" mapstructure:"address"`
	AddressHistory []VerifiableAttribute[Address] `json:"addressHistory,omitempty" mapstructure:"addressHistory"`
	Cycle3         string                        `json:"cycle3,omitempty" mapstructure:"cycle3"`
}

// Address is a matching-journey address attribute.
type Address struct {
	Lines                 []string `json:"lines,omitempty" mapstructure:"lines"`
	PostCode              string   `json:"postCode,omitempty" mapstructure:"postCode"`
	InternationalPostCode string   `json:"internationalPostCode,omitempty" mapstructure:"internationalPostCode"`
	UPRN                  string   `json:"uprn,omitempty" mapstructure:"uprn"`
	FromDate              string   `json:"fromDate,omitempty" mapstructure:"fromDate"`
	ToDate                string   `json:"toDate,omitempty" mapstructure:"toDate"`
}

// IdentityAttributes are present on every IDENTITY_VERIFIED response.
type IdentityAttributes struct {
	FirstName   *VerifiableIdentityAttribute[string]          `json:"firstName,omitempty" mapstructure:"firstName"`
	MiddleNames []VerifiableIdentityAttribute[string]         `json:"middleNames,omitempty" mapstructure:"middleNames"`
	Surnames    []VerifiableIdentityAttribute[string]         `json:"surnames,omitempty" mapstructure:"surnames"`
	DateOfBirth *VerifiableIdentityAttribute[string]          `json:"dateOfBirth,omitempty" mapstructure:"dateOfBirth"`
	Gender      string                                        `json:"gender,omitempty" mapstructure:"gender"`
	Addresses   []VerifiableIdentityAttribute[IdentityAddress] `json:"addresses,omitempty" mapstructure:"addresses"`
}

// IdentityAddress is an identity-journey address attribute.
type IdentityAddress struct {
	Lines                 []string `json:"lines,omitempty" mapstructure:"lines"`
	PostCode              string   `json:"postCode,omitempty" mapstructure:"postCode"`
	InternationalPostCode string   `json:"internationalPostCode,omitempty" mapstructure:"internationalPostCode"`
}

// translatedEnvelope is the wire shape of a successful /translate-response
// body. The attribute bundle arrives untyped; toResponse decodes it into the
// variant implied by the scenario.
type translatedEnvelope struct {
	Scenario         Scenario               `json:"scenario"`
	PID              string                 `json:"pid"`
	LevelOfAssurance string                 `json:"levelOfAssurance"`
	Attributes       map[string]interface{} `json:"attributes"`
}

func (e translatedEnvelope) toResponse() (*TranslatedResponse, error) {
	out := &TranslatedResponse{
		Scenario:         e.Scenario,
		PID:              e.PID,
		LevelOfAssurance: e.LevelOfAssurance,
	}

	if e.Attributes == nil {
		return out, nil
	}

	switch e.Scenario {
	case ScenarioIdentityVerified:
		var attrs IdentityAttributes
		if err := mapstructure.Decode(e.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("decoding identity attributes: %w", err)
		}
		out.Identity = &attrs
	case ScenarioSuccessMatch, ScenarioAccountCreation:
		var attrs MatchingAttributes
		if err := mapstructure.Decode(e.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("decoding matching attributes: %w", err)
		}
		out.Matching = &attrs
	}

	return out, nil
}
