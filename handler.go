// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"

	"github.com/alphagov/passport-verify/vsp"
)

// ResponseScenarios enumerates the outcomes a matching-variant service must
// handle. Every field must be set; exactly one callback fires per completed
// verification run.
type ResponseScenarios struct {
	// OnMatch handles a subject matched by the matching service. user is
	// whatever the VerifyUser callback returned.
	OnMatch func(user interface{})

	// OnCreateUser handles a subject that was not matched but for whom a
	// new account was created. user is whatever the CreateUser callback
	// returned.
	OnCreateUser func(user interface{})

	// OnNoMatch handles a subject who verified successfully but was not
	// matched, with account creation not configured.
	OnNoMatch func()

	// OnCancel handles a user who cancelled at the identity provider.
	OnCancel func()

	// OnAuthnFailed handles a user who failed to authenticate, for example
	// by getting their password wrong.
	OnAuthnFailed func()

	// OnError handles faults: provider errors, declined subjects and
	// responses this library cannot interpret.
	OnError func(err error)
}

// IdentityResponseScenarios enumerates the outcomes an identity-variant
// service must handle.
type IdentityResponseScenarios struct {
	// OnIdentityVerified handles a verified identity. user is whatever the
	// HandleIdentity callback returned.
	OnIdentityVerified func(user interface{})

	// OnAuthnFailed handles a user who failed to authenticate.
	OnAuthnFailed func()

	// OnNoAuthentication handles a user who did not complete, or timed out
	// of, authentication at the identity provider.
	OnNoAuthentication func()

	// OnCancel handles a user who cancelled at the identity provider.
	OnCancel func()

	// OnError handles faults.
	OnError func(err error)
}

// errDeclinedResponse is reported when the synthetic REQUEST_ERROR scenario
// reaches a handler: the response was valid at the wire but the application
// declined the subject.
var errDeclinedResponse = errors.New("SAML response was an error")

// NewResponseHandler adapts matching-variant scenario callbacks to the
// Terminal interface consumed by the Strategy. Each terminal signal is
// fanned out to exactly one named callback.
func NewResponseHandler(scenarios ResponseScenarios) Terminal {
	return &responseHandler{scenarios: scenarios}
}

type responseHandler struct {
	scenarios ResponseScenarios
}

func (h *responseHandler) Success(user interface{}, outcome *vsp.TranslatedResponse) {
	if outcome != nil && outcome.Scenario == vsp.ScenarioAccountCreation {
		h.scenarios.OnCreateUser(user)
		return
	}

	h.scenarios.OnMatch(user)
}

func (h *responseHandler) Fail(scenario vsp.Scenario) {
	switch scenario {
	case vsp.ScenarioRequestError:
		h.scenarios.OnError(errDeclinedResponse)
	case vsp.ScenarioNoMatch:
		h.scenarios.OnNoMatch()
	case vsp.ScenarioCancellation:
		h.scenarios.OnCancel()
	case vsp.ScenarioAuthenticationFailed:
		h.scenarios.OnAuthnFailed()
	default:
		h.scenarios.OnError(fmt.Errorf("unrecognised scenario %q", string(scenario)))
	}
}

func (h *responseHandler) Error(err error) {
	h.scenarios.OnError(err)
}

// NewIdentityResponseHandler adapts identity-variant scenario callbacks to
// the Terminal interface consumed by the Strategy.
func NewIdentityResponseHandler(scenarios IdentityResponseScenarios) Terminal {
	return &identityResponseHandler{scenarios: scenarios}
}

type identityResponseHandler struct {
	scenarios IdentityResponseScenarios
}

func (h *identityResponseHandler) Success(user interface{}, outcome *vsp.TranslatedResponse) {
	h.scenarios.OnIdentityVerified(user)
}

func (h *identityResponseHandler) Fail(scenario vsp.Scenario) {
	switch scenario {
	case vsp.ScenarioRequestError:
		h.scenarios.OnError(errDeclinedResponse)
	case vsp.ScenarioNoAuthentication:
		h.scenarios.OnNoAuthentication()
	case vsp.ScenarioCancellation:
		h.scenarios.OnCancel()
	case vsp.ScenarioAuthenticationFailed:
		h.scenarios.OnAuthnFailed()
	default:
		h.scenarios.OnError(fmt.Errorf("unrecognised scenario %q", string(scenario)))
	}
}

func (h *identityResponseHandler) Error(err error) {
	h.scenarios.OnError(err)
}
