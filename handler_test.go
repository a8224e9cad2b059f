// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphagov/passport-verify/vsp"
)

type scenarioRecorder struct {
	calls []string
	user  interface{}
	err   error
}

func (r *scenarioRecorder) record(name string) func() {
	return func() { r.calls = append(r.calls, name) }
}

func (r *scenarioRecorder) recordUser(name string) func(interface{}) {
	return func(user interface{}) {
		r.calls = append(r.calls, name)
		r.user = user
	}
}

func (r *scenarioRecorder) recordError() func(error) {
	return func(err error) {
		r.calls = append(r.calls, "onError")
		r.err = err
	}
}

func newRecordedResponseHandler() (*scenarioRecorder, Terminal) {
	rec := &scenarioRecorder{}
	handler := NewResponseHandler(ResponseScenarios{
		OnMatch:       rec.recordUser("onMatch"),
		OnCreateUser:  rec.recordUser("onCreateUser"),
		OnNoMatch:     rec.record("onNoMatch"),
		OnCancel:      rec.record("onCancel"),
		OnAuthnFailed: rec.record("onAuthnFailed"),
		OnError:       rec.recordError(),
	})
	return rec, handler
}

func newRecordedIdentityResponseHandler() (*scenarioRecorder, Terminal) {
	rec := &scenarioRecorder{}
	handler := NewIdentityResponseHandler(IdentityResponseScenarios{
		OnIdentityVerified: rec.recordUser("onIdentityVerified"),
		OnAuthnFailed:      rec.record("onAuthnFailed"),
		OnNoAuthentication: rec.record("onNoAuthentication"),
		OnCancel:           rec.record("onCancel"),
		OnError:            rec.recordError(),
	})
	return rec, handler
}

func TestResponseHandler_success_match(t *testing.T) {
	rec, handler := newRecordedResponseHandler()

	handler.Success("user-1", &vsp.TranslatedResponse{Scenario: vsp.ScenarioSuccessMatch})

	assert.Equal(t, []string{"onMatch"}, rec.calls)
	assert.Equal(t, "user-1", rec.user)
}

func TestResponseHandler_success_account_creation(t *testing.T) {
	rec, handler := newRecordedResponseHandler()

	handler.Success("user-1", &vsp.TranslatedResponse{Scenario: vsp.ScenarioAccountCreation})

	assert.Equal(t, []string{"onCreateUser"}, rec.calls)
	assert.Equal(t, "user-1", rec.user)
}

func TestResponseHandler_fail_scenarios(t *testing.T) {
	cases := map[vsp.Scenario]string{
		vsp.ScenarioNoMatch:              "onNoMatch",
		vsp.ScenarioCancellation:         "onCancel",
		vsp.ScenarioAuthenticationFailed: "onAuthnFailed",
	}

	for scenario, expected := range cases {
		t.Run(string(scenario), func(t *testing.T) {
			rec, handler := newRecordedResponseHandler()

			handler.Fail(scenario)

			assert.Equal(t, []string{expected}, rec.calls)
		})
	}
}

func TestResponseHandler_fail_request_error(t *testing.T) {
	rec, handler := newRecordedResponseHandler()

	handler.Fail(vsp.ScenarioRequestError)

	require.Equal(t, []string{"onError"}, rec.calls)
	assert.EqualError(t, rec.err, "SAML response was an error")
}

func TestResponseHandler_fail_unrecognised_scenario(t *testing.T) {
	rec, handler := newRecordedResponseHandler()

	handler.Fail(vsp.Scenario("UNKNOWN_X"))

	require.Equal(t, []string{"onError"}, rec.calls)
	assert.ErrorContains(t, rec.err, "UNKNOWN_X")
}

func TestResponseHandler_error(t *testing.T) {
	rec, handler := newRecordedResponseHandler()

	handler.Error(errors.New("boom"))

	require.Equal(t, []string{"onError"}, rec.calls)
	assert.EqualError(t, rec.err, "boom")
}

func TestIdentityResponseHandler_success(t *testing.T) {
	rec, handler := newRecordedIdentityResponseHandler()

	handler.Success("identity-1", &vsp.TranslatedResponse{Scenario: vsp.ScenarioIdentityVerified})

	assert.Equal(t, []string{"onIdentityVerified"}, rec.calls)
	assert.Equal(t, "identity-1", rec.user)
}

func TestIdentityResponseHandler_fail_scenarios(t *testing.T) {
	cases := map[vsp.Scenario]string{
		vsp.ScenarioNoAuthentication:     "onNoAuthentication",
		vsp.ScenarioCancellation:         "onCancel",
		vsp.ScenarioAuthenticationFailed: "onAuthnFailed",
	}

	for scenario, expected := range cases {
		t.Run(string(scenario), func(t *testing.T) {
			rec, handler := newRecordedIdentityResponseHandler()

			handler.Fail(scenario)

			assert.Equal(t, []string{expected}, rec.calls)
		})
	}
}

func TestIdentityResponseHandler_fail_request_error(t *testing.T) {
	rec, handler := newRecordedIdentityResponseHandler()

	handler.Fail(vsp.ScenarioRequestError)

	require.Equal(t, []string{"onError"}, rec.calls)
	assert.EqualError(t, rec.err, "SAML response was an error")
}

func TestIdentityResponseHandler_fail_matching_scenario_is_drift(t *testing.T) {
	// NO_MATCH belongs to the matching variant; an identity-variant service
	// receiving it has diverged from its provider configuration.
	rec, handler := newRecordedIdentityResponseHandler()

	handler.Fail(vsp.ScenarioNoMatch)

	require.Equal(t, []string{"onError"}, rec.calls)
	assert.ErrorContains(t, rec.err, "NO_MATCH")
}

func TestIdentityResponseHandler_error(t *testing.T) {
	rec, handler := newRecordedIdentityResponseHandler()

	handler.Error(errors.New("boom"))

	require.Equal(t, []string{"onError"}, rec.calls)
	assert.EqualError(t, rec.err, "boom")
}
