// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/alphagov/passport-verify/vsp"
)

// Terminal is the set of terminal signals a verification run can end in.
// The Strategy invokes exactly one of the three methods exactly once per
// run. NewResponseHandler and NewIdentityResponseHandler provide ready-made
// implementations that fan out to per-scenario callbacks.
type Terminal interface {
	// Success delivers the application's user object together with the
	// translated outcome it was built from.
	Success(user interface{}, outcome *vsp.TranslatedResponse)

	// Fail reports a known, non-fatal negative outcome.
	Fail(scenario vsp.Scenario)

	// Error reports a fault: a provider error, a collaborator failure or
	// protocol drift. No other signal fires for the run.
	Error(err error)
}

// API is the surface of the Verify Service Provider client consumed by the
// Strategy.
type API interface {
	GenerateRequest(ctx context.Context, loa vsp.LevelOfAssurance, entityID string) (*vsp.GenerateResult, error)
	TranslateResponse(ctx context.Context, samlResponse, requestID string, loa vsp.LevelOfAssurance, entityID string) (*vsp.TranslateResult, error)
}

// UserCallback turns a translated outcome into the application's own user
// object. Returning a nil user with a nil error declines the subject and
// rejects the run with REQUEST_ERROR; returning an error faults the run.
type UserCallback func(outcome *vsp.TranslatedResponse) (interface{}, error)

// Strategy drives one verification run per Authenticate call. It keeps no
// per-run state - the correlation token lives with the application via the
// SaveRequestID/LoadRequestID collaborators - so a single Strategy may be
// invoked concurrently for unrelated users.
type Strategy struct {
	Client   API      // remote generate/translate operations
	Terminal Terminal // terminal signal capability set

	// CreateUser and VerifyUser serve the matching variant; HandleIdentity
	// serves the identity variant. A success scenario whose callback is
	// unbound rejects the run with REQUEST_ERROR.
	CreateUser     UserCallback
	VerifyUser     UserCallback
	HandleIdentity UserCallback

	// SaveRequestID persists the correlation token for the session carried
	// by the request; LoadRequestID recovers it when the response arrives.
	SaveRequestID func(requestID string, r *http.Request) error
	LoadRequestID func(r *http.Request) (string, error)

	EntityID         string               // relying party id for multi-tenant providers, optional
	LevelOfAssurance vsp.LevelOfAssurance // defaults to LEVEL_2

	// RenderForm, when set, replaces the default auto-submitting SAML form.
	RenderForm func(w http.ResponseWriter, ssoLocation, samlRequest string) error

	Logger *slog.Logger // optional; slog.Default() when nil
}

// NewStrategy creates a Strategy for the matching variant, used by legacy
// services that connect to GOV.UK Verify through a Matching Service Adapter.
func NewStrategy(
	host string,
	terminal Terminal,
	createUser UserCallback,
	verifyUser UserCallback,
	saveRequestID func(requestID string, r *http.Request) error,
	loadRequestID func(r *http.Request) (string, error),
) *Strategy {
	return &Strategy{
		Client:        vsp.NewClient(host),
		Terminal:      terminal,
		CreateUser:    createUser,
		VerifyUser:    verifyUser,
		SaveRequestID: saveRequestID,
		LoadRequestID: loadRequestID,
	}
}

// NewIdentityStrategy creates a Strategy for the identity variant, used by
// services that connect through the Verify Service Provider without a
// Matching Service Adapter.
func NewIdentityStrategy(
	host string,
	terminal Terminal,
	handleIdentity UserCallback,
	saveRequestID func(requestID string, r *http.Request) error,
	loadRequestID func(r *http.Request) (string, error),
) *Strategy {
	return &Strategy{
		Client:         vsp.NewClient(host),
		Terminal:       terminal,
		HandleIdentity: handleIdentity,
		SaveRequestID:  saveRequestID,
		LoadRequestID:  loadRequestID,
	}
}

// Authenticate serves both halves of the journey: a request without a
// SAMLResponse form field starts a run, a request carrying one completes
// it. Every failure - a provider fault, a collaborator error, even a panic
// in a callback - is routed to exactly one Terminal.Error call; nothing
// escapes this boundary.
func (s *Strategy) Authenticate(w http.ResponseWriter, r *http.Request) {
	if s.Terminal == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	defer func() {
		if cause := recover(); cause != nil {
			s.Terminal.Error(fmt.Errorf("verification run panicked: %v", cause))
		}
	}()

	if err := s.handleRequest(w, r); err != nil {
		s.Terminal.Error(err)
	}
}

func (s *Strategy) handleRequest(w http.ResponseWriter, r *http.Request) error {
	if err := s.check(); err != nil {
		return err
	}

	if r.PostFormValue("SAMLResponse") != "" {
		return s.translateResponse(r)
	}

	return s.renderAuthnRequest(w, r)
}

// check makes sure the Strategy is in good shape before a run starts.
func (s *Strategy) check() error {
	if s.Client == nil {
		return errors.New("bad configuration: no client supplied")
	}

	if s.SaveRequestID == nil {
		return errors.New("bad configuration: no save-request-id callback supplied")
	}

	if s.LoadRequestID == nil {
		return errors.New("bad configuration: no load-request-id callback supplied")
	}

	return nil
}

func (s *Strategy) renderAuthnRequest(w http.ResponseWriter, r *http.Request) error {
	res, err := s.Client.GenerateRequest(r.Context(), s.levelOfAssurance(), s.EntityID)
	if err != nil {
		return err
	}

	if res.Err != nil {
		return errors.New(res.Err.Message)
	}

	authnRequest := res.AuthnRequest

	if err := s.SaveRequestID(authnRequest.RequestID, r); err != nil {
		return fmt.Errorf("saving request id: %w", err)
	}

	s.logger().DebugContext(r.Context(), "rendering authn request form",
		slog.String("ssoLocation", authnRequest.SSOLocation))

	if s.RenderForm != nil {
		return s.RenderForm(w, authnRequest.SSOLocation, authnRequest.SAMLRequest)
	}

	form, err := SamlForm(authnRequest.SSOLocation, authnRequest.SAMLRequest)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = io.WriteString(w, form)

	return err
}

func (s *Strategy) translateResponse(r *http.Request) error {
	requestID, err := s.LoadRequestID(r)
	if err != nil {
		return fmt.Errorf("loading request id: %w", err)
	}

	samlResponse := r.PostFormValue("SAMLResponse")

	res, err := s.Client.TranslateResponse(r.Context(), samlResponse, requestID, s.levelOfAssurance(), s.EntityID)
	if err != nil {
		return err
	}

	switch res.Status {
	case http.StatusOK:
		return s.dispatch(res.Outcome)
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusInternalServerError:
		return errors.New(res.Err.Message)
	default:
		return fmt.Errorf("unexpected response status %d", res.Status)
	}
}

// dispatch maps the classified scenario to its terminal signal. Success
// scenarios consult the bound user callback; the known negative scenarios
// reject without further invocation; anything else is protocol drift
// between this library and the provider's vocabulary and faults the run.
func (s *Strategy) dispatch(outcome *vsp.TranslatedResponse) error {
	switch outcome.Scenario {
	case vsp.ScenarioIdentityVerified:
		return s.acceptUser(outcome, s.HandleIdentity)
	case vsp.ScenarioAccountCreation:
		return s.acceptUser(outcome, s.CreateUser)
	case vsp.ScenarioSuccessMatch:
		return s.acceptUser(outcome, s.VerifyUser)
	case vsp.ScenarioNoMatch,
		vsp.ScenarioCancellation,
		vsp.ScenarioAuthenticationFailed,
		vsp.ScenarioNoAuthentication,
		vsp.ScenarioRequestError:
		s.Terminal.Fail(outcome.Scenario)
		return nil
	default:
		return fmt.Errorf("unrecognised scenario %q", string(outcome.Scenario))
	}
}

func (s *Strategy) acceptUser(outcome *vsp.TranslatedResponse, fetchUser UserCallback) error {
	if fetchUser == nil {
		s.Terminal.Fail(vsp.ScenarioRequestError)
		return nil
	}

	user, err := fetchUser(outcome)
	if err != nil {
		return err
	}

	if user == nil {
		s.Terminal.Fail(vsp.ScenarioRequestError)
		return nil
	}

	s.Terminal.Success(user, outcome)

	return nil
}

func (s *Strategy) levelOfAssurance() vsp.LevelOfAssurance {
	if s.LevelOfAssurance == "" {
		return vsp.Level2
	}
	return s.LevelOfAssurance
}

func (s *Strategy) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
