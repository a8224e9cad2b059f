// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

/*
Package verify lets a relying application hand user identity verification
over to GOV.UK Verify without touching SAML itself. Cryptographic assertion
validation is delegated to a companion Verify Service Provider; this package
drives the two-phase challenge/response protocol against it and classifies
the result.

A verification run is started and completed through a single entry point. A
request without a SAMLResponse form field begins a run: the Strategy obtains
an authn request from the Verify Service Provider, hands the correlation
token to the application's SaveRequestID callback and writes an
auto-submitting SAML form back to the browser. A request carrying a
SAMLResponse completes a run: the token is recovered via LoadRequestID, the
response is translated remotely and exactly one of the three terminal
signals fires.

The user supplies the terminal signals by implementing the Terminal
interface, or - more conveniently - by describing the outcome scenarios the
service must handle and letting a handler fan the signals out:

	terminal := verify.NewIdentityResponseHandler(verify.IdentityResponseScenarios{
		OnIdentityVerified: func(user interface{}) { ... },
		OnAuthnFailed:      func() { ... },
		OnNoAuthentication: func() { ... },
		OnCancel:           func() { ... },
		OnError:            func(err error) { ... },
	})

The user then creates a Strategy for the protocol variant the service is
registered for. Services connecting without a Matching Service Adapter use
the identity variant:

	strategy := verify.NewIdentityStrategy(
		"http://localhost:50400",
		terminal,
		handleIdentity,
		saveRequestID,
		loadRequestID,
	)

and legacy services matching against an existing user store use the
matching variant via NewStrategy, supplying CreateUser and VerifyUser
callbacks instead of HandleIdentity.

Both routes of the journey are served by the same method:

	mux.HandleFunc("/verify/start", strategy.Authenticate)
	mux.HandleFunc("/verify/response", strategy.Authenticate)

The application, not the protocol, has the last word on whether a verified
subject is acceptable: a user callback returning nil declines the subject
and the run is rejected with REQUEST_ERROR.
*/
package verify
