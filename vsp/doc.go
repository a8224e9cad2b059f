// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

/*
Package vsp speaks the Verify Service Provider API: a pair of JSON-over-HTTP
operations that generate a SAML authn request and translate the signed SAML
response posted back by the hub.

The Client is a thin transport. It preserves the HTTP status of every remote
reply together with a typed body - an AuthnRequest, a TranslatedResponse or
an ErrorMessage - and leaves the interpretation of outcome semantics to the
verify.Strategy. All cryptographic and temporal checks on the raw SAML
response happen inside the Verify Service Provider; this package never
inspects it.
*/
package vsp
