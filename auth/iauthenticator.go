// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT
package auth

// IAuthenticator is implemented by the authentication methods that can guard
// the connection to the Verify Service Provider.
type IAuthenticator interface {
	Configure(cfg map[string]interface{}) error
	EncodeHeader() (string, error)
}
