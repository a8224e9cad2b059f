// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT
package auth

// NullAuthenticator is used when the Verify Service Provider is reachable
// without credentials, which is the common co-located deployment.
type NullAuthenticator struct{}

func (o *NullAuthenticator) Configure(cfg map[string]interface{}) error {
	return nil
}

func (o *NullAuthenticator) EncodeHeader() (string, error) {
	return "", nil
}
