// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamlForm_contains_destination_and_request(t *testing.T) {
	form, err := SamlForm("https://hub.example/SAML2/SSO", "c29tZS1zYW1sLXJlcQ==")

	require.NoError(t, err)
	assert.Contains(t, form, "action='https://hub.example/SAML2/SSO'")
	assert.Contains(t, form, "value='c29tZS1zYW1sLXJlcQ=='")
	assert.Contains(t, form, "name='SAMLRequest'")
	assert.Contains(t, form, "form.submit()")
}

func TestSamlForm_escapes_values(t *testing.T) {
	form, err := SamlForm("https://hub.example/sso", "'/><script>alert(1)</script>")

	require.NoError(t, err)
	assert.NotContains(t, form, "<script>alert(1)</script>")
}
