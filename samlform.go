// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package verify

import (
	"html/template"
	"strings"
)

// The form is hidden and auto-submitted; it is revealed after five seconds
// only for users with javascript disabled.
var samlFormTemplate = template.Must(template.New("samlForm").Parse(`
    <form method='post' action='{{.SSOLocation}}'>
      <h1>Send SAML Authn request to hub</h1>
      <input type='hidden' name='SAMLRequest' value='{{.SAMLRequest}}'/>
      <input type='hidden' name='relayState' value=''/>
      <button>Submit</button>
    </form>
    <script>
      var form = document.forms[0]
      form.setAttribute('style', 'display: none;')
      window.setTimeout(function () { form.removeAttribute('style') }, 5000)
      form.submit()
    </script>
`))

// SamlForm renders the default auto-submitting HTML document that posts the
// SAML authn request to the hub's SSO location. Services wanting the form
// styled to match the rest of their pages should set Strategy.RenderForm
// instead.
func SamlForm(ssoLocation, samlRequest string) (string, error) {
	var b strings.Builder

	data := struct {
		SSOLocation string
		SAMLRequest string
	}{
		SSOLocation: ssoLocation,
		SAMLRequest: samlRequest,
	}

	if err := samlFormTemplate.Execute(&b, data); err != nil {
		return "", err
	}

	return b.String(), nil
}
