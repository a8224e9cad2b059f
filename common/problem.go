// Copyright 2025 Contributors to the passport-verify project.
// SPDX-License-Identifier: MIT

package common

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/moogar0880/problems"
)

// ProblemError is an RFC7807 problem document, as returned by a gateway
// sitting in front of the Verify Service Provider.
type ProblemError struct {
	problems.DefaultProblem
}

func (o *ProblemError) Error() string {
	return fmt.Sprintf("%d %s: %s", o.ProblemStatus(), o.ProblemTitle(), o.Detail)
}

// IsProblemResponse reports whether res carries an RFC7807 problem document.
func IsProblemResponse(res *http.Response) bool {
	return strings.HasPrefix(res.Header.Get("Content-Type"), problems.ProblemMediaType)
}

// DecodeProblem decodes the problem document carried by res.
func DecodeProblem(res *http.Response) (*ProblemError, error) {
	var prob ProblemError

	if err := DecodeJSONBody(res, &prob.DefaultProblem); err != nil {
		return nil, fmt.Errorf(
			"could not decode problem response (status %d): %w",
			res.StatusCode,
			err,
		)
	}

	return &prob, nil
}
