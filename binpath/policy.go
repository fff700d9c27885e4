// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package binpath

import (
	"errors"
	"fmt"
	"strings"
)

// EnvPopulate selects the population policy of the process-wide cache.
const EnvPopulate = "FINDPROG_POPULATE"

// ErrInvalidPolicy is returned by ParsePolicy for unrecognized values.
var ErrInvalidPolicy = errors.New("invalid population policy")

// Policy controls when a cache scans the search path.
type Policy int

const (
	// PolicyRescanOnMiss scans the search path on every cache miss.
	PolicyRescanOnMiss Policy = iota
	// PolicyPopulateOnce scans the search path at most once per cache.
	PolicyPopulateOnce
)

// String returns the flag spelling of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyPopulateOnce:
		return "once"
	default:
		return "miss"
	}
}

// ParsePolicy parses a policy name. An empty string selects PolicyRescanOnMiss.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "miss", "rescan", "rescan-on-miss":
		return PolicyRescanOnMiss, nil
	case "once", "populate-once":
		return PolicyPopulateOnce, nil
	default:
		return PolicyRescanOnMiss, fmt.Errorf("%w: %q (valid options: miss, once)", ErrInvalidPolicy, s)
	}
}
