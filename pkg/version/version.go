// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version is set via ldflags at build time
var Version = "develop"

// RequireAtLeast fails unless the running version satisfies ">= minimum".
// Development builds satisfy every constraint.
func RequireAtLeast(minimum string) error {
	constraint, err := goversion.NewConstraint(">= " + minimum)
	if err != nil {
		return fmt.Errorf("Parsing minimum version '%s': %s", minimum, err)
	}

	current, err := goversion.NewVersion(Version)
	if err != nil {
		return nil
	}

	if !constraint.Check(current) {
		return fmt.Errorf("vurf version %s does not meet the minimum required version %s", Version, minimum)
	}
	return nil
}
