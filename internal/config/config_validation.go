// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"go/token"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if err := cfg.Env.Prefixes().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	private, public := cfg.Codegen.PrivatePackage, cfg.Codegen.PublicPackage
	if !token.IsIdentifier(private) || !token.IsIdentifier(public) {
		return fmt.Errorf("%w: package names must be Go identifiers", ErrInvalidCodegenConfigs)
	}
	if private == public {
		return fmt.Errorf("%w: private and public packages must differ", ErrInvalidCodegenConfigs)
	}

	return nil
}
