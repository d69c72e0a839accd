// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Each section of
// [StructuredConfig] reads its own prefix: APP_, STORAGE_DB_, SERVER_,
// ADAPTER_, GEO_, SEARCH_ and WORKERS_. Unset variables leave the field
// untouched so flags and the JSON file can still supply it.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse paw-finder environment: %w", err)
	}
	return nil
}
