// SPDX-License-Identifier: MIT

package config

// ApplyEnv exposes applyEnv with an injectable lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error { return c.applyEnv(lookup) }
