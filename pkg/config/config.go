// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"carvel.dev/vurf/pkg/guard"
	"carvel.dev/vurf/pkg/plan"
	"carvel.dev/vurf/pkg/runner"
	"carvel.dev/vurf/pkg/version"
	"github.com/BurntSushi/toml"
)

type Config struct {
	PackagesLocation string                 `toml:"packages_location"`
	DefaultSection   string                 `toml:"default_section"`
	MinVersion       string                 `toml:"min_version"`
	Sections         []Section              `toml:"sections"`
	Parameters       map[string]interface{} `toml:"parameters"`
}

type Section struct {
	Name       string `toml:"name"`
	Install    string `toml:"install"`
	Uninstall  string `toml:"uninstall"`
	Sequential bool   `toml:"sequential"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading config: %s", err)
	}
	return Parse(bs, path)
}

func Parse(data []byte, associatedName string) (*Config, error) {
	var cfg Config

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("Parsing config '%s': %s", associatedName, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("Parsing config '%s': unknown key '%s'", associatedName, undecoded[0])
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("Validating config '%s': %s", associatedName, err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.PackagesLocation) == 0 {
		return fmt.Errorf("Expected 'packages_location' to be non-empty")
	}
	if len(c.DefaultSection) == 0 {
		return fmt.Errorf("Expected 'default_section' to be non-empty")
	}

	seen := map[string]struct{}{}
	for i, section := range c.Sections {
		if len(section.Name) == 0 {
			return fmt.Errorf("Expected 'sections[%d].name' to be non-empty", i)
		}
		if _, found := seen[section.Name]; found {
			return fmt.Errorf("Expected section '%s' to be configured only once", section.Name)
		}
		seen[section.Name] = struct{}{}

		for _, tpl := range []string{section.Install, section.Uninstall} {
			if len(tpl) == 0 {
				continue
			}
			err := runner.ValidateTemplate(tpl)
			if err != nil {
				return fmt.Errorf("Section '%s': command '%s' is not valid shell: %s", section.Name, tpl, err)
			}
		}
	}

	err := c.Params().Validate()
	if err != nil {
		return err
	}

	if len(c.MinVersion) > 0 {
		err := version.RequireAtLeast(c.MinVersion)
		if err != nil {
			return err
		}
	}

	return nil
}

// PackagesPath is the packages location with "~" expanded.
func (c *Config) PackagesPath() (string, error) {
	return guard.ExpandHome(guard.OSHost{}, c.PackagesLocation)
}

func (c *Config) Params() guard.Parameters {
	return guard.Parameters(c.Parameters)
}

// SectionConfigs returns command templates for the planner. Missing
// templates fall back to echo commands.
func (c *Config) SectionConfigs() []plan.SectionConfig {
	var result []plan.SectionConfig
	for _, section := range c.Sections {
		config := plan.SectionConfig{
			Name:       section.Name,
			Install:    section.Install,
			Uninstall:  section.Uninstall,
			Sequential: section.Sequential,
		}
		if len(config.Install) == 0 {
			config.Install = plan.DefaultInstall
		}
		if len(config.Uninstall) == 0 {
			config.Uninstall = plan.DefaultUninstall
		}
		result = append(result, config)
	}
	return result
}
