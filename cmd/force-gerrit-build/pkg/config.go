// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package forcebuild

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/openafs/buildbot-tools/pkg/common/credential"
)

const (
	configFileName = ".buildbotrc"

	sectionLogin    = "login"
	sectionBuildbot = "buildbot"
)

// ConfigFile mirrors the ~/.buildbotrc structure:
//
//	[login]
//	username = alice
//	password = secret
//
//	[buildbot]
//	url = https://buildbot.openafs.org
type ConfigFile struct {
	Login    ConfigLogin
	Buildbot ConfigBuildbot
}

type ConfigLogin struct {
	Username string
	Password string
}

type ConfigBuildbot struct {
	URL string
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, configFileName)
}

// LoadConfigFromPath reads a config file at a specific path. A missing file
// yields an empty config.
func LoadConfigFromPath(path string) (*ConfigFile, error) {
	if path == "" {
		return &ConfigFile{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &ConfigFile{}, nil
		}
		return nil, err
	}

	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	login := f.Section(sectionLogin)
	return &ConfigFile{
		Login: ConfigLogin{
			Username: login.Key("username").String(),
			Password: login.Key("password").String(),
		},
		Buildbot: ConfigBuildbot{
			URL: f.Section(sectionBuildbot).Key("url").String(),
		},
	}, nil
}

// Credential returns the config file credential, possibly empty.
func (c *ConfigFile) Credential() *credential.Credential {
	return credential.New(c.Login.Username, c.Login.Password)
}
