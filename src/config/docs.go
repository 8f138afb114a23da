// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads settings for the checked greeter and its logger from a
// JSON or YAML file and the environment. The shared library and the CLI read
// the same file, so both see the same scan bound and UTF-8 policy.
package config
