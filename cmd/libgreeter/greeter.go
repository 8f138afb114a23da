// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"os"
	"sync"

	"github.com/H0llyW00dzZ/ffi-greeter/src/config"
	"github.com/H0llyW00dzZ/ffi-greeter/src/cstring"
	"github.com/H0llyW00dzZ/ffi-greeter/src/logger"
)

var (
	greeterOnce sync.Once
	greeter     *cstring.Greeter
)

// sharedGreeter returns the process-wide checked producer, building it from
// configuration on first use.
func sharedGreeter() *cstring.Greeter {
	greeterOnce.Do(func() { greeter = newGreeter("") })
	return greeter
}

// newGreeter builds the checked producer from configuration. The ABI has no
// error channel, so configuration problems are reported on stderr and the
// defaults are used instead.
func newGreeter(configPath string) *cstring.Greeter {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.NewJSONLogger(os.Stderr, false).Printf("libgreeter: %v; using defaults", err)
		cfg = config.Default()
	}

	log, err := cfg.Logger()
	if err != nil {
		logger.NewJSONLogger(os.Stderr, false).Printf("libgreeter: %v; logging disabled", err)
		log = logger.NewJSONLogger(nil, true)
	}

	return cfg.GreeterBuilder().WithLogger(log).Build()
}
