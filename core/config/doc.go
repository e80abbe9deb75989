// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env
// library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/MaximKing1/iron-session/core/config"
//
//	var cfg session.EnvConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	sessCfg, err := session.FromEnv(cfg)
//
// Each type has its own cache entry:
//
//	var c1 cookie.Config
//	config.MustLoad(&c1) // parses the environment
//
//	var c2 cookie.Config
//	config.MustLoad(&c2) // cached, c1 == c2
package config
