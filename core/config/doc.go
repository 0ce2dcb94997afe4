// Package config provides type-safe environment variable loading with
// per-type caching.
//
// The package loads a .env file on first use and parses environment
// variables into struct fields via caarlos0/env tags:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded once per process; later Load calls for
// the same type return the cached value.
package config
