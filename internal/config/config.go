// Package config reads the server settings from the environment.
package config

import (
	"os"
	"path"
	"strconv"
	"strings"
)

const (
	defaultDataDir  = "./data"
	defaultAddr     = "0.0.0.0:8080"
	defaultLogLevel = "info"
)

type Config struct {
	DataDir  string // PROTPARAM_DATA
	Addr     string // PROTPARAM_ADDR
	LogLevel string // PROTPARAM_LOG_LEVEL
	History  bool   // PROTPARAM_HISTORY, keep analyses in sqlite

	// Names of variables that were missing and fell back to a default.
	Defaulted []string
}

// HistoryDB is the sqlite file backing the analysis history.
func (c *Config) HistoryDB() string {
	return path.Join(c.DataDir, "db", "protparam.db")
}

// FromEnv builds a Config from the process environment.
func FromEnv() *Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any lookup function, for tests.
func FromLookup(lookup func(string) (string, bool)) *Config {
	c := &Config{}

	get := func(key, fallback string) string {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			c.Defaulted = append(c.Defaulted, key)
			return fallback
		}
		return v
	}

	c.DataDir = get("PROTPARAM_DATA", defaultDataDir)
	c.Addr = get("PROTPARAM_ADDR", defaultAddr)
	c.LogLevel = get("PROTPARAM_LOG_LEVEL", defaultLogLevel)

	history, err := strconv.ParseBool(get("PROTPARAM_HISTORY", "true"))
	if err != nil {
		history = true
	}
	c.History = history

	return c
}
