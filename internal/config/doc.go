// Package config provides configuration structures and utilities for appreport.
// It defines where the bot database lives, which report format to render,
// and how the optional YAML configuration file is located and loaded.
package config
