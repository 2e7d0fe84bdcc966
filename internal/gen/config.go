package gen

import (
	"github.com/nft-rainbow/rainbow-goutils/utils/configutils"
)

// APIConfig selects one Discovery document to generate bindings for.
// Exactly one of ID or File should be set.
type APIConfig struct {
	// ID is an `api:version` pair resolved through the Discovery
	// service, e.g. "apikeys:v2".
	ID string `yaml:"id"`

	// File is a path to a Discovery document on disk.
	File string `yaml:"file"`

	// Package overrides the generated package name.
	Package string `yaml:"package"`
}

// Config describes one `gapigen generate` run.
type Config struct {
	// OutDir is the directory generated packages are written under,
	// laid out as <outDir>/<name>/<version>/<name>-gen.go.
	OutDir string `yaml:"outDir"`

	// GapiImport overrides the import path of the shared transport
	// package in emitted code.
	GapiImport string `yaml:"gapiImport"`

	APIs []APIConfig `yaml:"apis"`
}

// LoadConfigFromFile loads a generation config from a YAML file.
func LoadConfigFromFile(path string) *Config {
	return configutils.MustLoadByFile[Config](path)
}
