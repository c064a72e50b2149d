package main

import "github.com/ersonp/chargen/internal/infrastructure/config"

const defaultConfigHint = config.DefaultConfigFile

// Valid import formats.
var validFormats = []string{"auto", "json", "yaml"}
