// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config provides configuration management for the childproc CLI.
//
// Configuration is resolved with the precedence ENV > File > Defaults. The
// file is YAML, parsed strictly: unknown keys and trailing documents are
// rejected.
package config
