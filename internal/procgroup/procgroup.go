// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package procgroup starts children as process group leaders and signals the
// whole group. On Windows a child is a single process and the package is empty.
package procgroup
