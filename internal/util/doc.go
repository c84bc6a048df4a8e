// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the feline packages.
//
// String Utilities:
//   - TruncateWidth, PadRight, StringWidth: column-aware layout helpers
//   - FormatCount: thousands-separated counters
//
// File Operations:
//   - WriteFileAtomic: crash-safe file writing with fsync
package util
