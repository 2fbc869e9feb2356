// Package shared holds utilities used across the codebase that do not
// belong to any specific domain or architectural layer.
//
// # Structure
//
// - testutil: testing helpers, currently the buffered slog handler and
//   the log assertion functions built on it
//
// # Usage Guidelines
//
// This package should only contain:
//
// 1. Test utilities used by multiple packages
// 2. Generic helpers with no domain-specific logic
//
// It should NOT contain:
//
// 1. Business logic or domain-specific code
// 2. Circular dependencies with other internal packages
//
// Example usage:
//
//	logger, handler := testutil.NewTestLogger(t)
//
//	// exercise code that logs through logger, then:
//	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Removed 1 of 5 records")
package shared
