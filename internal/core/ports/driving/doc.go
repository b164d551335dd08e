// Package driving defines the interfaces that external actors use to
// drive the application.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI, MCP and TUI adapters depend on these interfaces, and core
// services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driving
