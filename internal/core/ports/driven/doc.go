// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ExceptionStore: Exception dictionary persistence (SQLite). Without it,
//     every word goes through the phonetic rules.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or engine package
package driven
