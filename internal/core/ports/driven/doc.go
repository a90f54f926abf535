// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Gateway: The single path to the backend HTTP API
//   - SessionStore: Durable storage for the session token
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the dependent operations return domain.ErrNotImplemented:
//
//   - DownloadSink: Where exported documents are written
//   - DocumentInspector: Reads exported documents back into text
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
