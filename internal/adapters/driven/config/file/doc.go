// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under the aidoc config directory (~/.aidoc).
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - SessionStore: TOML-based session token persistence
//   - DownloadSink: Writes exported documents to a directory
package file
