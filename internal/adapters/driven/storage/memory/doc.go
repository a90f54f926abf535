// Package memory provides in-memory implementations of the driven stores.
// Nothing written to them survives the process.
package memory
