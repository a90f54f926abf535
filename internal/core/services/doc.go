// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Every backend call goes through driven.Gateway; services shape the
// request, decode the response and map failures onto domain errors.
// No service caches backend state: callers re-fetch after mutating.
package services
