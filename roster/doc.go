// Package roster turns platform member lists into pod leads and candidates.
//
// The package includes:
//
//   - Split: Classifies a scope roster into leaders and candidates
//   - Static: In-memory voice-state roster, used by tests and the fake platform
package roster
