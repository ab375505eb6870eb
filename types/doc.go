// Package types provides core type definitions and interfaces for the podbot library.
//
// This package contains shared types that are used across multiple packages in the
// module. By keeping these types in a separate package, we avoid import cycles
// between the root podbot package, the strategy implementations and the platform
// adapters.
//
// Key types:
//   - Member: A chat-platform member (leader, candidate or bot)
//   - Pod: One leader plus the candidates assigned to it
//   - Distribution: The pods produced by a single partition run
//   - PodStrategy: Partitioning algorithm interface
//   - Platform, Authorizer: Boundaries to the chat platform
//   - Logger, MetricsCollector, Hooks, EventPublisher: Ambient collaborators
package types
