// Package strategy provides built-in pod strategy implementations.
//
// A pod strategy decides which candidates join which pod lead. The package
// includes two built-in strategies:
//
//   - BalancedShuffle: Uniform random shuffle, then contiguous slicing into balanced pods (default)
//   - RoundRobin: Deals candidates to pods in their given order, no randomness
//
// Both strategies produce one pod per leader with sizes that differ by at most
// one; when the candidates do not divide evenly, the first pods in leader order
// receive the extra member.
//
// # Strategy Selection Guide
//
// BalancedShuffle:
//   - Use for live sessions; every arrangement of candidates is equally likely
//   - Inject a seeded *rand.Rand with WithRand for reproducible runs
//
// RoundRobin:
//   - Use when the caller has already ordered the candidates deliberately
//   - Deterministic: the same input always yields the same pods
//
// Custom strategies can be implemented by satisfying the types.PodStrategy interface.
package strategy
