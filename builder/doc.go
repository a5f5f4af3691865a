// SPDX-License-Identifier: MIT

// Package builder generates deterministic planar point/edge fixtures for
// tests, benchmarks and the CLI sample data.
//
// Build(opts, cons...) starts from an empty Layout and applies each
// Constructor in order. Constructors append points with fresh consecutive
// IDs, so composing two constructors yields two disconnected components,
// which is handy for unreachable-target scenarios.
//
// Stochastic constructors (RandomGeometric) require WithSeed or WithRand
// and are reproducible for a fixed seed and constructor order.
//
// Option constructors panic on meaningless arguments; constructors return
// sentinel errors and never panic.
package builder
