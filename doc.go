// Package qprop estimates expectation values of quantum observables by
// propagating them backward through parameterized circuits — truncating
// aggressively along the way so the classically exponential part stays
// tractable, and keeping every step differentiable.
//
// 🚀 What is qprop?
//
//	A Heisenberg-picture Pauli propagation engine that brings together:
//		• Pauli algebra: packed multi-qubit operators, phase-exact products
//		• Operator sums: merge-on-key weighted sums of Pauli terms
//		• Coefficients: one generic contract, plain or gradient-tracing
//		• Propagation: reverse-order gate application with branch & prune
//		• Truncation: weight / frequency / sine-count / magnitude axes
//		• Evaluation: overlap with computational reference states
//		• Gradients: forward-mode duals or gonum finite differences
//
// ✨ Why choose qprop?
//
//   - Honest approximation – fidelity is governed by caller-chosen
//     truncation thresholds, never by hidden heuristics
//   - Differentiation-agnostic – the engine is written against a minimal
//     coefficient interface; swap plain floats for tracing values without
//     touching propagation code
//   - Deterministic content – term merging is commutative and associative,
//     so results never depend on processing order (compare floats with
//     tolerances all the same)
//   - Parallel-ready – per-gate term processing partitions across workers
//
// Under the hood, everything is organized into small subpackages:
//
//	pauli/   — Operator encoding, Pauli products, weighted sums
//	coeff/   — the Value contract: Float64, Dual, Tracked decorator
//	circuit/ — gate descriptors: Pauli rotations & Clifford tableaux
//	prop/    — the propagation engine and truncation policy
//	expect/  — reduction to scalar expectation values
//	grad/    — forward-mode and finite-difference gradient helpers
//
// Start with prop.Propagate for the copying pipeline, or
// prop.PropagateInPlace when an external differentiation mechanism owns
// your coefficient objects.
package qprop
