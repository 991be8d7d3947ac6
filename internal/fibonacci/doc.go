// Package fibonacci implements the three strategies the harness compares:
// naive recursion, tail-recursive accumulation and iterative accumulation.
//
// All strategies compute F(n) on uint64 and agree for every n, including
// past F(93) where the value wraps modulo 2^64.
package fibonacci
