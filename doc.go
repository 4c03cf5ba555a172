// Package compound simulates the growth of a monthly investment plan.
//
// Every month a new contribution (a tranche) is added to the plan, then every
// tranche held so far either grows by the monthly rate or, when a market drop
// strikes that month, loses a fixed share of its value. Drops are placed at
// random months, drawn from a small catalog of severities.
//
// The core functionalities include:
//   - Simulation: a stateless engine mapping an Input to Stats, with all
//     randomness flowing through an injected Rand.
//   - Drop catalog: the fixed menu of drop severities offered to users.
//   - Reports: a plain text report, persisted as a flat file, and a JSON
//     encoding of the statistics.
//   - Monte Carlo: repeated simulations summarized as a distribution.
//
// This package serves as the foundational logic for the `compound`
// command-line tool.
package compound
