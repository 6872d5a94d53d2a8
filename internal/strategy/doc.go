// Package strategy defines the node selection contract and implements
// the selection algorithms:
//
//   - Round Robin: cyclic selection that advances the cursor before reading,
//     so the first pick on a fresh strategy is the node at index 1
//   - Random: uniform random selection
//
// Strategies are generic over the node type and never inspect nodes beyond
// the predicates callers pass to RemoveNode. Every strategy is safe for
// concurrent use and reports an empty node set as an absent result rather
// than an error.
package strategy
