// File: doc.go
// Role: package overview for the negotiated-congestion outer loop.
//
// Each call to Router.Route performs up to Config.MaxIterations passes
// over the plan. Within a pass, every signal is ripped up (its
// previously committed tree's usage is released) and re-routed against
// the current cost field, which already reflects every signal routed
// earlier in the same pass — this is the "negotiation" half of
// negotiated congestion. At the end of a pass, historic cost is folded
// in for every node proportional to how over-capacity it is — this is
// the "history" half, and it never resets within one invocation.
//
// Complexity: O(max_iterations · Σ_signal (tree-builder cost)), with
// the tree-builder cost itself bounded by search's O((V+E) log V).
package negotiate
