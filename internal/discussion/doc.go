// Package discussion implements the multi-round consensus protocol that
// drives several LLM participants toward agreement on a research prompt.
//
// A session queries every participant once per round, strictly
// sequentially in configuration order. Round 1 poses the research prompt
// directly; later rounds show each participant its own previous answer
// plus the latest answers of every peer and ask for an updated opinion.
// Each response is persisted to that participant's response store along
// with the agreement percentage extracted from the mandatory convergence
// sentence. After a full round, the unweighted mean of all extracted
// values is compared against the threshold: the session ends Converged
// when the mean reaches it, or Exhausted after the final configured
// round.
//
// # Session Lifecycle
//
// A session progresses through these states:
//
//   - Pending: session constructed, folder and stores created, no round run
//   - Running: rounds are being executed
//   - Converged: the average agreement reached the threshold
//   - Exhausted: all rounds ran without reaching the threshold
//
// # Peer Visibility
//
// The latest-responses map is updated as each participant answers, so a
// participant queried later in a round sees the same-round answers of
// participants queried before it, while the first participant of a round
// only ever sees the previous round. This order-dependent visibility is
// deliberate and reproducible because queries never run concurrently.
package discussion
