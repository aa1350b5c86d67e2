// Package replay streams a finished Kruskal run to a consumer one step at a
// time, paced for animation.
//
// The run is always computed eagerly first; replay only re-emits immutable
// StepRecords, so cancelling a replay (context cancel, disconnected client)
// never affects the RunResult it was reading from.
//
// Message sequence: one "step" message per StepRecord in order, then a single
// "complete" message carrying the MST, total cost and statistics. A failure
// to deliver is reported to the caller; callers that own a transport may send
// an "error" message themselves via ErrorMessage.
//
// Pacing: consecutive messages are spaced by BaseDelay / Speed using a
// golang.org/x/time/rate limiter. A zero delay disables pacing.
package replay
