// Package workplanner provides a thread-safe coordinator that accepts a
// stream of heterogeneous commands from producers and dispenses them to a
// pool of worker goroutines under group-ordering and conflict rules.
//
// Producers call Submit to enqueue a Command. Workers loop on Take
// (blocking), execute what it returns, and call Complete. A single control
// caller invokes Drain to begin an orderly shutdown: Take starts returning
// termination commands instead of suspending or dispatching real work.
//
// Grouping
//
// Commands are assigned to a group when submitted. Workers only ever
// execute commands belonging to the currently active group, except for a
// small set of latency-sensitive command tags that bypass grouping
// entirely via an ASAP lane. Group assignment and ASAP eligibility are
// described on Tag and on its Family A, B and C tag constants.
//
// Concurrency model
//
// A single mutex and a single condition variable guard all state. Submit,
// Complete, and Drain hold the lock briefly and return; only Take
// suspends, and only when no command is currently eligible for dispatch.
//
// Configuration
//
// New accepts Option values for ambient concerns only: a metrics.Provider
// and a logger. There is no runtime configuration of group-assignment or
// conflict behavior; MaxGroupID is the only tunable, and it is a compile
// time constant.
package workplanner
