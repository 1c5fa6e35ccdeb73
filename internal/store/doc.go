// Package store provides the shared, concurrency-safe aggregators that
// accumulate results during a run: configuration files, source files,
// issues and timing samples.
//
// Stores are the only concurrency-sensitive state in the core. Pipeline
// execution itself is sequential, but the check runner fans out one worker
// per source file and every worker appends into these stores. Each store
// serializes writes behind a mutex so concurrent producers can never lose
// or interleave updates, and every read returns a snapshot copy so callers
// can never observe (or cause) a mutation in flight.
//
// Design decision: We guard each collection with a sync.Mutex rather than
// a dedicated goroutine consuming an operation queue. The contract is
// "at most one writer applying at a time" plus join-then-read, and a mutex
// satisfies it with less machinery; reads happen only after the errgroup
// join, so readers never race writers in practice.
package store
