// Package scheduler implements the concurrent core of the alarm scheduler:
// a mutex-protected, expiry-sorted pending queue fed by a submitter, a
// dispatcher that drains the earliest-due request and routes it by the
// parity of its expiry instant, and two countdown workers that each consume
// from a private FIFO mailbox and report progress until expiry.
//
// Ownership of a request moves strictly in one direction: queue →
// dispatcher → mailbox → worker. Exactly one component owns a request at
// any instant, and no component ever holds two locks at once.
package scheduler
