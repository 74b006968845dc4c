// Package allocation implements the two in-memory assignment engines used
// during a hackathon: matching mentors to project submissions by skill
// overlap, and packing teams into room seating grids. Both engines are pure
// functions over a snapshot of their inputs; they hold no state between
// calls, perform no I/O and are safe to run concurrently for different
// hackathons. Input validation (non-empty mentor lists, unique emails,
// positive room dimensions) is the caller's job and happens in the handler
// layer before an engine is invoked.
package allocation
