// Package core defines the low-level publish/subscribe contract that the
// rest of the flux module builds on: Pipe, Receiver, Emitter, the demand
// register, the arity-enforcing wrappers, and the generator/operator stage
// helpers that pipeline stages embed.
//
// NOTE: this package should have no dependencies outside the standard
// library. Higher-level packages (mute, mono, maybe, many, ops, convert)
// depend on core; core depends on nothing in this module.
package core
