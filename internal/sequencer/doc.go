// Package sequencer implements the waypoint sequencer state machine: the
// current position, play/pause status and step delay, plus the auto-advance
// timer that drives playback. Button affordances are derived from the state,
// never stored. The engine knows nothing about tables or maps; the bridge
// package keeps those collaborators in lockstep.
package sequencer
