// Package card implements the per-card state machine that drives one
// greeting card's image acquisition.
//
// A Controller enters Loading as soon as it is created and runs its
// acquisition in its own goroutine. It settles in Ready or Failed; a Failed
// card can be retried, which restarts the full acquisition from the
// beginning. Tearing a controller down cancels its context, and no state is
// written after that.
package card
