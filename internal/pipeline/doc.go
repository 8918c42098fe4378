// Package pipeline acquires the background image of one greeting card.
//
// An acquisition waits a stagger proportional to the card's position, issues
// one image request, and retries only on quota exhaustion with an
// exponential schedule. Every other failure is terminal on the first attempt.
// Cancelling the context abandons any pending stagger or backoff wait.
package pipeline
