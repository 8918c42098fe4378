// Package studio owns the application state: the current parameters, the
// loading flag and error banner, the category and gallery of the latest
// greeting set, and the auto-cycle driver. HTTP handlers only talk to a
// Studio.
package studio
