// Package domain contains the core entities and value objects of the
// studio: generator parameters, greeting sets, and the per-card image state.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
