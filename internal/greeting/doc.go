// Package greeting requests one structured greeting set from the text
// generation port and normalizes whatever comes back into a
// domain.GreetingResponse.
package greeting
