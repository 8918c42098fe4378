// Package api exposes the studio over HTTP. Handlers translate requests into
// studio and card operations and map domain errors to status codes and safe
// messages; raw errors only reach the logs, after redaction.
package api
