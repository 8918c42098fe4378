// Package gemini provides implementations of the generation.TextGenerator and
// generation.ImageGenerator ports that use Google's Gemini API for producing
// greeting sets and greeting artwork.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the studio core to Google's external Gemini AI service without
// exposing the details of the external service to the rest of the application.
//
// Key components:
//
// 1. Client:
//   - Implements both generation ports on top of a single genai client
//   - Issues exactly one GenerateContent call per request; retries belong
//     to the image pipeline, not to this adapter
//
// 2. Response Schema:
//   - Describes the greeting JSON object so the text model answers in
//     structured form
//
// 3. Error Handling:
//   - Translates HTTP 429 and RESOURCE_EXHAUSTED API errors into
//     generation.ErrQuotaExceeded
//   - Reports image responses without inline data as generation.ErrNoImageData
package gemini
