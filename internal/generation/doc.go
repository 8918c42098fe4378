// Package generation provides the ports for interacting with external AI/LLM
// services for content generation. It abstracts the details of the Gemini
// integration, allowing the studio to request greeting text and greeting
// artwork without coupling to a specific external service.
//
// It also owns the prompt templates and the rule that classifies a failed
// image request as a quota condition or any other failure.
package generation
