// Package mocks provides centralized mock implementations of the generation
// ports and the clipboard port for testing.
//
// Every mock follows the same shape: optional function fields override
// behavior per test, default fields supply canned values, and call tracking
// is guarded by a mutex so the mocks can be shared by concurrent card
// pipelines.
//
// Usage:
//
//	imageGen := &mocks.MockImageGenerator{
//	    GenerateImageFn: func(ctx context.Context, prompt string) (*generation.Image, error) {
//	        return nil, generation.ErrQuotaExceeded
//	    },
//	}
package mocks
