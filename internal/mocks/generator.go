package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/lumina-api/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// GenerateGreetingJSONFn allows test cases to mock the GenerateGreetingJSON behavior
	GenerateGreetingJSONFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Body string
	Err  error

	mu      sync.Mutex
	prompts []string
}

// GenerateGreetingJSON implements the generation.TextGenerator interface
func (m *MockTextGenerator) GenerateGreetingJSON(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateGreetingJSONFn != nil {
		return m.GenerateGreetingJSONFn(ctx, prompt)
	}
	return m.Body, m.Err
}

// CallCount returns how many times GenerateGreetingJSON was called
func (m *MockTextGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt received, in call order
func (m *MockTextGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// MockImageGenerator implements generation.ImageGenerator for testing
type MockImageGenerator struct {
	// GenerateImageFn allows test cases to mock the GenerateImage behavior
	GenerateImageFn func(ctx context.Context, prompt string) (*generation.Image, error)

	// Default response values
	Image *generation.Image
	Err   error

	mu      sync.Mutex
	calls   []time.Time
	prompts []string
}

// GenerateImage implements the generation.ImageGenerator interface
func (m *MockImageGenerator) GenerateImage(ctx context.Context, prompt string) (*generation.Image, error) {
	m.mu.Lock()
	m.calls = append(m.calls, time.Now())
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}
	return m.Image, m.Err
}

// CallCount returns how many times GenerateImage was called
func (m *MockImageGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// CallTimes returns the wall-clock time of every call, in call order
func (m *MockImageGenerator) CallTimes() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Time, len(m.calls))
	copy(out, m.calls)
	return out
}

// Prompts returns a copy of every prompt received, in call order
func (m *MockImageGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears the call tracking state
func (m *MockImageGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.prompts = nil
}

// SampleImage is a tiny payload used where tests only need a non-empty image
var SampleImage = &generation.Image{MIMEType: "image/png", Data: []byte("png-bytes")}

// NewMockImageGeneratorWithImage creates a MockImageGenerator that always succeeds
func NewMockImageGeneratorWithImage(img *generation.Image) *MockImageGenerator {
	return &MockImageGenerator{Image: img}
}

// NewMockImageGeneratorWithError creates a MockImageGenerator that always fails with err
func NewMockImageGeneratorWithError(err error) *MockImageGenerator {
	return &MockImageGenerator{Err: err}
}

// NewMockImageGeneratorFailingFirst creates a MockImageGenerator that returns
// errs in order for the first len(errs) calls and img afterwards
func NewMockImageGeneratorFailingFirst(img *generation.Image, errs ...error) *MockImageGenerator {
	var (
		mu sync.Mutex
		n  int
	)
	return &MockImageGenerator{
		GenerateImageFn: func(ctx context.Context, prompt string) (*generation.Image, error) {
			mu.Lock()
			defer mu.Unlock()
			if n < len(errs) {
				err := errs[n]
				n++
				return nil, err
			}
			n++
			return img, nil
		},
	}
}
