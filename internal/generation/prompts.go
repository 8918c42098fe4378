package generation

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/lumina-api/internal/domain"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var promptTemplates = template.Must(
	template.New("prompts").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(promptFS, "prompts/*.tmpl"),
)

// greetingPromptData is the data passed to the greetings template
type greetingPromptData struct {
	Audience string
	Tone     string
	Themes   []string
}

// imagePromptData is the data passed to the image template
type imagePromptData struct {
	Tone   string
	Themes []string
}

// GreetingPrompt renders the instruction for a greeting set.
func GreetingPrompt(params domain.GeneratorParams) (string, error) {
	return render("greetings.tmpl", greetingPromptData{
		Audience: string(params.Audience),
		Tone:     string(params.Tone),
		Themes:   params.Themes,
	})
}

// ImagePrompt renders the artwork instruction. The greeting text itself is
// deliberately not part of the prompt; artwork depends on themes and tone only.
func ImagePrompt(themes []string, tone string) (string, error) {
	return render("image.tmpl", imagePromptData{
		Tone:   tone,
		Themes: themes,
	})
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}

	prompt := strings.TrimSpace(buf.String())
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	return prompt, nil
}
