package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_CardPrompt(t *testing.T) {
	prompt, err := Get("cards.json", "mentor-card")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Payload}}")
	assert.Contains(t, prompt, "mentor_id")
}

func TestGet_AnalyzerPrompt(t *testing.T) {
	prompt, err := Get("analyzer.json", "extract-keywords")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.TargetRole}}")
	assert.Contains(t, prompt, "{{.PortfolioText}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("cards.json", "nope")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "mentor-card")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	got := Format("role={{.Role}} text={{.Text}}", map[string]string{"Role": "Backend", "Text": "hello"})
	assert.Equal(t, "role=Backend text=hello", got)
}

func TestFormat_MissingPlaceholderLeftIntact(t *testing.T) {
	got := Format("keep {{.Unknown}}", map[string]string{"Role": "Backend"})
	assert.Equal(t, "keep {{.Unknown}}", got)
}
