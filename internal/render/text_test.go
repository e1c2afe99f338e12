package render_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/document"
	"github.com/JaimeStill/mail-designer/internal/render"
)

func TestPlainText_Seed(t *testing.T) {
	canonical := render.Serializer{}.SerializeDocument(document.NewSeeded(blocks.NewFactory(blocks.Defaults{})))

	got := render.PlainText(canonical)

	lines := strings.Split(got, "\n\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Welcome to Our Newsletter", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Thank you for subscribing! We're excited"))
	assert.Equal(t, "Get Started (https://example.com)", lines[2])
	assert.NotContains(t, got, "Email Template")
	assert.NotContains(t, got, "<")
}

func TestPlainText_Divider(t *testing.T) {
	canonical := render.Serializer{}.Serialize([]blocks.Block{
		{ID: uuid.New(), Payload: blocks.Heading{Content: "Top"}},
		{ID: uuid.New(), Payload: blocks.Divider{}},
		{ID: uuid.New(), Payload: blocks.Text{Content: "Bottom & more"}},
	})

	assert.Equal(t, "Top\n\n----\n\nBottom & more", render.PlainText(canonical))
}

func TestMinify(t *testing.T) {
	canonical := render.Serializer{}.SerializeDocument(document.NewSeeded(blocks.NewFactory(blocks.Defaults{})))

	got, err := render.Minify(canonical)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(got), len(canonical))
	assert.Contains(t, got, "Welcome to Our Newsletter")
	assert.Contains(t, got, "Get Started")
	assert.Contains(t, got, "https://example.com")
	assert.Contains(t, got, "<body>")
}
