package ingestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainTextVerbatim(t *testing.T) {
	e := NewFileExtractor()
	text, err := e.ExtractText(context.Background(), "resume.txt", []byte("Python developer\nwith 3 years"))
	require.NoError(t, err)
	assert.Equal(t, "Python developer\nwith 3 years", text)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	e := NewFileExtractor()
	text, err := e.ExtractText(context.Background(), "RESUME.TXT", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, "content", text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	e := NewFileExtractor()
	for _, name := range []string{"resume.docx", "resume.png", "resume", "resume.doc"} {
		_, err := e.ExtractText(context.Background(), name, []byte("data"))
		assert.ErrorIs(t, err, ErrUnsupportedType, "file %q", name)
	}
}

func TestExtractText_MalformedPDF(t *testing.T) {
	e := NewFileExtractor()
	_, err := e.ExtractText(context.Background(), "resume.pdf", []byte("not a pdf at all"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractText_CancelledContext(t *testing.T) {
	e := NewFileExtractor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.ExtractText(ctx, "resume.txt", []byte("content"))
	assert.ErrorIs(t, err, context.Canceled)
}
