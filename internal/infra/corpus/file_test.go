package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/brainsacos-ui/asistente-linux/pkg/errors"
)

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFilePreservesOrder(t *testing.T) {
	path := writeCorpusFile(t, `
- question: "¿Qué comando muestra el espacio libre en disco?"
  answer: "df -h"
- question: "¿Cómo veo el uso de memoria?"
  answer: "free -h"
`)

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "df -h", entries[0].Answer)
	require.Equal(t, "free -h", entries[1].Answer)
}

func TestLoadFileSkipsIncompleteEntries(t *testing.T) {
	path := writeCorpusFile(t, `
- question: "pregunta sin respuesta"
  answer: ""
- question: ""
  answer: "respuesta sin pregunta"
- question: "¿Cómo listo procesos?"
  answer: "ps aux"
`)

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "ps aux", entries[0].Answer)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeCorpusError))
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeCorpusFile(t, "question: [not: a, list")
	_, err := LoadFile(path)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeCorpusError))
}

func TestDefaultCorpus(t *testing.T) {
	entries := Default()
	require.Len(t, entries, 51)
	for i, entry := range entries {
		require.NotEmpty(t, entry.Question, "entry %d question", i)
		require.NotEmpty(t, entry.Answer, "entry %d answer", i)
	}

	// Default must hand out an independent copy each time.
	entries[0].Answer = "mutated"
	require.NotEqual(t, "mutated", Default()[0].Answer)
}
