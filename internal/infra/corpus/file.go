package corpus

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
	apperrors "github.com/brainsacos-ui/asistente-linux/pkg/errors"
)

// LoadFile reads an ordered list of question/answer records from a YAML file:
//
//	- question: "¿Qué comando muestra el espacio libre en disco?"
//	  answer: "df -h"
//
// Document order is preserved; entries missing either field are skipped.
func LoadFile(path string) ([]qa.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusError, fmt.Sprintf("read corpus file %s", path), err)
	}

	var raw []qa.Entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusError, fmt.Sprintf("parse corpus file %s", path), err)
	}

	entries := make([]qa.Entry, 0, len(raw))
	for _, entry := range raw {
		if strings.TrimSpace(entry.Question) == "" || strings.TrimSpace(entry.Answer) == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
