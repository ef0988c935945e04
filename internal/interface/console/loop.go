package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
)

const (
	banner = "Asistente de administración Linux. Escribe tu pregunta, 'listar' para ver las preguntas disponibles o 'salir' para terminar."
	prompt = "> "
)

// Loop is the line-oriented console interface: it reads one line at a time
// and fully resolves each query before reading the next.
type Loop struct {
	svc    qa.Service
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewLoop constructs the console loop over the given streams.
func NewLoop(svc qa.Service, in io.Reader, out io.Writer, logger *slog.Logger) *Loop {
	return &Loop{
		svc:    svc,
		in:     in,
		out:    out,
		logger: logger.With("component", "console.loop"),
	}
}

// Run processes lines until EOF, the exit command, or context cancellation.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, banner)

	scanner := bufio.NewScanner(l.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(l.out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "salir", "exit":
			fmt.Fprintln(l.out, "Hasta luego.")
			return nil
		case "listar", "lista", "preguntas":
			l.printQuestions(ctx)
			continue
		}

		resp, err := l.svc.Answer(ctx, qa.Request{Question: line})
		if err != nil {
			l.logger.Error("answer failed", "error", err)
			fmt.Fprintln(l.out, "Ocurrió un error al procesar la pregunta.")
			continue
		}
		fmt.Fprintln(l.out, resp.Answer)
		fmt.Fprintln(l.out)
	}
}

func (l *Loop) printQuestions(ctx context.Context) {
	questions := l.svc.Questions(ctx)
	if len(questions) == 0 {
		fmt.Fprintln(l.out, "No hay preguntas cargadas.")
		return
	}
	fmt.Fprintln(l.out, "Preguntas disponibles:")
	for i, question := range questions {
		fmt.Fprintf(l.out, "%3d. %s\n", i+1, question)
	}
	fmt.Fprintln(l.out)
}
