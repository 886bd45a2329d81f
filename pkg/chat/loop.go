package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hashira-dev/hashira/pkg/config"
)

// SentinelWord ends the conversation when entered on its own line.
const SentinelWord = "salir"

// maxInputRetries bounds re-prompting on a persistently failing input stream.
const maxInputRetries = 3

// IsSentinel reports whether input ends the session. The comparison is
// case-insensitive and deliberately untrimmed: "SALIR " with trailing
// whitespace is dispatched as a query.
func IsSentinel(input string) bool {
	return strings.EqualFold(input, SentinelWord)
}

// RunLoop drives the conversation until the sentinel or end of input. Empty
// input is dispatched as a query like any other. Retrieval or generation
// failures are reported and the loop keeps going, so a transient API error
// does not end the session.
func RunLoop(ctx context.Context, engine *Engine, chatType config.ChatType, in io.Reader, out io.Writer) {
	blue := color.New(color.FgBlue).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(out, "\n%s Hola 🚀! Qué quieres preguntarme sobre Transformers e inteligencia artificial en general?\n", blue("IA:"))
	switch chatType {
	case config.ChatTypeQA:
		fmt.Fprintln(out, green("Estás utilizando el chatbot en modo de preguntas y respuestas. "+
			"Este chatbot genera respuestas basándose puramente en la consulta actual sin considerar el historial de la conversación."))
	case config.ChatTypeMemory:
		fmt.Fprintln(out, green("Estás utilizando el chatbot en modo de memoria. "+
			"Este chatbot genera respuestas basándose en el historial de la conversación y en la consulta actual."))
	}

	reader := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "\n%s\n", blue("Tú:"))
		query, ok := readQuery(reader, out, red)
		if !ok {
			return
		}
		if IsSentinel(query) {
			return
		}

		fmt.Fprintln(out, yellow("La IA está pensando..."))

		var answer string
		var err error
		if chatType == config.ChatTypeQA {
			answer, err = engine.AnswerQA(ctx, query)
		} else {
			if engine.verbose {
				fmt.Fprintf(out, "La historia antes de esta respuesta es: %v\n", engine.History())
			}
			answer, err = engine.AnswerWithMemory(ctx, query)
		}
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", red("Error:"), err)
			continue
		}

		fmt.Fprintf(out, "%s %s\n", red("IA:"), answer)
	}
}

// readQuery reads one input line, distinguishing a query from end of input.
// A read error re-prompts a bounded number of times instead of recursing.
func readQuery(reader *bufio.Reader, out io.Writer, red func(a ...interface{}) string) (string, bool) {
	retries := 0
	for {
		line, err := reader.ReadString('\n')
		if err == nil {
			return strings.TrimRight(line, "\r\n"), true
		}
		if line != "" && err == io.EOF {
			// Final line without a trailing newline still counts.
			return line, true
		}
		if err == io.EOF || retries >= maxInputRetries {
			return "", false
		}
		retries++
		fmt.Fprintln(out, red("Error: Input no esperado. Por favor intenta de nuevo."))
	}
}
