package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leofalp/chatbot/core/client"
	"github.com/leofalp/chatbot/providers/ai"
)

// Transcript strings.
const (
	Greeting = "Bienvenido al chatbot. Escribe 'exit' o 'quit' para salir."
	Farewell = "Saliendo del chatbot. ¡Hasta luego!"

	userLabel   = "Usuario:"
	botLabel    = "Chatbot:"
	errorPrefix = "Ocurrió un error:"
)

var exitKeywords = []string{"exit", "quit"}

// Responder answers a message list with a single reply. *client.Client
// satisfies it.
type Responder interface {
	GetResponse(ctx context.Context, model string, messages []ai.Message, opts ...client.RequestOption) (ai.Message, error)
}

// Session is one interactive conversation bound to a responder and a model.
type Session struct {
	responder Responder
	model     string
	in        io.Reader
	out       io.Writer
	logger    *slog.Logger
	styles    styles
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for failed turns. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a session that reads user input from in and writes the
// transcript to out. Every turn is sent to model.
func New(responder Responder, model string, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		responder: responder,
		model:     model,
		in:        in,
		out:       out,
		logger:    slog.New(slog.DiscardHandler),
		styles:    newStyles(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// outcome is the result of a single turn.
type outcome int

const (
	// outcomeContinue means the loop asks for the next line.
	outcomeContinue outcome = iota
	// outcomeExit means the user ended the session.
	outcomeExit
)

type line struct {
	text string
	err  error
}

// Run prints the greeting and serves turns until the user exits, the input
// ends, or ctx is cancelled. It returns nil on a normal exit, the context
// error on cancellation, and a wrapped error when reading input fails.
func (s *Session) Run(ctx context.Context) error {
	lines, stop := s.readLines()
	defer stop()

	s.println(Greeting)

	for {
		s.print(s.styles.user.Render(userLabel) + " ")

		var next line
		select {
		case <-ctx.Done():
			s.println("")
			s.println(Farewell)
			return ctx.Err()
		case next = <-lines:
		}

		if next.err != nil && !errors.Is(next.err, io.EOF) {
			return fmt.Errorf("reading input: %w", next.err)
		}
		if errors.Is(next.err, io.EOF) && next.text == "" {
			s.println("")
			s.println(Farewell)
			return nil
		}

		result, err := s.turn(ctx, next.text)
		if err != nil {
			return err
		}
		if result == outcomeExit {
			s.println(Farewell)
			return nil
		}
		if errors.Is(next.err, io.EOF) {
			s.println(Farewell)
			return nil
		}
	}
}

// turn handles one line of input. A failed request is reported and yields
// outcomeContinue; the returned error is reserved for cancellation.
func (s *Session) turn(ctx context.Context, input string) (outcome, error) {
	if isExit(input) {
		return outcomeExit, nil
	}

	reply, err := s.responder.GetResponse(ctx, s.model, []ai.Message{ai.NewUserMessage(input)})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return outcomeExit, ctxErr
		}
		s.logger.WarnContext(ctx, "chat turn failed",
			slog.String("model", s.model),
			slog.String("error", err.Error()),
		)
		s.println(s.styles.err.Render(errorPrefix) + " " + err.Error())
		return outcomeContinue, nil
	}

	s.println(s.styles.bot.Render(botLabel) + " " + reply.Content)
	return outcomeContinue, nil
}

// readLines feeds input lines, without line terminators, to the returned
// channel from a separate goroutine so Run can also watch ctx. The last value
// carries the read error (io.EOF at end of input). Calling stop releases the
// goroutine.
func (s *Session) readLines() (<-chan line, func()) {
	lines := make(chan line)
	done := make(chan struct{})

	go func() {
		reader := bufio.NewReader(s.in)
		for {
			text, err := reader.ReadString('\n')
			text = strings.TrimRight(text, "\r\n")
			select {
			case lines <- line{text: text, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	return lines, func() { close(done) }
}

func isExit(input string) bool {
	trimmed := strings.TrimSpace(input)
	for _, keyword := range exitKeywords {
		if strings.EqualFold(trimmed, keyword) {
			return true
		}
	}
	return false
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	_, _ = io.WriteString(s.out, text+"\n")
}
