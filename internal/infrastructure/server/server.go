package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
)

const maxLineSize = 1 << 20

// Command is one line of input.
type Command struct {
	Function  string         `json:"function"`
	Arguments map[string]any `json:"arguments"`
}

type Executor interface {
	Execute(ctx context.Context, name string, args map[string]any) response.Result
}

// Server reads newline-delimited commands and writes one JSON result per line.
type Server struct {
	executor Executor
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger
}

type ServerConfig struct {
	Executor Executor
	Input    io.Reader
	Output   io.Writer
	Logger   *zap.Logger
}

func NewServer(cfg ServerConfig) *Server {
	return &Server{
		executor: cfg.Executor,
		in:       cfg.Input,
		out:      cfg.Output,
		logger:   cfg.Logger,
	}
}

type line struct {
	text    string
	tooLong bool
	err     error
}

// Serve processes commands until the input ends or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("accepting commands")

	lines := make(chan line)
	go s.scan(ctx, lines)

	enc := json.NewEncoder(s.out)
	enc.SetEscapeHTML(false)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down command loop")
			return nil
		case l, ok := <-lines:
			if !ok {
				s.logger.Info("input closed")
				return nil
			}
			if l.err != nil {
				return fmt.Errorf("reading commands: %w", l.err)
			}
			var res response.Result
			switch {
			case l.tooLong:
				s.logger.Warn("command line too long", zap.Int("limit", maxLineSize))
				res = response.FromError(apperror.BadRequest(fmt.Sprintf("command exceeds %d bytes", maxLineSize)))
			case strings.TrimSpace(l.text) == "":
				continue
			default:
				res = s.dispatch(ctx, l.text)
			}
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}
	}
}

func (s *Server) dispatch(ctx context.Context, text string) response.Result {
	var cmd Command
	if err := json.Unmarshal([]byte(text), &cmd); err != nil {
		s.logger.Warn("malformed command", zap.Error(err))
		return response.FromError(apperror.BadRequest(fmt.Sprintf("malformed command: %v", err)))
	}
	if cmd.Function == "" {
		return response.FromError(apperror.BadRequest("function is required"))
	}
	return s.executor.Execute(ctx, cmd.Function, cmd.Arguments)
}

func (s *Server) scan(ctx context.Context, lines chan<- line) {
	defer close(lines)

	reader := bufio.NewReader(s.in)
	for {
		text, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return
		}
		l := line{text: text, tooLong: tooLong, err: err}
		select {
		case lines <- l:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLineSize is consumed up to its newline and reported as tooLong.
func readLine(r *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize+1 {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong):
			return string(bytes.TrimRight(buf, "\r\n")), tooLong, nil
		case err != nil:
			return "", false, err
		}
		return string(bytes.TrimRight(buf, "\r\n")), tooLong, nil
	}
}
