// --- START OF FINAL REVISED FILE internal/cli/backend/backend.go ---
// Package backend implements converter.Converter by driving an external
// conversion engine process over newline-delimited JSON frames on stdio.
//
// The host sends one convert frame. The engine answers with any number of log
// and buffer frames followed by exactly one document or error frame. Every
// buffer frame is handed to the configured BufferWriter and answered with a
// bufferResult frame before the next engine frame is read, so the writer runs
// while the conversion is still in progress.
package backend

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

const (
	// maxLogOutputBytes limits the engine stderr quoted in errors and logs.
	maxLogOutputBytes = 1024
	// maxStderrBytes caps how much engine stderr is retained.
	maxStderrBytes = 64 * 1024
	// waitDelay bounds how long Wait waits for the engine's I/O after it exits or is killed.
	waitDelay = 2 * time.Second
	// defaultExitGrace is how long the engine may keep running after its result frame.
	defaultExitGrace = 5 * time.Second
)

// errNoResult reports that the engine closed stdout before its document or error frame.
var errNoResult = fmt.Errorf("%w: backend closed stdout without a document or error frame", converter.ErrBackendProtocol)

// ExecConverter implements converter.Converter using os/exec.
type ExecConverter struct {
	command   []string
	logger    *slog.Logger
	exitGrace time.Duration
}

// NewExecConverter creates a converter that launches command (argv form) once per conversion.
func NewExecConverter(command []string, loggerHandler slog.Handler) *ExecConverter {
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	logger := slog.New(loggerHandler).With(slog.String("component", "backend"))
	return &ExecConverter{
		command:   append([]string(nil), command...),
		logger:    logger,
		exitGrace: defaultExitGrace,
	}
}

// Convert runs one conversion. Every returned error wraps converter.ErrConversion.
func (c *ExecConverter) Convert(ctx context.Context, inputPath string, opts converter.Options) (converter.Document, error) {
	logArgs := []any{slog.String("input", inputPath)}

	if len(c.command) == 0 || c.command[0] == "" {
		return nil, fmt.Errorf("%w: backend command cannot be empty", converter.ErrConversion)
	}
	logArgs = append(logArgs, slog.String("command", strings.Join(c.command, " ")))

	request, err := json.Marshal(convertFrame{
		SchemaVersion: SchemaVersion,
		Type:          FrameConvert,
		Input:         inputPath,
		Options:       opts,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal convert frame: %w", converter.ErrConversion, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.command[0], c.command[1:]...)
	stderr := &cappedBuffer{limit: maxStderrBytes}
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create stdin pipe: %w", converter.ErrConversion, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create stdout pipe: %w", converter.ErrConversion, err)
	}

	if err := cmd.Start(); err != nil {
		c.logger.Debug("Failed to start backend process", append(logArgs, slog.Any("error", err))...)
		return nil, fmt.Errorf("%w: failed to start backend '%s': %w", converter.ErrConversion, c.command[0], err)
	}
	c.logger.Debug("Backend process started", logArgs...)

	// Unblock the frame reader when the run is cancelled, even if a grandchild keeps stdout open.
	stopClose := context.AfterFunc(runCtx, func() { _ = stdout.Close() })
	defer stopClose()

	s := &session{opts: opts, in: stdin, out: bufio.NewReader(stdout), logger: c.logger}
	if s.opts.Logger == nil {
		s.opts.Logger = converter.NoOpLogger{}
	}

	doc, sessionErr := s.run(request)
	var grace *time.Timer
	if sessionErr != nil {
		cancel() // the engine may still be blocked on us
	} else {
		// A result was received: the engine gets a bounded time to exit, then is killed.
		grace = time.AfterFunc(c.exitGrace, cancel)
	}
	_ = stdin.Close()
	_, _ = io.Copy(io.Discard, stdout)
	waitErr := cmd.Wait()
	lingered := grace != nil && !grace.Stop() && waitErr != nil

	stderrText := stderr.Summary()
	if stderrText != "" {
		logArgs = append(logArgs, slog.String("backend_stderr", stderrText))
	}

	exitCode := 0
	if waitErr != nil {
		exitCode = -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		logArgs = append(logArgs, slog.Int("exitCode", exitCode))
	}

	switch {
	case ctx.Err() != nil:
		c.logger.Debug("Backend cancelled", append(logArgs, slog.Any("error", ctx.Err()))...)
		return nil, fmt.Errorf("%w: backend cancelled: %w", converter.ErrConversion, ctx.Err())
	case lingered:
		c.logger.Debug("Backend did not exit after sending its result", logArgs...)
		return nil, fmt.Errorf("%w: backend did not exit within %s after sending its result", converter.ErrConversion, c.exitGrace)
	case sessionErr != nil && waitErr != nil && errors.Is(sessionErr, errNoResult):
		c.logger.Debug("Backend exited without a result", logArgs...)
		return nil, fmt.Errorf("%w: backend exited with code %d: %s", converter.ErrConversion, exitCode, stderrText)
	case sessionErr != nil:
		c.logger.Debug("Backend conversion failed", append(logArgs, slog.Any("error", sessionErr))...)
		return nil, fmt.Errorf("%w: %w", converter.ErrConversion, sessionErr)
	case waitErr != nil:
		c.logger.Debug("Backend exited with an error after sending its result", logArgs...)
		return nil, fmt.Errorf("%w: backend exited with code %d after sending its result: %s", converter.ErrConversion, exitCode, stderrText)
	}

	c.logger.Debug("Backend finished successfully", logArgs...)
	return doc, nil
}

// session is the frame exchange of one conversion.
type session struct {
	opts      converter.Options
	in        io.Writer
	out       *bufio.Reader
	logger    *slog.Logger
	writerErr error
}

func (s *session) run(request []byte) (converter.Document, error) {
	if err := s.send(request); err != nil {
		return nil, fmt.Errorf("failed writing convert frame: %w", err)
	}

	for {
		line, err := s.out.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if err == nil {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil, errNoResult
			}
			return nil, fmt.Errorf("failed reading backend stdout: %w", err)
		}

		frame, err := decodeFrame(line)
		if err != nil {
			return nil, err
		}

		switch frame.Type {
		case FrameLog:
			s.opts.Logger.Log(frame.Level, logMessage(frame.Message))
		case FrameBuffer:
			if err := s.buffer(frame); err != nil {
				return nil, err
			}
		case FrameDocument:
			if s.writerErr != nil {
				return nil, fmt.Errorf("document produced after a failed buffer write: %w", s.writerErr)
			}
			return converter.JSONDocument(frame.Document), nil
		case FrameError:
			msg := errorMessage(frame.Message)
			if s.writerErr != nil {
				return nil, fmt.Errorf("%s: %w", msg, s.writerErr)
			}
			return nil, errors.New(msg)
		}
	}
}

// buffer hands one payload to the writer and answers the engine.
func (s *session) buffer(frame engineFrame) error {
	reply := bufferResultFrame{Type: FrameBufferResult}
	switch {
	case s.opts.Writer == nil:
		reply.Error = "no buffer writer configured"
	default:
		uri, err := s.opts.Writer.Buffer(frame.Data, frame.Index, frame.Multi)
		if err != nil {
			s.writerErr = err
			reply.Error = err.Error()
			s.logger.Debug("Buffer write failed", slog.Uint64("index", uint64(frame.Index)), slog.Any("error", err))
		} else {
			reply.URI = uri
		}
	}

	data, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("failed to marshal bufferResult frame: %w", err)
	}
	if err := s.send(data); err != nil {
		return fmt.Errorf("failed writing bufferResult frame: %w", err)
	}
	return nil
}

func (s *session) send(frame []byte) error {
	if _, err := s.in.Write(append(frame, '\n')); err != nil {
		return err
	}
	return nil
}

// cappedBuffer keeps the first limit bytes written to it and discards the rest.
type cappedBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

// Summary returns the trimmed content, shortened for logging.
func (b *cappedBuffer) Summary() string {
	s := strings.TrimSpace(b.buf.String())
	if len(s) > maxLogOutputBytes {
		s = s[:maxLogOutputBytes] + "... (truncated)"
	}
	return s
}

// --- END OF FINAL REVISED FILE internal/cli/backend/backend.go ---
