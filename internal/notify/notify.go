package notify

import (
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier is the toast surface components report outcomes to.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type Message struct {
	Type    Level  `json:"type"`
	Message string `json:"message"`
}

// Flash collects messages for the next rendered page.
type Flash struct {
	mu       sync.Mutex
	messages []Message
}

func NewFlash() *Flash {
	return &Flash{}
}

func (f *Flash) Success(msg string) {
	f.add(LevelSuccess, msg)
}

func (f *Flash) Error(msg string) {
	f.add(LevelError, msg)
}

func (f *Flash) add(level Level, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, Message{Type: level, Message: msg})
}

func (f *Flash) Messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Message, len(f.messages))
	copy(out, f.messages)

	return out
}

// Drain returns the collected messages and empties the collector.
func (f *Flash) Drain() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.messages
	f.messages = nil

	return out
}

// Writer prints notifications line by line, errors to a separate stream.
type Writer struct {
	Out io.Writer
	Err io.Writer
}

func (w Writer) Success(msg string) {
	_, _ = fmt.Fprintln(w.Out, msg)
}

func (w Writer) Error(msg string) {
	dst := w.Err
	if dst == nil {
		dst = w.Out
	}

	_, _ = fmt.Fprintln(dst, "error: "+msg)
}
