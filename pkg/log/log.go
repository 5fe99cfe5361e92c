// Copyright 2025 beachfall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Replacement represents a single symbol replacement for logging
type Replacement struct {
	Symbol string // Symbol that was replaced
	Markup string // Markup it was replaced with
	Count  int    // Number of occurrences replaced
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog         zerolog.Logger
	console      io.Writer
	mu           sync.Mutex
	replacements []Replacement
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogReplacement logs a non-zero symbol replacement
func (l *Logger) LogReplacement(ctx context.Context, r Replacement) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.replacements = append(l.replacements, r)

	fmt.Fprintf(l.console, "Replaced %s instances of %s\n",
		color.New(color.FgGreen).Sprintf("%d", r.Count), r.Symbol)

	l.zlog.Info().
		Str("symbol", r.Symbol).
		Str("markup", r.Markup).
		Int("count", r.Count).
		Msg("symbol replaced")
}

// 📝 Summary logs the byte-size delta and the intentionally skipped glyphs
func (l *Logger) Summary(ctx context.Context, originalSize, newSize int, skipped []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, r := range l.replacements {
		total += r.Count
	}

	fmt.Fprintf(l.console, "\nDone! File size changed from %d to %d bytes\n", originalSize, newSize)
	fmt.Fprintf(l.console, "Difference: %s bytes\n",
		color.New(color.Bold).Sprintf("%+d", newSize-originalSize))
	fmt.Fprintf(l.console, "Skipped: %s\n",
		color.New(color.Faint).Sprint(strings.Join(skipped, " ")))

	l.zlog.Info().
		Int("original_size", originalSize).
		Int("new_size", newSize).
		Int("delta", newSize-originalSize).
		Int("total_replacements", total).
		Strs("skipped", skipped).
		Msg("replacement pass complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("forgeon-icons")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
