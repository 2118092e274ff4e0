package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger обёртка над zerolog с printf-style методами.
// Все компоненты сервиса зависят от узких локальных интерфейсов
// (Info/Warn/Error), которые этот тип реализует.
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New создает логгер, пишущий JSON в указанный файл.
// Если file пустой — пишет в stdout. level: debug|info|warn|error.
func New(file string, level string) (*Logger, error) {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && level != "" {
		lvl = parsed
	}

	output := io.Writer(os.Stdout)
	var closer io.Closer

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		output = f
		closer = f
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zl := zerolog.New(output).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl, closer: closer}, nil
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error пишет сообщение об ошибке
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}
