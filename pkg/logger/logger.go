package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger printf-style логгер поверх zerolog
// Пишет JSON в stdout и (опционально) в файл
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New создает логгер
// filePath - путь к файлу логов (пустая строка - только stdout)
// level - уровень логирования: debug, info, warn, error
func New(filePath string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
		}
		out = zerolog.MultiLevelWriter(os.Stdout, file)
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl, file: file}, nil
}

// NewWithWriter создает логгер, пишущий в w (используется в тестах)
func NewWithWriter(w io.Writer, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return &Logger{zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}, nil
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With возвращает дочерний логгер с дополнительным полем
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger(), file: l.file}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}

// Close закрывает файл логов (если он был открыт)
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func parseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
