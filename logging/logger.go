package logging

import (
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel 日志级别
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// String 返回日志级别的字符串表示
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Field 日志字段
type Field struct {
	Key   string
	Value any
}

// Logger 日志接口
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	Log(level LogLevel, msg string, fields ...Field)
	WithFields(fields ...Field) Logger
	WithCategory(category string) Logger
}

// Entry 一条待格式化的日志记录
type Entry struct {
	Time     time.Time
	Level    LogLevel
	Category string
	Message  string
	Fields   []Field
}

// logger 默认实现：同步写入，格式化器可替换
type logger struct {
	mu        *sync.Mutex
	out       io.Writer
	formatter Formatter
	minLevel  LogLevel
	category  string
	fields    []Field
	exit      func(int) // Fatal 之后调用，测试中可替换
}

// NewLogger 创建默认日志记录器（文本格式，写 stdout，Info 级别起）。
func NewLogger() Logger {
	return &logger{
		mu:        &sync.Mutex{},
		out:       os.Stdout,
		formatter: NewTextFormatter(),
		minLevel:  LogLevelInfo,
		exit:      os.Exit,
	}
}

func (l *logger) Debug(msg string, fields ...Field) { l.Log(LogLevelDebug, msg, fields...) }
func (l *logger) Info(msg string, fields ...Field)  { l.Log(LogLevelInfo, msg, fields...) }
func (l *logger) Warn(msg string, fields ...Field)  { l.Log(LogLevelWarn, msg, fields...) }
func (l *logger) Error(msg string, fields ...Field) { l.Log(LogLevelError, msg, fields...) }

func (l *logger) Fatal(msg string, fields ...Field) {
	l.Log(LogLevelFatal, msg, fields...)
	l.exit(1)
}

// Log 写一条日志。级别低于最小级别时丢弃。
func (l *logger) Log(level LogLevel, msg string, fields ...Field) {
	if level < l.minLevel {
		return
	}

	entry := Entry{
		Time:     time.Now(),
		Level:    level,
		Category: l.category,
		Message:  msg,
	}
	if len(l.fields) > 0 || len(fields) > 0 {
		entry.Fields = make([]Field, 0, len(l.fields)+len(fields))
		entry.Fields = append(entry.Fields, l.fields...)
		entry.Fields = append(entry.Fields, fields...)
	}

	line := l.formatter.Format(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write(line)
}

// WithFields 返回附加了固定字段的派生记录器，底层输出共享。
func (l *logger) WithFields(fields ...Field) Logger {
	clone := *l
	clone.fields = append(append([]Field{}, l.fields...), fields...)
	return &clone
}

// WithCategory 返回指定分类的派生记录器。
func (l *logger) WithCategory(category string) Logger {
	clone := *l
	clone.category = category
	return &clone
}
