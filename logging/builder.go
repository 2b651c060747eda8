package logging

import (
	"io"
	"os"
	"sync"
)

// LoggingBuilder 日志构建器
type LoggingBuilder struct {
	out       io.Writer
	formatter Formatter
	minLevel  LogLevel
}

// NewLoggingBuilder 创建日志构建器
func NewLoggingBuilder() *LoggingBuilder {
	return &LoggingBuilder{
		out:       os.Stdout,
		formatter: NewTextFormatter(),
		minLevel:  LogLevelInfo,
	}
}

// SetMinimumLevel 设置最小日志级别
func (b *LoggingBuilder) SetMinimumLevel(level LogLevel) *LoggingBuilder {
	b.minLevel = level
	return b
}

// SetOutput 设置输出目标
func (b *LoggingBuilder) SetOutput(out io.Writer) *LoggingBuilder {
	b.out = out
	return b
}

// UseTextFormatter 使用文本格式
func (b *LoggingBuilder) UseTextFormatter() *LoggingBuilder {
	b.formatter = NewTextFormatter()
	return b
}

// UseJSONFormatter 使用 JSON 行格式
func (b *LoggingBuilder) UseJSONFormatter() *LoggingBuilder {
	b.formatter = NewJSONFormatter()
	return b
}

// Build 构建日志记录器
func (b *LoggingBuilder) Build() Logger {
	return &logger{
		mu:        &sync.Mutex{},
		out:       b.out,
		formatter: b.formatter,
		minLevel:  b.minLevel,
		exit:      os.Exit,
	}
}
