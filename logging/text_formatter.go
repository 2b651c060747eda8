package logging

import (
	"bytes"
	"fmt"
)

// TextFormatter 人类可读的文本格式
type TextFormatter struct {
	// TimestampFormat 时间戳格式，默认 "2006-01-02 15:04:05"
	TimestampFormat string
}

// NewTextFormatter 创建文本格式化器
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

// Format 实现 Formatter 接口。
func (f *TextFormatter) Format(entry Entry) []byte {
	var buf bytes.Buffer

	buf.WriteString(entry.Time.Format(f.TimestampFormat))
	buf.WriteString(" [")
	buf.WriteString(entry.Level.String())
	buf.WriteString("]")

	if entry.Category != "" {
		buf.WriteString(" (")
		buf.WriteString(entry.Category)
		buf.WriteString(")")
	}

	buf.WriteString(" ")
	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		fmt.Fprintf(&buf, " %s=%v", field.Key, field.Value)
	}

	buf.WriteByte('\n')
	return buf.Bytes()
}
