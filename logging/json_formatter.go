package logging

import (
	"encoding/json"
	"time"
)

// JSONFormatter JSON 行格式，便于日志采集
type JSONFormatter struct{}

// NewJSONFormatter 创建 JSON 格式化器
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format 实现 Formatter 接口。
func (f *JSONFormatter) Format(entry Entry) []byte {
	m := map[string]any{
		"time":    entry.Time.Format(time.RFC3339),
		"level":   entry.Level.String(),
		"message": entry.Message,
	}
	if entry.Category != "" {
		m["category"] = entry.Category
	}
	for _, field := range entry.Fields {
		m[field.Key] = field.Value
	}

	line, err := json.Marshal(m)
	if err != nil {
		// 字段里有不可序列化的值时退化为纯文本
		return []byte(entry.Message + "\n")
	}
	return append(line, '\n')
}
