package config

import (
	"strings"
	"sync"
)

// segmentCache 缓存路径解析结果，Get 热路径上避免重复 Split
var segmentCache sync.Map // string -> []string

// splitPath 把配置键拆成路径片段，支持 : 和 . 作为分隔符。
func splitPath(path string) []string {
	if v, ok := segmentCache.Load(path); ok {
		return v.([]string)
	}

	parts := strings.Split(strings.ReplaceAll(path, ":", "."), ".")
	segmentCache.Store(path, parts)
	return parts
}
