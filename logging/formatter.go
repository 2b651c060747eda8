package logging

// Formatter 把日志记录格式化为字节行（含换行符）。
type Formatter interface {
	Format(entry Entry) []byte
}
