package di

// Token 表示一个接口令牌，用于标识消费方需要的某种能力。
//
// Token 是不透明的：库从不枚举或校验令牌，相等性按值/引用同一性判断。
// 任何可比较的值都可以作为令牌使用（字符串、指针、类型实例等），
// 通常推荐使用 NewToken 创建的指针令牌以避免字符串冲突。
//
// 示例：
//
//	var TokenDB = di.NewToken("database.db")
//	var TokenLogger = di.NewToken("logging.logger")
type Token = any

// namedToken 指针身份令牌，name 仅用于诊断输出
type namedToken struct {
	name string
}

// NewToken 创建一个新的指针身份令牌。
//
// 两次以相同 name 调用返回的令牌互不相等；
// name 只出现在错误信息和 String() 中。
func NewToken(name string) Token {
	return &namedToken{name: name}
}

// Name 返回令牌的名称
func (t *namedToken) Name() string {
	return t.name
}

// String 返回令牌的字符串表示
func (t *namedToken) String() string {
	return "Token(" + t.name + ")"
}
