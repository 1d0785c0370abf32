package logger

// PrefixedLogger tags every message with the name of the component that
// logged it, e.g. "[source/tcp] connected".
type PrefixedLogger struct {
	inner  Logger
	prefix string
	tag    string
}

func NewPrefixedLogger(inner Logger, prefix string) *PrefixedLogger {
	if p, ok := inner.(*PrefixedLogger); ok {
		inner = p.inner
		prefix = p.prefix + "/" + prefix
	}

	return &PrefixedLogger{
		inner:  inner,
		prefix: prefix,
		tag:    "[" + prefix + "] ",
	}
}

func (p *PrefixedLogger) Prefix() string {
	return p.prefix
}

func (p *PrefixedLogger) SetLogLevel(levelStr string) {
	p.inner.SetLogLevel(levelStr)
}

func (p *PrefixedLogger) GetLogLevel() string {
	return p.inner.GetLogLevel()
}

func (p *PrefixedLogger) Trace(msg string, args ...any) {
	p.inner.Trace(p.tag+msg, args...)
}

func (p *PrefixedLogger) Debug(msg string, args ...any) {
	p.inner.Debug(p.tag+msg, args...)
}

func (p *PrefixedLogger) Info(msg string, args ...any) {
	p.inner.Info(p.tag+msg, args...)
}

func (p *PrefixedLogger) Warn(msg string, args ...any) {
	p.inner.Warn(p.tag+msg, args...)
}

func (p *PrefixedLogger) Error(msg string, err error, args ...any) {
	p.inner.Error(p.tag+msg, err, args...)
}

func (p *PrefixedLogger) Fatal(msg string, err error, args ...any) {
	p.inner.Fatal(p.tag+msg, err, args...)
}
