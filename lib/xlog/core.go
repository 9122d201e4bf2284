package xlog

import (
	"bytes"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

var encoderMap = map[LogEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
	JSON:      zapcore.NewJSONEncoder,
	PlainText: zapcore.NewConsoleEncoder,
}

func getEncoderByType(typ LogEncoderType) func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	enc, ok := encoderMap[typ]
	if !ok {
		return zapcore.NewJSONEncoder
	}
	return enc
}

var _ zapcore.WriteSyncer = (*MemWriter)(nil)

// MemWriter is a concurrency safe in-memory log sink.
type MemWriter struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (w *MemWriter) Write(p []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buf.Write(p)
}

func (w *MemWriter) Sync() error { return nil }

func (w *MemWriter) String() string {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buf.String()
}

// Lines returns the written log lines without the trailing empty one.
func (w *MemWriter) Lines() []string {
	out := strings.TrimRight(w.String(), "\n")
	if len(out) == 0 {
		return nil
	}
	return strings.Split(out, "\n")
}

func (w *MemWriter) Reset() {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.buf.Reset()
}

// xLogCore keeps the parts needed to rebuild the zap core with another
// encoder config, child loggers share the writer and level enabler.
type xLogCore struct {
	lvlEnabler zapcore.LevelEnabler
	lvlEnc     zapcore.LevelEncoder
	tsEnc      zapcore.TimeEncoder
	ws         zapcore.WriteSyncer
	enc        func(cfg zapcore.EncoderConfig) zapcore.Encoder
}

func newXLogCore(
	lvlEnabler zapcore.LevelEnabler,
	encoder LogEncoderType,
	ws zapcore.WriteSyncer,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) *xLogCore {
	if ws == nil {
		ws = zapcore.Lock(os.Stdout)
	}
	return &xLogCore{
		lvlEnabler: lvlEnabler,
		lvlEnc:     lvlEnc,
		tsEnc:      tsEnc,
		ws:         ws,
		enc:        getEncoderByType(encoder),
	}
}

func (cc *xLogCore) build(cfg zapcore.EncoderConfig) zapcore.Core {
	cfg.EncodeLevel = cc.lvlEnc
	cfg.EncodeTime = cc.tsEnc
	return zapcore.NewCore(cc.enc(cfg), cc.ws, cc.lvlEnabler)
}

func consoleCoreEncoderCfg() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		TimeKey:       "ts",
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
}

// Component loggers drop caller and function.
func componentCoreEncoderCfg() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		TimeKey:       "ts",
		CallerKey:     coreKeyIgnored,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   coreKeyIgnored,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
}
