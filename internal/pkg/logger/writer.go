package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

type LogWriter struct {
	zapcore.WriteSyncer
}

func (l *LogWriter) Printf(format string, args ...interface{}) {
	_, _ = l.WriteSyncer.Write([]byte(fmt.Sprintf(format, args...)))
	_, _ = l.WriteSyncer.Write([]byte("\n"))
	_ = l.WriteSyncer.Sync()
}

// GetWriter 获取日志写入器
// 日志未初始化时退回stdout
func GetWriter() *LogWriter {
	if logWriter == nil {
		return &LogWriter{zapcore.AddSync(os.Stdout)}
	}
	return logWriter
}
