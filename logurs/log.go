package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig 日志文件切割配置
type FileConfig struct {
	File       string `toml:"file"`        // 日志文件路径，空表示只输出到stdout
	MaxSize    int    `toml:"max_size"`    // 单文件最大MB
	MaxBackups int    `toml:"max_backups"` // 保留个数
	MaxAge     int    `toml:"max_age"`     // 保留天数
}

// InitLog 初始化日志
func InitLog() {
	initFormatter()
	logrus.Infof("log init finish.......")
}

// InitLogWithFile 初始化日志并同时输出到切割文件
func InitLogWithFile(c FileConfig) {
	initFormatter()
	if c.File != "" {
		writer := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   false,
		}
		logrus.SetOutput(io.MultiWriter(os.Stdout, writer))
	}
	logrus.Infof("log init finish.......")
}

func initFormatter() {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
		CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
			filename := path.Base(f.File)
			return "", fmt.Sprintf("%s:%d", filename, f.Line)
		},
	})
}
