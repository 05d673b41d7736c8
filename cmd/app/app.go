package app

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/zuozikang/bytedup"
	logs "github.com/zuozikang/bytedup/logurs"
	re "github.com/zuozikang/bytedup/retry"
)

// App 应用
type App struct {
	cfg      *Config             // 配置
	dup      *bytedup.Duplicator // 复制器
	retryCfg *re.RetryConfig     // 重试配置
	log      *logrus.Logger      // 日志
}

// NewApp 创建应用
func NewApp(cfg *Config,
	dup *bytedup.Duplicator,
	retryCfg *re.RetryConfig,
) *App {
	if cfg.Log != nil && cfg.Log.File != "" {
		logs.InitLogWithFile(*cfg.Log)
	}
	return &App{
		cfg:      cfg,
		dup:      dup,
		retryCfg: retryCfg,
		log:      logrus.New(),
	}
}

// Run 执行一次复制：读入文件，复制前导内容，写出副本
func (a *App) Run(c *cli.Context) error {
	in := c.String("in")
	out := c.String("out")
	limit := c.Int("limit")

	data, err := os.ReadFile(in)
	if err != nil {
		a.log.Errorf("read %s err: %v", in, err)
		return err
	}

	src := bytedup.FromBytes(data)
	a.log.Infof("duplicating %s: region %d bytes, content %d bytes", in, src.RegionLen(), src.ContentLen())

	// limit为负数时复制整个内容，分配失败按配置重试
	var cp bytedup.OwnedCopy
	if limit >= 0 {
		cp, err = a.dup.DuplicateN(src, limit)
	} else {
		cp, err = a.dup.DuplicateWithRetry(src, a.retryCfg)
	}
	if err != nil {
		a.log.Errorf("duplicate %s err: %v", in, err)
		return fmt.Errorf("duplicate %s: %w", in, err)
	}
	defer cp.Release()

	if err = os.WriteFile(out, cp.Bytes(), 0644); err != nil {
		a.log.Errorf("write %s err: %v", out, err)
		return err
	}

	a.log.Infof("wrote %d bytes to %s", cp.Len(), out)
	a.log.Infof("duplicator stats: %+v", a.dup.Stats())
	return nil
}

// Close 关闭
func (a *App) Close() error {
	a.dup.Close() // 关闭复制器
	a.log.Infof("duplicator closed")
	return nil
}
