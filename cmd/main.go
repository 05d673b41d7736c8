package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/zuozikang/bytedup/cmd/app"
	logs "github.com/zuozikang/bytedup/logurs"
)

func main() {
	logs.InitLog() // 初始化日志
	appCmd := &cli.App{
		Name:  "bytedup",
		Usage: "duplicate the leading content of a file into an independently owned copy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "in",
				Value: "input.txt",
				Usage: "输入文件",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "output.txt",
				Usage: "输出文件",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: -1,
				Usage: "最多复制的字节数，负数表示不限",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: "./config/bytedup.conf",
				Usage: "配置文件",
			},
		},
		Action: run,
	}
	err := appCmd.Run(os.Args)
	if err != nil {
		panic(err)
	}
}

// run 执行一次复制
func run(c *cli.Context) error {
	dupApp, err := app.InitializeApp(c.String("config"))
	if err != nil {
		return err
	}
	// 关闭资源
	defer func() {
		if closeErr := dupApp.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	return dupApp.Run(c)
}
