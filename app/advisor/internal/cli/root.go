package cli

import (
	"fmt"
	"os"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/conf"
	"github.com/iWorld-y/career_advisor/app/advisor/pkg/logger"
)

// options 所有子命令共享的全局参数
type options struct {
	confPath string
	asJSON   bool
	debug    bool
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "advisorctl",
		Short:        "Query colleges, schemes and stream suggestions from the terminal",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.confPath, "conf", "c", "app/advisor/configs/config.yaml", "config path")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print raw JSON instead of a table")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(collegesCmd(opts))
	cmd.AddCommand(schemesCmd(opts))
	cmd.AddCommand(suggestCmd(opts))
	return cmd
}

// loadBootstrap 与服务端一致：.env → ADVISOR_ 环境变量 → 配置文件
func loadBootstrap(path string) (*conf.Bootstrap, error) {
	_ = godotenv.Load()

	c := config.New(config.WithSource(
		env.NewSource("ADVISOR_"),
		file.NewSource(path),
	))
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, fmt.Errorf("scan config: %w", err)
	}
	return &bc, nil
}

// newLogger 日志写到 stderr，保证 --json 输出可直接管道处理
func newLogger(debug bool) (log.Logger, error) {
	level := "warn"
	if debug {
		level = "debug"
	}
	if err := logger.InitLogger(level, ""); err != nil {
		return nil, err
	}
	logger.Log.SetOutput(os.Stderr)
	return log.With(logger.NewKratosLogger(logger.Log), "caller", log.DefaultCaller), nil
}
