// Package cli 实现 awardctl：工作人员在终端查看典礼汇总、审批奖项。
// 与 HTTP 服务共用 Service 层，直接访问内容库。
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"event-awards/config"
	"event-awards/internal/repository"
	"event-awards/internal/service"
	"event-awards/pkg/contentstore"
	applogger "event-awards/pkg/logger"
)

// ServiceFactory 按命令行参数构建 Service，测试中替换为 mock
type ServiceFactory func(configPath string, verbose bool) (*service.Service, error)

// NewRootCmd 创建 awardctl 根命令
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultServiceFactory)
}

func newRootCmd(factory ServiceFactory) *cobra.Command {
	var (
		configPath string
		verbose    bool
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:   "awardctl",
		Short: "awardctl - 颁奖仪表盘命令行工具",
		Long: `awardctl 直接读取内容库，输出典礼汇总、获奖榜单，并支持审批奖项。
连接配置与服务端一致（config.yaml 或 AWARDS_* 环境变量）。`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setNoColor(noColor)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出内容库请求日志")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "禁用彩色输出")

	svc := func() (*service.Service, error) { return factory(configPath, verbose) }

	rootCmd.AddCommand(ceremoniesCmd(svc))
	rootCmd.AddCommand(summaryCmd(svc))
	rootCmd.AddCommand(leaderboardCmd(svc))
	rootCmd.AddCommand(approveCmd(svc))
	rootCmd.AddCommand(statusCmd(svc))

	return rootCmd
}

type serviceFn func() (*service.Service, error)

func defaultServiceFactory(configPath string, verbose bool) (*service.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := applogger.NewCLILogger(verbose)
	if err != nil {
		return nil, err
	}

	store, err := contentstore.New(&cfg.Store, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("awardctl 已就绪", zap.String("endpoint", cfg.Store.Endpoint))

	return service.NewService(repository.NewRepository(store), logger), nil
}
