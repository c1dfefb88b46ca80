package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/server"
)

var rootCmd = &cobra.Command{
	Use:   "hrctl",
	Short: "HR records client",
	Long: `hrctl talks to the HR gRPC server.
Departments, employees, candidates and salaries can be listed and edited;
"hire" turns a candidate into an employee with an initial salary and
"calc" previews gross, tax and net amounts without storing anything.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("HRCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("addr", "localhost:50051", "server address")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "per-command deadline")
	rootCmd.PersistentFlags().String("request-id", "", "x-request-id sent with the call")
	_ = viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("request-id", rootCmd.PersistentFlags().Lookup("request-id"))
}

func registerCommands() {
	rootCmd.AddCommand(departmentCmd())
	rootCmd.AddCommand(employeeCmd())
	rootCmd.AddCommand(candidateCmd())
	rootCmd.AddCommand(salaryCmd())
	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(hireCmd())
	rootCmd.AddCommand(dashboardCmd())
}

// withConn はサーバーへの接続とタイムアウト付きコンテキストを用意して fn を実行します。
func withConn(cmd *cobra.Command, fn func(ctx context.Context, conn *grpc.ClientConn) error) error {
	conn, err := grpc.NewClient(viper.GetString("addr"),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("connect %s: %w", viper.GetString("addr"), err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
	defer cancel()
	if id := viper.GetString("request-id"); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, server.RequestIDKey, id)
	}
	return fn(ctx, conn)
}
