package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
)

func salaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "salaries",
		Aliases: []string{"salary"},
		Short:   "Manage salary records",
	}
	cmd.AddCommand(
		salaryListCmd(),
		salaryHistoryCmd(),
		salaryCurrentCmd(),
		salaryGetCmd(),
		salaryCreateCmd(),
		salaryUpdateCmd(),
		salaryAdjustCmd(),
		salaryDeleteCmd(),
	)
	return cmd
}

func salaryListCmd() *cobra.Command {
	var req hrv1.ListSalariesRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List salary records",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.EmployeeID = changedInt64(cmd, "employee-id")
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).ListSalaries(ctx, &req)
				if err != nil {
					return err
				}
				return renderSalaries(cmd, resp)
			})
		},
	}
	cmd.Flags().Int64("employee-id", 0, "employee filter")
	cmd.Flags().StringVar(&req.Search, "search", "", "frequency, adjustment type or notes contains")
	cmd.Flags().Int32Var(&req.PageSize, "page-size", 0, "page size")
	cmd.Flags().StringVar(&req.PageToken, "page-token", "", "page token")
	return cmd
}

func salaryHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <employee-id>",
		Short: "Show every salary record of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).ListSalaryHistory(ctx, &hrv1.EmployeeIDRequest{EmployeeID: id})
				if err != nil {
					return err
				}
				return renderSalaries(cmd, resp)
			})
		},
	}
}

func salaryCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current <employee-id>",
		Short: "Show the salary in effect for an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).GetCurrentSalary(ctx, &hrv1.EmployeeIDRequest{EmployeeID: id})
				if err != nil {
					return err
				}
				return renderSalary(cmd, resp)
			})
		},
	}
}

func salaryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a salary record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).GetSalary(ctx, &hrv1.IDRequest{ID: id})
				if err != nil {
					return err
				}
				return renderSalary(cmd, resp)
			})
		},
	}
}

func salaryCreateCmd() *cobra.Command {
	var req hrv1.CreateSalaryRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a salary record",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Bonus = changedFloat(cmd, "bonus")
			req.EffectiveDate = changedString(cmd, "effective-date")
			req.PreviousSalaryID = changedInt64(cmd, "previous-salary-id")
			req.AdjustmentType = changedString(cmd, "adjustment-type")
			req.Notes = changedString(cmd, "notes")
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).CreateSalary(ctx, &req)
				if err != nil {
					return err
				}
				return renderSalary(cmd, resp)
			})
		},
	}
	cmd.Flags().Int64Var(&req.EmployeeID, "employee-id", 0, "employee id")
	cmd.Flags().Float64Var(&req.BaseAmount, "base", 0, "base amount")
	cmd.Flags().StringVar(&req.PaymentFrequency, "frequency", "Monthly", "Monthly, Bi-Weekly or Weekly")
	cmd.Flags().Float64("bonus", 0, "bonus")
	cmd.Flags().String("effective-date", "", "effective date (YYYY-MM-DD, default today)")
	cmd.Flags().Int64("previous-salary-id", 0, "salary record this one replaces")
	cmd.Flags().String("adjustment-type", "", "raise, bonus, correction, promotion, cost-of-living or performance")
	cmd.Flags().String("notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("employee-id")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func salaryUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a salary record in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &hrv1.UpdateSalaryRequest{
				ID:               id,
				BaseAmount:       changedFloat(cmd, "base"),
				Bonus:            changedFloat(cmd, "bonus"),
				PaymentFrequency: changedString(cmd, "frequency"),
				EffectiveDate:    changedString(cmd, "effective-date"),
				AdjustmentType:   changedString(cmd, "adjustment-type"),
				Notes:            changedString(cmd, "notes"),
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).UpdateSalary(ctx, req)
				if err != nil {
					return err
				}
				return renderSalary(cmd, resp)
			})
		},
	}
	addSalaryChangeFlags(cmd)
	cmd.Flags().String("adjustment-type", "", "adjustment type")
	return cmd
}

func salaryAdjustCmd() *cobra.Command {
	var adjustmentType string
	cmd := &cobra.Command{
		Use:   "adjust <employee-id>",
		Short: "Append a salary record chained to the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &hrv1.AdjustSalaryRequest{
				EmployeeID:       employeeID,
				BaseAmount:       changedFloat(cmd, "base"),
				Bonus:            changedFloat(cmd, "bonus"),
				PaymentFrequency: changedString(cmd, "frequency"),
				EffectiveDate:    changedString(cmd, "effective-date"),
				AdjustmentType:   adjustmentType,
				Notes:            changedString(cmd, "notes"),
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).AdjustSalary(ctx, req)
				if err != nil {
					return err
				}
				return renderSalary(cmd, resp)
			})
		},
	}
	addSalaryChangeFlags(cmd)
	cmd.Flags().StringVar(&adjustmentType, "type", "raise", "adjustment type")
	return cmd
}

func addSalaryChangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("base", 0, "base amount")
	cmd.Flags().Float64("bonus", 0, "bonus")
	cmd.Flags().String("frequency", "", "Monthly, Bi-Weekly or Weekly")
	cmd.Flags().String("effective-date", "", "effective date (YYYY-MM-DD)")
	cmd.Flags().String("notes", "", "free-form notes")
}

func salaryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a salary record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				if _, err := hrv1.NewSalaryServiceClient(conn).DeleteSalary(ctx, &hrv1.IDRequest{ID: id}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted salary %d\n", id)
				return nil
			})
		},
	}
}

func calcCmd() *cobra.Command {
	var req hrv1.CalculateSalaryRequest
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Preview gross, tax and net amounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewSalaryServiceClient(conn).CalculateSalary(ctx, &req)
				if err != nil {
					return err
				}
				return render(cmd, resp, func(w io.Writer) {
					calculationTable(w, &req, resp)
				})
			})
		},
	}
	cmd.Flags().Float64Var(&req.BaseAmount, "base", 0, "base amount")
	cmd.Flags().Float64Var(&req.Bonus, "bonus", 0, "bonus")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func calculationTable(w io.Writer, req *hrv1.CalculateSalaryRequest, resp *hrv1.CalculateSalaryResponse) {
	tw := newTable(w, table.Row{"Item", "Amount"})
	tw.AppendRows([]table.Row{
		{"Base", money(req.BaseAmount)},
		{"Bonus", money(req.Bonus)},
		{"Gross", money(resp.GrossAmount)},
		{fmt.Sprintf("Tax (%.0f%%)", resp.TaxRate*100), money(resp.TaxDeductions)},
		{"Net", money(resp.NetAmount)},
	})
	tw.Render()
}

func renderSalary(cmd *cobra.Command, resp *hrv1.SalaryResponse) error {
	return render(cmd, resp, func(w io.Writer) {
		salaryTable(w, []*hrv1.Salary{resp.Salary}, "")
	})
}

func renderSalaries(cmd *cobra.Command, resp *hrv1.ListSalariesResponse) error {
	return render(cmd, resp, func(w io.Writer) {
		salaryTable(w, resp.Salaries, resp.NextPageToken)
	})
}
