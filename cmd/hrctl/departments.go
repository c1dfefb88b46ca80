package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
)

func departmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "dept"},
		Short:   "Manage departments",
	}
	cmd.AddCommand(departmentListCmd(), departmentGetCmd(), departmentCreateCmd(), departmentUpdateCmd(), departmentDeleteCmd())
	return cmd
}

func departmentListCmd() *cobra.Command {
	var (
		pageSize     int32
		pageToken    string
		withManagers bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewDepartmentServiceClient(conn).ListDepartments(ctx, &hrv1.ListDepartmentsRequest{
					PageSize:     pageSize,
					PageToken:    pageToken,
					WithManagers: withManagers,
				})
				if err != nil {
					return err
				}
				return render(cmd, resp, func(w io.Writer) {
					departmentTable(w, resp.Departments, resp.NextPageToken)
				})
			})
		},
	}
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "page size")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "page token")
	cmd.Flags().BoolVar(&withManagers, "with-managers", true, "resolve manager names")
	return cmd
}

func departmentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewDepartmentServiceClient(conn).GetDepartment(ctx, &hrv1.IDRequest{ID: id})
				if err != nil {
					return err
				}
				return renderDepartment(cmd, resp)
			})
		},
	}
}

func departmentCreateCmd() *cobra.Command {
	var name, location string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &hrv1.CreateDepartmentRequest{
				Name:        name,
				Location:    location,
				Budget:      changedFloat(cmd, "budget"),
				ManagerID:   changedInt64(cmd, "manager-id"),
				Description: changedString(cmd, "description"),
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewDepartmentServiceClient(conn).CreateDepartment(ctx, req)
				if err != nil {
					return err
				}
				return renderDepartment(cmd, resp)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "department name")
	cmd.Flags().StringVar(&location, "location", "", "location")
	cmd.Flags().Float64("budget", 0, "annual budget")
	cmd.Flags().Int64("manager-id", 0, "manager employee id")
	cmd.Flags().String("description", "", "description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func departmentUpdateCmd() *cobra.Command {
	var clearManager bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &hrv1.UpdateDepartmentRequest{
				ID:           id,
				Name:         changedString(cmd, "name"),
				Location:     changedString(cmd, "location"),
				Budget:       changedFloat(cmd, "budget"),
				ManagerID:    changedInt64(cmd, "manager-id"),
				ClearManager: clearManager,
				Description:  changedString(cmd, "description"),
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewDepartmentServiceClient(conn).UpdateDepartment(ctx, req)
				if err != nil {
					return err
				}
				return renderDepartment(cmd, resp)
			})
		},
	}
	cmd.Flags().String("name", "", "department name")
	cmd.Flags().String("location", "", "location")
	cmd.Flags().Float64("budget", 0, "annual budget")
	cmd.Flags().Int64("manager-id", 0, "manager employee id")
	cmd.Flags().BoolVar(&clearManager, "clear-manager", false, "remove the manager")
	cmd.Flags().String("description", "", "description")
	cmd.MarkFlagsMutuallyExclusive("manager-id", "clear-manager")
	return cmd
}

func departmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				if _, err := hrv1.NewDepartmentServiceClient(conn).DeleteDepartment(ctx, &hrv1.IDRequest{ID: id}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted department %d\n", id)
				return nil
			})
		},
	}
}

func renderDepartment(cmd *cobra.Command, resp *hrv1.DepartmentResponse) error {
	return render(cmd, resp, func(w io.Writer) {
		departmentTable(w, []*hrv1.Department{resp.Department}, "")
	})
}
