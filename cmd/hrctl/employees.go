package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
)

func employeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Manage employees",
	}
	cmd.AddCommand(
		employeeListCmd(),
		employeeGetCmd(),
		employeeCreateCmd(),
		employeeUpdateCmd(),
		employeeStatusCmd("terminate", "Terminate an employee"),
		employeeStatusCmd("reactivate", "Reactivate a terminated employee"),
		employeeDeleteCmd(),
	)
	return cmd
}

func employeeListCmd() *cobra.Command {
	var req hrv1.ListEmployeesRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.DepartmentID = changedInt64(cmd, "department-id")
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewEmployeeServiceClient(conn).ListEmployees(ctx, &req)
				if err != nil {
					return err
				}
				return render(cmd, resp, func(w io.Writer) {
					employeeTable(w, resp.Employees, resp.NextPageToken)
				})
			})
		},
	}
	cmd.Flags().Int64("department-id", 0, "department filter")
	cmd.Flags().StringVar(&req.Status, "status", "", "status filter (Active, On-Leave, Terminated)")
	cmd.Flags().StringVar(&req.Search, "search", "", "name, email or position contains")
	cmd.Flags().Int32Var(&req.PageSize, "page-size", 0, "page size")
	cmd.Flags().StringVar(&req.PageToken, "page-token", "", "page token")
	return cmd
}

func employeeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewEmployeeServiceClient(conn).GetEmployee(ctx, &hrv1.IDRequest{ID: id})
				if err != nil {
					return err
				}
				return renderEmployee(cmd, resp)
			})
		},
	}
}

func employeeCreateCmd() *cobra.Command {
	var req hrv1.CreateEmployeeRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PhoneNumber = changedString(cmd, "phone")
			req.Address = changedString(cmd, "address")
			req.DateOfBirth = changedString(cmd, "date-of-birth")
			req.Position = changedString(cmd, "position")
			req.HireDate = changedString(cmd, "hire-date")
			req.EmergencyContact = changedString(cmd, "emergency-contact")
			req.EmergencyContactPhone = changedString(cmd, "emergency-contact-phone")
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewEmployeeServiceClient(conn).CreateEmployee(ctx, &req)
				if err != nil {
					return err
				}
				return renderEmployee(cmd, resp)
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().Int64Var(&req.DepartmentID, "department-id", 0, "department id")
	cmd.Flags().StringVar(&req.EmploymentType, "employment-type", "", "Full-Time, Part-Time or Contract")
	cmd.Flags().StringVar(&req.Status, "status", "", "Active, On-Leave or Terminated")
	addEmployeeDetailFlags(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("department-id")
	return cmd
}

func employeeUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee (pass an empty date to clear it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &hrv1.UpdateEmployeeRequest{
				ID:                    id,
				Name:                  changedString(cmd, "name"),
				Email:                 changedString(cmd, "email"),
				DepartmentID:          changedInt64(cmd, "department-id"),
				PhoneNumber:           changedString(cmd, "phone"),
				Address:               changedString(cmd, "address"),
				DateOfBirth:           changedString(cmd, "date-of-birth"),
				Position:              changedString(cmd, "position"),
				HireDate:              changedString(cmd, "hire-date"),
				EmergencyContact:      changedString(cmd, "emergency-contact"),
				EmergencyContactPhone: changedString(cmd, "emergency-contact-phone"),
				EmploymentType:        changedString(cmd, "employment-type"),
				Status:                changedString(cmd, "status"),
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewEmployeeServiceClient(conn).UpdateEmployee(ctx, req)
				if err != nil {
					return err
				}
				return renderEmployee(cmd, resp)
			})
		},
	}
	cmd.Flags().String("name", "", "full name")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().Int64("department-id", 0, "department id")
	cmd.Flags().String("employment-type", "", "Full-Time, Part-Time or Contract")
	cmd.Flags().String("status", "", "Active, On-Leave or Terminated")
	addEmployeeDetailFlags(cmd)
	return cmd
}

func addEmployeeDetailFlags(cmd *cobra.Command) {
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("address", "", "postal address")
	cmd.Flags().String("date-of-birth", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().String("position", "", "job title")
	cmd.Flags().String("hire-date", "", "hire date (YYYY-MM-DD)")
	cmd.Flags().String("emergency-contact", "", "emergency contact name")
	cmd.Flags().String("emergency-contact-phone", "", "emergency contact phone")
}

func employeeStatusCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				client := hrv1.NewEmployeeServiceClient(conn)
				var resp *hrv1.EmployeeResponse
				if action == "terminate" {
					resp, err = client.TerminateEmployee(ctx, &hrv1.IDRequest{ID: id})
				} else {
					resp, err = client.ReactivateEmployee(ctx, &hrv1.IDRequest{ID: id})
				}
				if err != nil {
					return err
				}
				return renderEmployee(cmd, resp)
			})
		},
	}
}

func employeeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee and their salary history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				if _, err := hrv1.NewEmployeeServiceClient(conn).DeleteEmployee(ctx, &hrv1.IDRequest{ID: id}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted employee %d\n", id)
				return nil
			})
		},
	}
}

func renderEmployee(cmd *cobra.Command, resp *hrv1.EmployeeResponse) error {
	return render(cmd, resp, func(w io.Writer) {
		employeeTable(w, []*hrv1.Employee{resp.Employee}, "")
	})
}
