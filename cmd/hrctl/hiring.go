package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
)

func hireCmd() *cobra.Command {
	var req hrv1.HireCandidateRequest
	cmd := &cobra.Command{
		Use:   "hire <candidate-id>",
		Short: "Hire a candidate: create the employee, the initial salary and mark the candidate Hired",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req.CandidateID = id
			req.Position = changedString(cmd, "position")
			req.Bonus = changedFloat(cmd, "bonus")
			req.EffectiveDate = changedString(cmd, "effective-date")
			req.Notes = changedString(cmd, "notes")
			req.DateOfBirth = changedString(cmd, "date-of-birth")
			req.Address = changedString(cmd, "address")
			req.EmergencyContact = changedString(cmd, "emergency-contact")
			req.EmergencyContactPhone = changedString(cmd, "emergency-contact-phone")

			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewHiringServiceClient(conn).HireCandidate(ctx, &req)
				if err != nil {
					return describeHireFailure(cmd.ErrOrStderr(), err)
				}
				return render(cmd, resp, func(w io.Writer) {
					hireResultTable(w, resp)
				})
			})
		},
	}
	cmd.Flags().Float64Var(&req.BaseAmount, "base", 0, "initial base amount")
	cmd.Flags().StringVar(&req.PaymentFrequency, "frequency", "Monthly", "Monthly, Bi-Weekly or Weekly")
	cmd.Flags().Float64("bonus", 0, "initial bonus")
	cmd.Flags().String("position", "", "job title (default: applied position)")
	cmd.Flags().String("effective-date", "", "salary effective date (YYYY-MM-DD, default today)")
	cmd.Flags().String("notes", "", "note appended to the salary record")
	cmd.Flags().String("date-of-birth", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().String("address", "", "postal address")
	cmd.Flags().String("emergency-contact", "", "emergency contact name")
	cmd.Flags().String("emergency-contact-phone", "", "emergency contact phone")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func hireResultTable(w io.Writer, resp *hrv1.HireCandidateResponse) {
	tw := newTable(w, table.Row{"Field", "Value"})
	tw.AppendRow(table.Row{"Workflow", resp.WorkflowID})
	tw.AppendRow(table.Row{"Outcome", resp.Outcome})
	if resp.Employee != nil {
		tw.AppendRow(table.Row{"Employee", fmt.Sprintf("%d %s <%s>", resp.Employee.ID, resp.Employee.Name, resp.Employee.Email)})
	}
	if resp.Salary != nil {
		tw.AppendRow(table.Row{"Salary", fmt.Sprintf("%d gross %s net %s (%s)",
			resp.Salary.ID, money(resp.Salary.GrossAmount), money(resp.Salary.NetAmount), resp.Salary.PaymentFrequency)})
	}
	if resp.Candidate != nil {
		tw.AppendRow(table.Row{"Candidate", fmt.Sprintf("%d %s", resp.Candidate.ID, resp.Candidate.Status)})
	}
	if resp.StatusError != "" {
		tw.AppendRow(table.Row{"Status error", resp.StatusError})
	}
	tw.Render()
}

// describeHireFailure は部分失敗の詳細を表示してから元のエラーを返します。
func describeHireFailure(w io.Writer, err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Aborted {
		return err
	}
	for _, detail := range st.Details() {
		s, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := s.AsMap()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tw := newTable(w, table.Row{"Partial failure", ""})
		for _, k := range keys {
			tw.AppendRow(table.Row{k, fields[k]})
		}
		tw.Render()
	}
	return err
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show head-count, payroll and hiring summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewDashboardServiceClient(conn).GetSummary(ctx, &hrv1.Empty{})
				if err != nil {
					return err
				}
				return render(cmd, resp, func(w io.Writer) {
					dashboardTables(w, resp)
				})
			})
		},
	}
}

func dashboardTables(w io.Writer, s *hrv1.DashboardSummary) {
	totals := newTable(w, table.Row{"Metric", "Value"})
	totals.SetTitle("Summary")
	totals.AppendRows([]table.Row{
		{"Employees", s.TotalEmployees},
		{"Departments", s.TotalDepartments},
		{"Candidates", s.TotalCandidates},
		{"Active candidates", s.ActiveCandidates},
		{"Total payroll", money(s.TotalPayroll)},
		{"Average salary", money(s.AverageSalary)},
	})
	totals.Render()

	departments := newTable(w, table.Row{"Department", "Head-count", "Budget"})
	departments.SetTitle("Departments")
	for _, d := range s.DepartmentStats {
		departments.AppendRow(table.Row{d.Name, d.Count, money(d.Budget)})
	}
	departments.Render()

	if len(s.RecentHires) > 0 {
		hires := newTable(w, table.Row{"Employee", "Position", "Hired"})
		hires.SetTitle("Recent hires")
		for _, e := range s.RecentHires {
			hires.AppendRow(table.Row{e.Name, deref(e.Position), e.HireDate})
		}
		hires.Render()
	}

	if len(s.UpcomingAnniversaries) > 0 {
		anniversaries := newTable(w, table.Row{"Employee", "Date", "Days"})
		anniversaries.SetTitle("Upcoming anniversaries")
		for _, a := range s.UpcomingAnniversaries {
			name := ""
			if a.Employee != nil {
				name = a.Employee.Name
			}
			anniversaries.AppendRow(table.Row{name, a.Date, a.DaysUntil})
		}
		anniversaries.Render()
	}

	statuses := newTable(w, table.Row{"Candidate status", "Count"})
	for _, c := range s.CandidateStatus {
		statuses.AppendRow(table.Row{c.Status, c.Count})
	}
	statuses.Render()
}
