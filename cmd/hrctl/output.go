package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render は --json 指定時は JSON を、それ以外は table を出力します。
func render(cmd *cobra.Command, v any, draw func(io.Writer)) error {
	if viper.GetBool("json") {
		return printJSON(cmd.OutOrStdout(), v)
	}
	draw(cmd.OutOrStdout())
	return nil
}

func newTable(w io.Writer, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(header)
	// フッターにはページトークンを載せるので大文字化しない
	tw.Style().Format.Footer = text.FormatDefault
	return tw
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func deref[T any](p *T) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}

func departmentTable(w io.Writer, departments []*hrv1.Department, nextPageToken string) {
	tw := newTable(w, table.Row{"ID", "Name", "Location", "Budget", "Manager"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 4, Align: text.AlignRight}})
	for _, d := range departments {
		manager := d.ManagerName
		if manager == "" {
			manager = deref(d.ManagerID)
		}
		tw.AppendRow(table.Row{d.ID, d.Name, d.Location, money(d.Budget), manager})
	}
	appendPageFooter(tw, nextPageToken)
	tw.Render()
}

func employeeTable(w io.Writer, employees []*hrv1.Employee, nextPageToken string) {
	tw := newTable(w, table.Row{"ID", "Name", "Email", "Department", "Position", "Type", "Status", "Hired"})
	for _, e := range employees {
		tw.AppendRow(table.Row{e.ID, e.Name, e.Email, e.DepartmentID, deref(e.Position), e.EmploymentType, e.Status, e.HireDate})
	}
	appendPageFooter(tw, nextPageToken)
	tw.Render()
}

func candidateTable(w io.Writer, candidates []*hrv1.Candidate, nextPageToken string) {
	tw := newTable(w, table.Row{"ID", "Name", "Email", "Position", "Department", "Status", "Applied"})
	for _, c := range candidates {
		tw.AppendRow(table.Row{c.ID, c.Name, c.Email, c.AppliedPosition, deref(c.AppliedDepartmentID), c.Status, c.ApplicationDate.Format("2006-01-02")})
	}
	appendPageFooter(tw, nextPageToken)
	tw.Render()
}

func salaryTable(w io.Writer, salaries []*hrv1.Salary, nextPageToken string) {
	tw := newTable(w, table.Row{"ID", "Employee", "Base", "Bonus", "Gross", "Tax", "Net", "Frequency", "Effective", "Previous", "Adjustment"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	for _, s := range salaries {
		tw.AppendRow(table.Row{
			s.ID, s.EmployeeID, money(s.BaseAmount), money(s.Bonus), money(s.GrossAmount),
			money(s.TaxDeductions), money(s.NetAmount), s.PaymentFrequency, s.EffectiveDate,
			deref(s.PreviousSalaryID), s.AdjustmentType,
		})
	}
	appendPageFooter(tw, nextPageToken)
	tw.Render()
}

func appendPageFooter(tw table.Writer, nextPageToken string) {
	if nextPageToken != "" {
		tw.AppendFooter(table.Row{"next page", nextPageToken})
	}
}

// 以下はフラグが明示された場合のみポインタを返すヘルパーです。

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedInt64(cmd *cobra.Command, name string) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt64(name)
	return &v
}

func changedFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
