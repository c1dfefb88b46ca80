package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
)

func candidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"candidate"},
		Short:   "Manage candidates",
	}
	cmd.AddCommand(candidateListCmd(), candidateGetCmd(), candidateCreateCmd(), candidateUpdateCmd(), candidateStatusCmd(), candidateDeleteCmd())
	return cmd
}

func candidateListCmd() *cobra.Command {
	var req hrv1.ListCandidatesRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.DepartmentID = changedInt64(cmd, "department-id")
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewCandidateServiceClient(conn).ListCandidates(ctx, &req)
				if err != nil {
					return err
				}
				return render(cmd, resp, func(w io.Writer) {
					candidateTable(w, resp.Candidates, resp.NextPageToken)
				})
			})
		},
	}
	cmd.Flags().Int64("department-id", 0, "applied department filter")
	cmd.Flags().StringVar(&req.Status, "status", "", "status filter (Applied, Interviewed, Hired, Rejected)")
	cmd.Flags().StringVar(&req.Search, "search", "", "name, position or email contains")
	cmd.Flags().Int32Var(&req.PageSize, "page-size", 0, "page size")
	cmd.Flags().StringVar(&req.PageToken, "page-token", "", "page token")
	return cmd
}

func candidateGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewCandidateServiceClient(conn).GetCandidate(ctx, &hrv1.IDRequest{ID: id})
				if err != nil {
					return err
				}
				return renderCandidate(cmd, resp)
			})
		},
	}
}

func candidateCreateCmd() *cobra.Command {
	var req hrv1.CreateCandidateRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a candidate",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.AppliedDepartmentID = changedInt64(cmd, "department-id")
			req.Resume = changedString(cmd, "resume")
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewCandidateServiceClient(conn).CreateCandidate(ctx, &req)
				if err != nil {
					return err
				}
				return renderCandidate(cmd, resp)
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.AppliedPosition, "position", "", "applied position")
	cmd.Flags().Int64("department-id", 0, "applied department id")
	cmd.Flags().String("resume", "", "resume URL")
	cmd.Flags().StringVar(&req.Status, "status", "", "initial status (default Applied)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("position")
	return cmd
}

func candidateUpdateCmd() *cobra.Command {
	var clearDepartment bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update candidate details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &hrv1.UpdateCandidateRequest{
				ID:                     id,
				Name:                   changedString(cmd, "name"),
				Email:                  changedString(cmd, "email"),
				Phone:                  changedString(cmd, "phone"),
				AppliedPosition:        changedString(cmd, "position"),
				AppliedDepartmentID:    changedInt64(cmd, "department-id"),
				ClearAppliedDepartment: clearDepartment,
				Resume:                 changedString(cmd, "resume"),
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewCandidateServiceClient(conn).UpdateCandidate(ctx, req)
				if err != nil {
					return err
				}
				return renderCandidate(cmd, resp)
			})
		},
	}
	cmd.Flags().String("name", "", "full name")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("position", "", "applied position")
	cmd.Flags().Int64("department-id", 0, "applied department id")
	cmd.Flags().BoolVar(&clearDepartment, "clear-department", false, "remove the applied department")
	cmd.Flags().String("resume", "", "resume URL")
	cmd.MarkFlagsMutuallyExclusive("department-id", "clear-department")
	return cmd
}

func candidateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <Applied|Interviewed|Hired|Rejected>",
		Short: "Move a candidate to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := hrv1.NewCandidateServiceClient(conn).UpdateCandidateStatus(ctx, &hrv1.UpdateCandidateStatusRequest{ID: id, Status: args[1]})
				if err != nil {
					return err
				}
				return renderCandidate(cmd, resp)
			})
		},
	}
}

func candidateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withConn(cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				if _, err := hrv1.NewCandidateServiceClient(conn).DeleteCandidate(ctx, &hrv1.IDRequest{ID: id}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted candidate %d\n", id)
				return nil
			})
		},
	}
}

func renderCandidate(cmd *cobra.Command, resp *hrv1.CandidateResponse) error {
	return render(cmd, resp, func(w io.Writer) {
		candidateTable(w, []*hrv1.Candidate{resp.Candidate}, "")
	})
}
