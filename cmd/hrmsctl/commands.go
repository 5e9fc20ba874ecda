package main

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
	"hrmslite.com/hrms/roster"
	"hrmslite.com/hrms/security"
	"hrmslite.com/hrms/utils"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", s)
	}
	return id, nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := a.service.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), roster.MsgNoRecords)
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tNAME\tEMAIL\tDEPARTMENT\tPRESENT")
			for _, e := range employees {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", e.ID, e.EmployeeID, e.FullName, e.Email, e.Department, e.TotalPresent)
			}
			return w.Flush()
		},
	}
}

func (a *app) createCmd() *cobra.Command {
	var form roster.Form
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return err
			}
			emp, err := a.service.CreateEmployee(cmd.Context(), form.DTO())
			if err != nil {
				return fmt.Errorf("%s: %w", roster.MsgCreateFailed, err)
			}
			if emp == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "created employee %s\n", form.EmployeeID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created employee %d (%s)\n", emp.ID, emp.EmployeeID)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.EmployeeID, "code", "", "employee code")
	cmd.Flags().StringVar(&form.Department, "department", "", "department")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee and its attendance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.service.DeleteEmployee(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s: %w", roster.MsgDeleteFailed, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted employee %d\n", id)
			return nil
		},
	}
}

func (a *app) markCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "mark <id> <Present|Absent>",
		Short: "Record attendance for today or --date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st, ok := status.Parse(args[1])
			if !ok {
				return fmt.Errorf("%w: %q", roster.ErrInvalidStatus, args[1])
			}
			day := common.NewDateOnly(time.Now())
			if date != "" {
				if day, err = common.ParseDateOnly(date); err != nil {
					return err
				}
			}
			err = a.service.RecordAttendance(cmd.Context(), common.AttendanceDTO{EmployeeID: id, Date: day, Status: st})
			if err != nil {
				return fmt.Errorf("%s: %w", roster.MsgAttendanceFailed, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "marked employee %d %s on %s\n", id, st, day)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to record, yyyy-mm-dd (default today)")
	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show an employee's attendance, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			employees, err := a.service.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			emp := utils.Find(employees, func(e common.EmployeeDTO) bool { return e.ID == id })
			if emp == nil {
				return roster.ErrEmployeeNotLoaded
			}
			hist := roster.NewHistory(*emp)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", emp.FullName, emp.EmployeeID)
			if hist.Empty() {
				fmt.Fprintln(out, roster.MsgNoHistory)
				return nil
			}
			for _, r := range hist.Records {
				fmt.Fprintf(out, "%s  %s\n", r.Date, r.Status)
			}
			return nil
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv|s3://bucket/key>",
		Short: "Create employees from a CSV file with a full_name,email,employee_id,department header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			forms, err := roster.ParseEmployeeCSV(f)
			if err != nil {
				return err
			}
			result := roster.Import(cmd.Context(), a.service, forms)
			for _, failure := range result.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "row %d (%s): %v\n", failure.Row, failure.EmployeeID, failure.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), roster.MsgImportSummary+"\n", result.Created, len(result.Failures))
			if len(result.Failures) > 0 {
				return errors.New("import incomplete")
			}
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx|s3://bucket/key>",
		Short: "Write the roster and attendance to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := a.service.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := roster.WriteWorkbook(&buf, employees); err != nil {
				return err
			}
			if err := writeOutput(cmd.Context(), args[0], &buf, xlsxContentType); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d employees to %s\n", len(employees), args[0])
			return nil
		},
	}
}

func secretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Print a new HRMS_SESSION_SECRET value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := security.NewSecret(32)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}
