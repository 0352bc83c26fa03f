package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Artexxx/HR-Console/internal/currency"
	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/pages"
	"github.com/Artexxx/HR-Console/internal/table"
)

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func printEmployees(out io.Writer, view table.View) {
	if view.Empty {
		fmt.Fprintln(out, table.EmptyText)
		return
	}

	tw := newTabWriter(out)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPOSITION\tDEPARTMENT\tSALARY\tSTATUS")
	for _, r := range view.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Email, r.Position, r.Department, r.Salary, r.Status)
	}
	_ = tw.Flush()
}

func printEmployee(out io.Writer, e dto.Employee) {
	status := "Inactive"
	if e.IsActive {
		status = "Active"
	}

	tw := newTabWriter(out)
	fmt.Fprintf(tw, "ID:\t%d\n", e.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", e.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", e.Email)
	fmt.Fprintf(tw, "Position:\t%s\n", e.Position)
	fmt.Fprintf(tw, "Department:\t%s\n", e.Department)
	fmt.Fprintf(tw, "Salary:\t%s\n", currency.USD(e.Salary))
	fmt.Fprintf(tw, "Status:\t%s\n", status)
	if e.CreatedAt != "" {
		fmt.Fprintf(tw, "Created:\t%s\n", e.CreatedAt)
	}
	if e.UpdatedAt != "" {
		fmt.Fprintf(tw, "Updated:\t%s\n", e.UpdatedAt)
	}
	_ = tw.Flush()
}

func printDashboard(out io.Writer, v pages.DashboardView) {
	tw := newTabWriter(out)
	for _, c := range v.Cards {
		fmt.Fprintf(tw, "%s:\t%s\n", c.Title, c.Value)
	}
	_ = tw.Flush()

	fmt.Fprintln(out, "\nDepartment Breakdown")
	if v.NoDepartments() {
		fmt.Fprintln(out, pages.NoDepartmentsText)
	} else {
		tw = newTabWriter(out)
		fmt.Fprintln(tw, "DEPARTMENT\tEMPLOYEES\tAVG SALARY")
		for _, d := range v.Departments {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Name, d.Count, d.AvgSalary)
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(out, "\nQuick Stats")
	tw = newTabWriter(out)
	fmt.Fprintf(tw, "Total Payroll:\t%s\n", v.TotalPayroll)
	fmt.Fprintf(tw, "Active Rate:\t%s\n", v.ActiveRate)
	_ = tw.Flush()
}

func printActivity(out io.Writer, events []dto.ActivityEvent) {
	if len(events) == 0 {
		fmt.Fprintln(out, "No activity recorded yet")
		return
	}

	tw := newTabWriter(out)
	fmt.Fprintln(tw, "RECEIVED\tKIND\tEMPLOYEE\tPARTITION/OFFSET\tMESSAGE ID")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d/%d\t%s\n", e.ReceivedAt, e.Kind, e.EmployeeID, e.Partition, e.Offset, e.MessageID)
	}
	_ = tw.Flush()
}

func printDLQ(out io.Writer, entries []dto.ActivityDLQ) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "Dead-letter queue is empty")
		return
	}

	tw := newTabWriter(out)
	fmt.Fprintln(tw, "RECEIVED\tTOPIC\tKEY\tERROR")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ReceivedAt, e.Topic, e.Key, e.Error)
	}
	_ = tw.Flush()
}
