package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Artexxx/HR-Console/internal/config"
	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/form"
	"github.com/Artexxx/HR-Console/internal/hooks"
	"github.com/Artexxx/HR-Console/internal/notify"
	"github.com/Artexxx/HR-Console/internal/pages"
	"github.com/Artexxx/HR-Console/internal/table"
)

var errNotSaved = errors.New("employee was not saved")

type listFunc func(ctx context.Context, skip, limit int) (dto.EmployeeList, error)

func (f listFunc) List(ctx context.Context, skip, limit int) (dto.EmployeeList, error) {
	return f(ctx, skip, limit)
}

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"emp"},
		Short:   "List and manage employees",
	}

	cmd.AddCommand(newEmployeesListCmd(a))
	cmd.AddCommand(newEmployeesGetCmd(a))
	cmd.AddCommand(newEmployeesCreateCmd(a))
	cmd.AddCommand(newEmployeesUpdateCmd(a))
	cmd.AddCommand(newEmployeesDeleteCmd(a))

	return cmd
}

type listOptions struct {
	Skip       int
	Limit      int
	Department string
	Active     bool
}

func newEmployeesListCmd(a *app) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, closeAPI, err := a.employeesAPI(nil, nil)
			if err != nil {
				return err
			}
			defer closeAPI()

			limit := opts.Limit
			if limit <= 0 {
				limit = a.cfg.Console.Limit()
			}
			if limit > config.MaxPageSize {
				limit = config.MaxPageSize
			}

			lister := hooks.Lister(api)
			switch {
			case opts.Department != "":
				lister = listFunc(func(ctx context.Context, skip, limit int) (dto.EmployeeList, error) {
					return api.ListByDepartment(ctx, opts.Department, skip, limit)
				})
			case opts.Active:
				lister = listFunc(api.ListActive)
			}

			state := hooks.NewEmployees(lister, max(opts.Skip, 0), limit).Mount(cmd.Context())
			if state.Error != "" {
				return errors.New(state.Error)
			}

			out := cmd.OutOrStdout()
			printEmployees(out, table.Render(state.Employees, false))

			if p := pages.NewPagination(max(opts.Skip, 0), limit, state.Total); p.Visible() {
				fmt.Fprintf(out, "\n%s · %s\n", p.Showing(), p.PageText())
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Skip, "skip", 0, "number of employees to skip")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "page size (defaults to console.page_size)")
	cmd.Flags().StringVar(&opts.Department, "department", "", "only this department")
	cmd.Flags().BoolVar(&opts.Active, "active", false, "only active employees")
	cmd.MarkFlagsMutuallyExclusive("department", "active")

	return cmd
}

func newEmployeesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Print one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			api, closeAPI, err := a.employeesAPI(nil, nil)
			if err != nil {
				return err
			}
			defer closeAPI()

			state := hooks.NewEmployee(api, id).Mount(cmd.Context())
			if state.Error != "" {
				return errors.New(state.Error)
			}

			printEmployee(cmd.OutOrStdout(), *state.Employee)

			return nil
		},
	}
}

// employeeFlags maps CLI flags onto form fields in display order.
type employeeFlags struct {
	values map[string]*string
	active bool
}

func bindEmployeeFlags(cmd *cobra.Command) *employeeFlags {
	f := &employeeFlags{values: map[string]*string{}}

	for _, field := range []struct{ name, usage string }{
		{form.FieldName, "full name"},
		{form.FieldEmail, "email address"},
		{form.FieldPosition, "one of: " + strings.Join(form.Positions, ", ")},
		{form.FieldDepartment, "one of: " + strings.Join(form.Departments, ", ")},
		{form.FieldSalary, "positive amount, e.g. 75000.50"},
	} {
		f.values[field.name] = cmd.Flags().String(field.name, "", field.usage)
	}

	cmd.Flags().BoolVar(&f.active, "active", true, "employee is active")

	return f
}

// apply copies flags into the form; with onlyChanged set, untouched flags keep the loaded values.
func (f *employeeFlags) apply(cmd *cobra.Command, ef *form.EmployeeForm, onlyChanged bool) error {
	for _, field := range []string{form.FieldName, form.FieldEmail, form.FieldPosition, form.FieldDepartment, form.FieldSalary} {
		if onlyChanged && !cmd.Flags().Changed(field) {
			continue
		}

		if err := ef.Set(field, *f.values[field]); err != nil {
			return err
		}
	}

	if !onlyChanged || cmd.Flags().Changed("active") {
		return ef.Set(form.FieldIsActive, strconv.FormatBool(f.active))
	}

	return nil
}

func newEmployeesCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new employee",
		Args:  cobra.NoArgs,
	}

	flags := bindEmployeeFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		api, closeAPI, err := a.employeesAPI(nil, nil)
		if err != nil {
			return err
		}
		defer closeAPI()

		ef := form.New(nil, api, writer(cmd), nil)
		if err := flags.apply(cmd, ef, false); err != nil {
			return err
		}

		return submit(cmd, ef)
	}

	return cmd
}

func newEmployeesUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of an existing employee",
		Args:  cobra.ExactArgs(1),
	}

	flags := bindEmployeeFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseEmployeeID(args[0])
		if err != nil {
			return err
		}

		api, closeAPI, err := a.employeesAPI(nil, nil)
		if err != nil {
			return err
		}
		defer closeAPI()

		state := hooks.NewEmployee(api, id).Mount(cmd.Context())
		if state.Error != "" {
			return errors.New(state.Error)
		}

		ef := form.New(state.Employee, api, writer(cmd), nil)
		if err := flags.apply(cmd, ef, true); err != nil {
			return err
		}

		return submit(cmd, ef)
	}

	return cmd
}

func newEmployeesDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Remove an employee after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}

			api, closeAPI, err := a.employeesAPI(nil, nil)
			if err != nil {
				return err
			}
			defer closeAPI()

			confirmer := table.Confirmed
			if !yes {
				confirmer = prompt(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			var declined bool
			confirmer = decline(confirmer, &declined)

			if !table.New(api, confirmer, writer(cmd), nil).Delete(cmd.Context(), id) && !declined {
				return errors.New("employee was not deleted")
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// submit runs the form and reports field errors in a stable order.
func submit(cmd *cobra.Command, ef *form.EmployeeForm) error {
	saved, ok := ef.Submit(cmd.Context())
	if ok {
		fmt.Fprintf(cmd.OutOrStdout(), "id: %d\n", saved.ID)
		return nil
	}

	errs := ef.Errors()
	if len(errs) == 0 {
		return errNotSaved
	}

	msgs := make([]string, 0, len(errs))
	for _, field := range []string{form.FieldName, form.FieldEmail, form.FieldPosition, form.FieldDepartment, form.FieldSalary} {
		if msg, ok := errs[field]; ok {
			msgs = append(msgs, fmt.Sprintf("--%s: %s", field, msg))
		}
	}

	return fmt.Errorf("%w: %s", errNotSaved, strings.Join(msgs, "; "))
}

func writer(cmd *cobra.Command) notify.Writer {
	return notify.Writer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

// prompt asks on out and accepts "y" or "yes" from in.
func prompt(in io.Reader, out io.Writer) table.ConfirmFunc {
	return func(question string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", question)

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}

		return false
	}
}

func decline(c table.Confirmer, declined *bool) table.ConfirmFunc {
	return func(question string) bool {
		ok := c.Confirm(question)
		*declined = !ok

		return ok
	}
}

func parseEmployeeID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", raw)
	}

	return id, nil
}
