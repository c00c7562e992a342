package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"sosio/internal/client"
	"sosio/internal/models"
	"sosio/internal/notify"
	"sosio/internal/session"
)

var errNotSignedIn = errors.New("not signed in, run `sosio login` first")

func (a *app) login(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stderr)
	email := fs.String("email", "", "Member email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password := *passwordFlag
	if *email != "" && password == "" {
		fmt.Fprint(a.stdout, "Password: ")
		var err error
		password, err = readPassword(a.stdin)
		fmt.Fprintln(a.stdout)
		if err != nil && !errors.Is(err, io.EOF) {
			return a.fail(fmt.Errorf("failed to read password: %w", err))
		}
	}

	res, err := a.api.Login(ctx, *email, password)
	if err != nil {
		return a.fail(err)
	}

	if err := a.store.Save(session.SignedIn(res.User, res.Token)); err != nil {
		return a.fail(fmt.Errorf("failed to save session: %w", err))
	}
	a.notify.Notify(res.Message, notify.Success)
	return nil
}

func (a *app) logout() error {
	if err := a.store.Clear(); err != nil {
		return a.fail(err)
	}
	a.notify.Notify("Signed out", notify.Info)
	return nil
}

// member returns the signed-in session and a client carrying its token.
func (a *app) member() (session.Session, *client.Client, error) {
	s := a.store.Load()
	if !s.Authenticated {
		return s, nil, a.fail(errNotSignedIn)
	}
	api := a.api
	if s.Token != "" {
		api = api.WithToken(s.Token)
	}
	return s, api, nil
}

// fetch loads one resource for the signed-in member.
func fetch[T any](ctx context.Context, a *app, path string) (*T, error) {
	s, api, err := a.member()
	if err != nil {
		return nil, err
	}
	res := client.NewResource[T](api, fmt.Sprintf(path, s.User.ID))
	if err := res.Fetch(ctx); err != nil {
		return nil, a.fail(err)
	}
	return res.State().Data, nil
}

func (a *app) whoami(ctx context.Context) error {
	s, api, err := a.member()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%d\n", s.User.ID)
	fmt.Fprintf(w, "Email\t%s\n", s.User.Email)
	fmt.Fprintf(w, "Name\t%s\n", s.User.Fullname)
	fmt.Fprintf(w, "Codename\t%s\n", s.User.Codename)
	fmt.Fprintf(w, "Role\t%s\n", s.User.Role)

	profile, err := api.User(ctx, s.User.ID)
	if err != nil {
		a.notify.Notify(userMessage(err), notify.Warning)
	} else if profile.Balance != nil {
		fmt.Fprintf(w, "Balance\t%s\n", money(*profile.Balance))
	}
	return w.Flush()
}

func (a *app) dashboard(ctx context.Context) error {
	d, err := fetch[models.DashboardSummary](ctx, a, "/api/dashboard/%d")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total balance\t%s\n", money(d.TotalBalance))
	fmt.Fprintf(w, "Active loans\t%d\n", d.ActiveLoans)
	fmt.Fprintf(w, "Investments\t%s\n", money(d.Investments))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Recent transactions")
	return writeTransactions(a.stdout, d.RecentTransactions)
}

func (a *app) loans(ctx context.Context) error {
	v, err := fetch[models.LoansView](ctx, a, "/api/loans/%d")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tPRINCIPAL\tREMAINING\tMONTHLY\tDUE\tSTATUS")
	for _, l := range v.CurrentLoans {
		due := "-"
		if l.DueDate != nil {
			due = l.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", l.Type, money(l.Principal), money(l.Remaining), money(l.MonthlyPayment), due, l.Status)
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t\t\t\n", money(v.TotalBorrowed), money(v.TotalRemaining))
	return w.Flush()
}

func (a *app) investments(ctx context.Context) error {
	v, err := fetch[models.InvestmentsView](ctx, a, "/api/investments/%d")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tAMOUNT\tRETURN")
	for _, inv := range v.Portfolio {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f%%\n", inv.Name, inv.Type, money(inv.Amount), inv.ReturnRate)
	}
	fmt.Fprintf(w, "TOTAL\t\t%s\t\n", money(v.TotalValue))
	return w.Flush()
}

func (a *app) history(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(stderr)
	export := fs.String("export", "", "Write the history workbook to this .xlsx file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *export != "" {
		s, api, err := a.member()
		if err != nil {
			return err
		}
		raw, err := api.ExportHistory(ctx, s.User.ID)
		if err != nil {
			return a.fail(err)
		}
		if err := os.WriteFile(*export, raw, 0o600); err != nil {
			return a.fail(err)
		}
		a.notify.Notify(fmt.Sprintf("History exported to %s", *export), notify.Success)
		return nil
	}

	rows, err := fetch[[]models.Transaction](ctx, a, "/api/history/%d")
	if err != nil {
		return err
	}
	return writeTransactions(a.stdout, *rows)
}

func (a *app) health(ctx context.Context) error {
	ok, err := a.api.Health(ctx)
	if err != nil {
		return a.fail(err)
	}
	if !ok {
		return a.fail(errors.New("server reported unhealthy"))
	}
	a.notify.Notify("Server is healthy", notify.Success)
	return nil
}

func writeTransactions(out io.Writer, rows []models.Transaction) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tSTATUS\tDESCRIPTION")
	for _, t := range rows {
		status := t.Status
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Date.Format("2006-01-02"), t.Type, money(t.Amount), status, t.Description)
	}
	return w.Flush()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
