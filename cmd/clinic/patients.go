package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/frontdesk/clinic/internal/domain/examination"
	"github.com/frontdesk/clinic/internal/domain/patient"
)

const dateLayout = "2006-01-02"

func patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Register and browse patients",
	}
	cmd.AddCommand(patientsListCmd())
	cmd.AddCommand(patientsAddCmd())
	cmd.AddCommand(patientsShowCmd())
	cmd.AddCommand(patientsStatsCmd())
	cmd.AddCommand(patientsExportCmd())
	return cmd
}

func patientsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients one page at a time",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			page, _ := cmd.Flags().GetInt("page")
			term, _ := cmd.Flags().GetString("search")

			patients, err := a.registry.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			dir := patient.NewDirectory(patients, a.cfg.PageSize)
			dir.SetSearchTerm(term)
			dir.SetPage(page)
			renderDirectory(cmd.OutOrStdout(), dir)
			return nil
		}),
	}
	cmd.Flags().Int("page", 1, "Page number (1-indexed)")
	cmd.Flags().String("search", "", "Filter by name, patient id or phone")
	return cmd
}

func renderDirectory(w io.Writer, dir *patient.Directory) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGENDER\tAGE\tPHONE\tREGISTERED\tSTATUS")
	for _, p := range dir.Page() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.FullName(), orDash(string(p.Gender)), ageText(p.Age), p.Phone,
			p.RegistrationDate.Format(dateLayout), p.Status)
	}
	tw.Flush()
	fmt.Fprintf(w, "%s (page %d of %d)\n", dir.Summary(), dir.CurrentPage(), dir.TotalPages())
}

func patientsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new patient",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			in, err := createInputFromFlags(cmd)
			if err != nil {
				return err
			}
			p, err := a.registry.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s has been registered with ID: %s\n", p.FullName(), p.ID)
			return nil
		}),
	}
	cmd.Flags().String("first", "", "First name (required)")
	cmd.Flags().String("last", "", "Last name (required)")
	cmd.Flags().String("phone", "", "Phone number (required)")
	cmd.Flags().String("gender", "", "male, female or other")
	cmd.Flags().String("dob", "", "Date of birth, YYYY-MM-DD")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("emergency-contact", "", "Emergency contact")
	cmd.Flags().String("medical-history", "", "Relevant medical history")
	return cmd
}

func createInputFromFlags(cmd *cobra.Command) (patient.CreateInput, error) {
	str := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	in := patient.CreateInput{
		FirstName:        str("first"),
		LastName:         str("last"),
		Phone:            str("phone"),
		Gender:           patient.Gender(strings.ToLower(str("gender"))),
		Email:            str("email"),
		Address:          str("address"),
		EmergencyContact: str("emergency-contact"),
		MedicalHistory:   str("medical-history"),
	}
	dob, err := parseDate(str("dob"))
	if err != nil {
		return in, err
	}
	in.DateOfBirth = dob
	return in, nil
}

// parseDate reads YYYY-MM-DD as midnight UTC. Empty means unset.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("date of birth must be YYYY-MM-DD: %w", err)
	}
	return &t, nil
}

func patientsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a patient with their examination history",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			if _, err := a.registry.Initialize(ctx); err != nil {
				return err
			}
			p, err := a.registry.FindByID(ctx, args[0])
			if err != nil {
				return err
			}
			exams, err := a.intake.ListByPatient(ctx, p.ID)
			if err != nil {
				return err
			}
			renderPatient(cmd.OutOrStdout(), p, exams)
			return nil
		}),
	}
}

func renderPatient(w io.Writer, p *patient.Patient, exams []examination.Record) {
	fmt.Fprintf(w, "%s (%s) - %s\n", p.FullName(), p.ID, p.Status)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Gender:\t%s\n", orDash(string(p.Gender)))
	fmt.Fprintf(tw, "Age:\t%s\n", ageText(p.Age))
	if p.DateOfBirth != nil {
		fmt.Fprintf(tw, "Date of birth:\t%s\n", p.DateOfBirth.Format(dateLayout))
	}
	fmt.Fprintf(tw, "Phone:\t%s\n", p.Phone)
	fmt.Fprintf(tw, "Email:\t%s\n", orDash(p.Email))
	fmt.Fprintf(tw, "Address:\t%s\n", orDash(p.Address))
	fmt.Fprintf(tw, "Emergency contact:\t%s\n", orDash(p.EmergencyContact))
	fmt.Fprintf(tw, "Medical history:\t%s\n", orDash(p.MedicalHistory))
	fmt.Fprintf(tw, "Registered:\t%s\n", p.RegistrationDate.Format(dateLayout))
	tw.Flush()

	fmt.Fprintf(w, "\nExaminations (%d)\n", len(exams))
	for _, e := range exams {
		counts := e.CategoryCounts()
		fmt.Fprintf(w, "- %s  pain %d/10  %s  [%d intraoral, %d x-ray]\n",
			e.Date.Format("2006-01-02 15:04"), e.PainLevel, orDash(e.ChiefComplaint),
			counts[examination.CategoryIntraoral], counts[examination.CategoryXRay])
	}
}

func patientsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count patients by status",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			patients, err := a.registry.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			counts := patient.CountByStatus(patients)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Total: %d\n", len(patients))
			for _, s := range patient.Statuses {
				fmt.Fprintf(w, "%s: %d\n", s, counts[s])
			}
			return nil
		}),
	}
}

func patientsExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the patient directory to an .xlsx file",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			out, _ := cmd.Flags().GetString("out")
			term, _ := cmd.Flags().GetString("search")

			patients, err := a.registry.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			patients = patient.Search(patients, term)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := patient.ExportXLSX(patients, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d patient(s) to %s\n", len(patients), out)
			return nil
		}),
	}
	cmd.Flags().String("out", "patients.xlsx", "Output file")
	cmd.Flags().String("search", "", "Only export matching patients")
	return cmd
}

func ageText(age *int) string {
	if age == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *age)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
