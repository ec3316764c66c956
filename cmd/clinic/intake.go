package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frontdesk/clinic/internal/domain/examination"
)

// answers is the file format read by "intake run": field values keyed by
// their draft names plus the images to attach on step 3.
type answers struct {
	Fields map[string]interface{} `json:"fields"`
	Images []examination.Image    `json:"images"`
}

func loadAnswers(r io.Reader) (*answers, error) {
	var a answers
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	for name := range a.Fields {
		if examination.StepOf(name) == 0 {
			return nil, fmt.Errorf("%w: %q", examination.ErrUnknownField, name)
		}
	}
	return &a, nil
}

// parseImageFlag reads "category=file".
func parseImageFlag(s string) (examination.Image, error) {
	category, file, ok := strings.Cut(s, "=")
	if !ok || file == "" {
		return examination.Image{}, fmt.Errorf("image must be category=file, got %q", s)
	}
	return examination.Image{File: file, Type: examination.Category(category)}, nil
}

func intakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Run the examination intake workflow",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Walk the three intake steps from an answers file and record the examination",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			patientID, _ := cmd.Flags().GetString("patient")
			file, _ := cmd.Flags().GetString("file")
			imageFlags, _ := cmd.Flags().GetStringArray("image")

			ans := &answers{}
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				ans, err = loadAnswers(f)
				f.Close()
				if err != nil {
					return err
				}
			}
			for _, s := range imageFlags {
				img, err := parseImageFlag(s)
				if err != nil {
					return err
				}
				ans.Images = append(ans.Images, img)
			}

			if _, err := a.registry.Initialize(cmd.Context()); err != nil {
				return err
			}
			rec, err := runIntake(cmd.Context(), a.intake, patientID, ans, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Examination %s recorded for %s at %s\n",
				rec.ID, rec.PatientID, rec.Date.Format("2006-01-02 15:04"))
			return nil
		}),
	}
	runCmd.Flags().String("patient", "", "Patient ID (required)")
	runCmd.Flags().String("file", "", "JSON answers file")
	runCmd.Flags().StringArray("image", nil, "Attach an image as category=file (intraoral or xray); repeatable")
	runCmd.MarkFlagRequired("patient")
	cmd.AddCommand(runCmd)

	return cmd
}

// runIntake drives a workflow step by step, filling each step's fields from
// ans before moving on, and attaching images on the last step. Next on the
// last step commits.
func runIntake(ctx context.Context, engine *examination.Engine, patientID string, ans *answers, out io.Writer) (*examination.Record, error) {
	w, err := engine.Start(patientID)
	if err != nil {
		return nil, err
	}

	for {
		step := w.Step()
		fmt.Fprintf(out, "Step %d: %s\n", step, w.StepTitle())

		for _, name := range examination.StepFields(step) {
			v, ok := ans.Fields[name]
			if !ok {
				continue
			}
			if err := w.SetField(name, v); err != nil {
				return nil, err
			}
		}
		if step == examination.LastStep {
			for _, img := range ans.Images {
				if err := w.AttachImage(img.File, img.Type); err != nil {
					return nil, err
				}
			}
			counts := w.CategoryCounts()
			fmt.Fprintf(out, "  %d intraoral, %d x-ray image(s) attached\n",
				counts[examination.CategoryIntraoral], counts[examination.CategoryXRay])
		}

		rec, err := w.Next(ctx)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}
}
