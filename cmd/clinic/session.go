package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Sign the doctor in or out of the shell header",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "login EMAIL",
		Short: "Sign in; the name shown is the part of EMAIL before @",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			name, err := a.session.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, Dr. %s\n", name)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in doctor",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			name, err := a.session.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		}),
	})

	return cmd
}
