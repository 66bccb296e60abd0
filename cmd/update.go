package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/socralabs/socra/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update socra to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("version")
		checkOnly, _ := cmd.Flags().GetBool("check")

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if checkOnly {
			return runUpdateCheck(ctx, checker)
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: resolveVersion(),
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; install a packaged release first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo socra update", err)
		}
		return err
	},
}

func runUpdateCheck(ctx context.Context, checker *selfupdate.Checker) error {
	current := resolveVersion()
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: current})
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		fmt.Println("Already running the latest version.")
		return nil
	}
	fmt.Printf("Update available: %s -> %s\n", current, result.LatestVersion)
	if result.ReleaseURL != "" {
		fmt.Printf("Release notes: %s\n", result.ReleaseURL)
	}
	fmt.Println("Run 'socra update' to install it.")
	return nil
}

func init() {
	updateCmd.Flags().String("version", "", "Install a specific release tag instead of the latest")
	updateCmd.Flags().Bool("check", false, "Report whether a newer release exists without installing")
}
