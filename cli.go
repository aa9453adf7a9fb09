package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"ship_daily_report/report"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "shipreport",
		Short:        "Build ship daily reports as text or Word documents",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(newServeCommand(), newRenderCommand(), newHashPasswordCommand())
	return root
}

// =============================================================================
// SERVE
// =============================================================================

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the report form over HTTP",
		Long:  `Serves the report form, live preview and downloads. Configured through SHIP_REPORT_* environment variables or a .env file.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()
	return runServer(ctx, cfg)
}

// =============================================================================
// RENDER
// =============================================================================

type renderOptions struct {
	file   string
	format string
	out    string
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report from a YAML or JSON form file",
		Long: `Reads a report form (YAML or JSON) and writes the rendered report.
The output name defaults to <Ship>_Daily_Report.<format> in the current
directory; use -o - to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "form file to render")
	cmd.Flags().StringVar(&opts.format, "format", string(report.FormatDOCX), "output format: docx or txt")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output path, or - for stdout")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	form, err := readFormFile(opts.file)
	if err != nil {
		return err
	}
	artifact, err := report.Export(report.Build(form), format)
	if err != nil {
		return err
	}

	switch opts.out {
	case "-":
		_, err = cmd.OutOrStdout().Write(artifact.Data)
		return err
	case "":
		// The ship name is user input; keep the default inside the working directory.
		opts.out = filepath.Base(artifact.Filename)
	}
	if err := os.WriteFile(opts.out, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", filepath.Clean(opts.out))
	return nil
}

// readFormFile decodes a form file. JSON is valid YAML, so one decoder
// serves both.
func readFormFile(path string) (report.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report.Form{}, fmt.Errorf("read form: %w", err)
	}
	var in ReportInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return report.Form{}, fmt.Errorf("parse form %s: %w", path, err)
	}
	if err := in.Validate(); err != nil {
		return report.Form{}, fmt.Errorf("invalid form %s: %v", path, validationFields(err))
	}
	return in.Form()
}

// =============================================================================
// HASH-PASSWORD
// =============================================================================

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash an access password read from stdin",
		Long: `Prints a SHIP_REPORT_ACCESS_PASSWORD_HASH line holding the bcrypt hash of
the password. The value is single-quoted so it can be pasted into .env or a
shell unchanged.`,
		Args:  cobra.NoArgs,
		RunE:  runHashPassword,
	}
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return err
		}
		return errors.New("no password on stdin")
	}
	password := strings.TrimRight(scanner.Text(), "\r")
	if password == "" {
		return errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%sACCESS_PASSWORD_HASH='%s'\n", envPrefix, hash)
	return nil
}
