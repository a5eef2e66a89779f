package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strength-check/backend/internal/application/usecase/strength"
	"github.com/strength-check/backend/internal/domain/entity"
	"github.com/strength-check/backend/internal/integration/entrypoint/dto"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// emptyPasswordMessage is shown to the user in place of errEmptyPassword.
const emptyPasswordMessage = "Please enter a password first."

var errEmptyPassword = errors.New("empty password")

type checkOptions struct {
	output string
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Check the strength of a password",
		Long: `Scores a password and lists what it is missing.
When no argument is given the password is read from the first line of stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *checkOptions) error {
	if opts.output != outputText && opts.output != outputJSON {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}
		password = line
	}

	if password == "" {
		return errEmptyPassword
	}

	evaluateUseCase := strength.NewEvaluatePasswordUseCase(nil, nil)
	output, err := evaluateUseCase.Execute(cmd.Context(), strength.EvaluatePasswordInput{
		Password: password,
		Source:   entity.EvaluationSourceCLI,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output == outputJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(dto.ToEvaluationResponse(output))
	}

	_, err = fmt.Fprint(out, renderEvaluation(output))
	return err
}

// readPassword reads the first line of r without its line terminator.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
