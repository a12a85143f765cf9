package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formlab/pkg/userform"
)

var ErrAborted = errors.New("prompt aborted")

// inputConfig describes one text prompt. Validator sees the raw answer.
type inputConfig struct {
	Message   string
	Help      string
	Validator func(string) error
}

// prompter asks the questions of the prompt command. The survey
// implementation talks to the terminal; tests script the answers.
type prompter interface {
	Input(ctx context.Context, cfg inputConfig) (string, error)
	Password(ctx context.Context, cfg inputConfig) (string, error)
	Confirm(ctx context.Context, message string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(ctx context.Context, cfg inputConfig) (string, error) {
	return ask(ctx, &survey.Input{Message: cfg.Message, Help: cfg.Help}, cfg.Validator)
}

func (surveyPrompter) Password(ctx context.Context, cfg inputConfig) (string, error) {
	return ask(ctx, &survey.Password{Message: cfg.Message, Help: cfg.Help}, cfg.Validator)
}

func (surveyPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message}, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func ask(ctx context.Context, p survey.Prompt, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	var out string
	if err := survey.AskOne(p, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func newPromptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill in a record interactively and send it to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := promptRecord(cmd.Context(), opts.prompter)
			if err != nil {
				return err
			}
			return opts.submit(cmd.Context(), newPrinter(cmd.OutOrStdout()), rec)
		},
	}
}

// outcomeErr turns a validator into a prompt validator. Text answers are
// trimmed the same way the server trims them.
func outcomeErr(validate func(string) userform.Outcome, trim bool) func(string) error {
	return func(s string) error {
		if trim {
			s = strings.TrimSpace(s)
		}
		if o := validate(s); !o.IsValid() {
			return errors.New(o.Reason())
		}
		return nil
	}
}

// promptRecord asks for every field in form order. Each answer is checked as
// it is typed; terms are judged by the gate on submit, which rejects a
// declined record before anything is sent.
func promptRecord(ctx context.Context, p prompter) (userform.Record, error) {
	rec := userform.NewRecord()

	text := []struct {
		dst *string
		cfg inputConfig
	}{
		{&rec.Name, inputConfig{Message: "Name:", Validator: outcomeErr(userform.ValidateName, true)}},
		{&rec.Email, inputConfig{Message: "Email:", Validator: outcomeErr(userform.ValidateEmail, true)}},
		{&rec.Phone, inputConfig{Message: "Phone:", Help: "Optional. Spaces, dashes, dots and parentheses are ignored.", Validator: outcomeErr(userform.ValidatePhone, true)}},
		{&rec.Age, inputConfig{Message: "Age:", Help: "Between 18 and 100.", Validator: outcomeErr(userform.ValidateAge, true)}},
		{&rec.URL, inputConfig{Message: "Website:", Help: "http, https or ftp URL.", Validator: outcomeErr(userform.ValidateURL, true)}},
	}
	for _, q := range text {
		answer, err := p.Input(ctx, q.cfg)
		if err != nil {
			return userform.Record{}, err
		}
		*q.dst = strings.TrimSpace(answer)
	}

	password, err := p.Password(ctx, inputConfig{
		Message:   "Password:",
		Help:      "8 to 20 characters with upper and lower case letters, a number and a special character.",
		Validator: outcomeErr(userform.ValidatePassword, false),
	})
	if err != nil {
		return userform.Record{}, err
	}
	rec.Password = password

	confirm, err := p.Password(ctx, inputConfig{
		Message:   "Confirm password:",
		Validator: outcomeErr(func(s string) userform.Outcome {
			return userform.ValidateConfirmPassword(password, s)
		}, false),
	})
	if err != nil {
		return userform.Record{}, err
	}
	rec.ConfirmPassword = confirm

	terms, err := p.Confirm(ctx, "Do you agree to the terms and conditions?")
	if err != nil {
		return userform.Record{}, err
	}
	rec.Terms = terms
	return rec, nil
}
