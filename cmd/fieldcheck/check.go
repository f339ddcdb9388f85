package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/environment"
	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/objpath"
	"github.com/dmitrymomot/fieldcheck/pkg/validate"
)

func newCheckCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a data document against a rules file",
		Long: `Validate every field named in the rules file that is present in the data
document. The whole document is bound as the invocation context, so message
templates can reference sibling fields ($startDate). Field names may be paths
into nested objects (user.email, items[0].sku).

Exit codes: 0 valid, 1 error findings (or warnings with --strict), 2 configuration faults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, cfg)
		},
	}

	cmd.Flags().String("rules", "", "Rules file (YAML or JSON)")
	cmd.Flags().String("data", "", `Data file (YAML or JSON), "-" for stdin`)
	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().Bool("strict", false, "Treat warnings as errors")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runCheck(cmd *cobra.Command, cfg Config) error {
	rulesPath, _ := cmd.Flags().GetString("rules")
	dataPath, _ := cmd.Flags().GetString("data")
	format, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")
	lang, _ := cmd.Flags().GetString("lang")
	translations, _ := cmd.Flags().GetString("translations")

	if format != formatText && format != formatJSON {
		return exitError(exitConfig, "invalid format %q: must be %q or %q", format, formatText, formatJSON)
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return exitError(exitConfig, "%v", err)
	}

	ctx := environment.WithContext(cmd.Context(), environment.Parse(cfg.Env))
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	msgs, err := loadMessages(ctx, translations, lang, log)
	if err != nil {
		return exitError(exitConfig, "%v", err)
	}

	rulesData, err := readInput(cmd.InOrStdin(), rulesPath)
	if err != nil {
		return err
	}
	rules, err := parseRules(rulesData)
	if err != nil {
		return exitError(exitConfig, "rules %s: %v", rulesPath, err)
	}
	log.DebugContext(ctx, "rules loaded", logger.File(rulesPath), logger.Count(len(rules)))

	data, err := readInput(cmd.InOrStdin(), dataPath)
	if err != nil {
		return err
	}
	doc, err := parseDocument(data)
	if err != nil {
		return exitError(exitConfig, "data %s: %v", dataPath, err)
	}

	v := validate.New(validate.WithMessages(msgs), validate.WithLogger(log))
	rep, err := checkDocument(ctx, v, log, doc, rules)
	if err != nil {
		return exitError(exitConfig, "%s", describeFault(err, msgs))
	}

	if err := printReport(cmd.OutOrStdout(), rep, format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if rep.Errors > 0 || (strict && rep.Warnings > 0) {
		return exitError(exitFindings, "validation failed")
	}
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, exitError(exitConfig, "reading stdin: %v", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, exitError(exitConfig, "file not found: %s", path)
		}
		return nil, exitError(exitConfig, "reading %s: %v", path, err)
	}
	return data, nil
}

// fieldReport holds the findings of one field.
type fieldReport struct {
	Field    string            `json:"field"`
	Findings validate.Findings `json:"findings"`
}

type report struct {
	Valid    bool          `json:"valid"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Fields   []fieldReport `json:"fields"`
}

// checkDocument validates each field of rules that is present in doc.
// Absent fields are undefined and produce no findings.
func checkDocument(ctx context.Context, v *validate.Validator, log *slog.Logger, doc map[string]any, rules rulesFile) (report, error) {
	start := time.Now()
	bound := v.Bind(doc)
	rep := report{Fields: []fieldReport{}}

	for _, fr := range rules {
		value, ok := fieldValue(doc, fr.Field)
		if !ok {
			log.DebugContext(ctx, "field absent, skipped", logger.Field(fr.Field))
			continue
		}

		findings, err := bound.Validate(value, fr.Spec)
		if err != nil {
			return report{}, &fieldError{field: fr.Field, err: err}
		}
		if len(findings) == 0 {
			continue
		}

		errs, warns := len(findings.Errors()), len(findings.Warnings())
		rep.Errors += errs
		rep.Warnings += warns
		rep.Fields = append(rep.Fields, fieldReport{Field: fr.Field, Findings: findings})
	}

	rep.Valid = rep.Errors == 0
	log.InfoContext(ctx, "check finished",
		logger.Count(len(rules)),
		slog.Int("errors", rep.Errors),
		slog.Int("warnings", rep.Warnings),
		logger.Duration(time.Since(start)),
	)
	return rep, nil
}

// describeFault renders a configuration fault, translating unknown
// validation functions through the message table.
func describeFault(err error, msgs *i18n.Messages) string {
	var unknown *validate.UnknownValidationError
	var fe *fieldError
	if errors.As(err, &unknown) && errors.As(err, &fe) {
		return fmt.Sprintf("field %q: %s", fe.field, msgs.Format("errors.validation.unknown", "name", unknown.Name))
	}
	return err.Error()
}

// fieldError ties a validation fault to the field being checked.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string { return fmt.Sprintf("field %q: %v", e.field, e.err) }

func (e *fieldError) Unwrap() error { return e.err }

// fieldValue looks name up as a top-level key first, then as a path.
func fieldValue(doc map[string]any, name string) (any, bool) {
	if v, ok := doc[name]; ok {
		return v, true
	}
	return objpath.Lookup(doc, name)
}
