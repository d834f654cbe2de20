package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/sfiaprobe-go/pkg/probe/models"
	"github.com/ukaji3/sfiaprobe-go/pkg/probe/parser"
)

// Recommendations are printed when every candidate model failed.
var Recommendations = []string{
	"1. If you still get timeouts, try an even smaller model",
	"2. Make your question more specific",
	"3. Consider processing only specific sheets of the Excel file",
	"4. Check if Ollama is running: ollama serve",
}

const ruleWidth = 50

// Runner executes a probe run and writes its human-readable report.
type Runner struct {
	opts    Options
	invoker Invoker
	out     io.Writer
	logger  *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards diagnostics.
func NewRunner(opts Options, invoker Invoker, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		opts:    opts,
		invoker: invoker,
		out:     out,
		logger:  logger,
	}
}

// Run checks the document folder and probes each candidate model in order,
// stopping at the first success. Probe outcomes are reported through the
// returned Report and the writer; the error is non-nil only for invalid
// options.
func (r *Runner) Run(ctx context.Context) (*models.Report, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}

	folder := r.opts.Folder
	report := &models.Report{Folder: folder}

	files, err := FindSpreadsheets(folder)
	switch {
	case errors.Is(err, ErrFolderNotFound):
		r.logger.Debug("Document folder missing.", "folder", folder, "error", err)
		r.printf("Error: Document folder '%s' not found.\n", folder)
		r.printf("Please ensure the SFIA Excel file is in the %s folder.\n", folder)
		report.Status = models.StatusFolderNotFound
		report.Error = err.Error()
		return report, nil
	case err != nil:
		r.logger.Warn("Failed to read document folder.", "folder", folder, "error", err)
		r.printf("Error: Cannot read document folder '%s': %v\n", folder, err)
		report.Status = models.StatusFolderNotFound
		report.Error = err.Error()
		return report, nil
	case len(files) == 0:
		err := fmt.Errorf("%w in %s", ErrNoSpreadsheet, folder)
		r.logger.Debug("No spreadsheet in folder.", "folder", folder, "error", err)
		r.printf("No Excel files found in %s\n", folder)
		report.Status = models.StatusNoSpreadsheet
		report.Error = err.Error()
		return report, nil
	}

	report.Spreadsheet = files[0]
	r.printf("Testing SFIA with smaller model to avoid timeouts...\n")
	r.printf("Found Excel file: %s\n", report.Spreadsheet)
	if r.opts.Inspect {
		report.Workbook = r.inspect(filepath.Join(folder, report.Spreadsheet))
		if report.Workbook != nil {
			r.printf("Sheets: %s\n", describeSheets(report.Workbook))
		}
	}
	r.printf("\n")

	for _, model := range r.opts.Models {
		attempt := r.probe(ctx, model)
		report.Attempts = append(report.Attempts, attempt)

		if attempt.Succeeded() {
			report.Status = models.StatusSucceeded
			return report, nil
		}
		if ctx.Err() != nil {
			r.logger.Warn("Probe interrupted.", "model", model, "error", ctx.Err())
			report.Status = models.StatusInterrupted
			return report, nil
		}
	}

	report.Status = models.StatusExhausted
	r.printf("\nRecommendations:\n")
	for _, line := range Recommendations {
		r.printf("%s\n", line)
	}
	return report, nil
}

// probe runs one attempt for model and prints its outcome.
func (r *Runner) probe(ctx context.Context, model string) models.Attempt {
	r.printf("Testing with model: %s\n", model)
	r.printf("%s\n", strings.Repeat("-", ruleWidth))

	inv := Invocation{
		Name: r.opts.Command[0],
		Args: r.opts.Args(model),
		Wait: r.opts.Wait,
	}
	r.logger.Debug("Invoking command.", "model", model, "name", inv.Name, "args", inv.Args, "wait", inv.Wait)

	start := time.Now()
	res := r.invoker.Invoke(ctx, inv)
	attempt := models.Attempt{
		Model:    model,
		Outcome:  res.Outcome,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
		Elapsed:  time.Since(start),
	}
	if res.Err != nil {
		attempt.Fault = res.Err.Error()
	}

	switch attempt.Outcome {
	case models.OutcomeSuccess:
		r.printf("SUCCESS!\n")
		r.printf("Output:\n")
		r.printf("%s\n", attempt.Stdout)
	case models.OutcomeFailure:
		r.printf("Failed with model %s:\n", model)
		r.printf("%s\n", attempt.Stderr)
		r.printf("\n")
	case models.OutcomeTimeout:
		r.printf("Timeout with model %s\n", model)
		r.printf("\n")
	default:
		attempt.Outcome = models.OutcomeFault
		r.printf("Error with model %s: %s\n", model, attempt.Fault)
		r.printf("\n")
	}

	r.logger.Info("Probe attempt finished.",
		"model", model,
		"outcome", attempt.Outcome,
		"exit_code", attempt.ExitCode,
		"elapsed", attempt.Elapsed,
		"error", AttemptError(attempt),
	)
	return attempt
}

// inspect summarizes the workbook at path. Failures are logged and yield nil.
func (r *Runner) inspect(path string) *models.WorkbookSummary {
	if !strings.HasSuffix(path, ".xlsx") {
		r.logger.Debug("Skipping workbook summary for non-xlsx file.", "path", path)
		return nil
	}
	summary, err := parser.SummarizeWorkbook(path)
	if err != nil {
		r.logger.Warn("Failed to summarize workbook.", "path", path, "error", err)
		return nil
	}
	return summary
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func describeSheets(wb *models.WorkbookSummary) string {
	parts := make([]string, 0, len(wb.Sheets))
	for _, s := range wb.Sheets {
		parts = append(parts, fmt.Sprintf("%s (%d rows)", s.Name, s.Rows))
	}
	return strings.Join(parts, ", ")
}
