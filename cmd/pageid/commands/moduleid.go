package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/macropower/pageid/pkg/pagepath"
	"github.com/macropower/pageid/pkg/tracing"
)

const (
	moduleIDDesc = `Normalize module ids reported by the bundler.

Query suffixes are removed and ids under the root are converted to
root-relative paths. Ids are read from the arguments and from --file, one
per line ("-" reads standard input). Results keep the input order.
`
	moduleIDExample = `  pageid module-id --root /project '/project/pages/index/+Page.tsx?import&v=3'

  # Keep going after ids that are not filesystem paths
  printf '%s\n' virtual:vike:pageConfigValuesAll /project/renderer/+config.ts |
    pageid module-id --root /project --file - --keep-going -o json
`
)

var ErrModuleIDFailed = errors.New("module id normalization failed")

// ModuleIDResult is the outcome of normalizing one module id.
type ModuleIDResult struct {
	ID       string `json:"id"`
	ModuleID string `json:"moduleId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewModuleIDCmd returns the module-id command.
func NewModuleIDCmd(arg *RootArgs) *cobra.Command {
	args := NewModuleIDArgs(arg)

	cmd := &cobra.Command{
		Use:     "module-id [ID]...",
		Short:   "Normalize bundler module ids",
		Long:    moduleIDDesc,
		Example: moduleIDExample,
		RunE: func(cc *cobra.Command, pArgs []string) error {
			ids := append([]string{}, pArgs...)

			if file := args.GetFile(); file != "" {
				fileIDs, err := readIDs(cc.InOrStdin(), file)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
				}

				ids = append(ids, fileIDs...)
			}

			if len(ids) == 0 {
				return fmt.Errorf("%w: no module ids given", ErrInvalidArgument)
			}

			r, err := newResolver(args.RootArgs)
			if err != nil {
				return err
			}

			span := tracing.NewLoggingTracer(slog.Default()).StartSpan(cc.Context(), "normalize module ids")
			span.SetBaggageItem("ids", len(ids))
			span.SetBaggageItem("concurrency", args.GetConcurrency())

			results, normErr := normalizeModuleIDs(cc.Context(), r, ids, args.GetConcurrency(), args.GetKeepGoing())

			span.Finish()
			if normErr != nil && !args.GetKeepGoing() {
				return fmt.Errorf("%w: %w", ErrModuleIDFailed, normErr)
			}

			out, err := newRenderer(cc, args.RootArgs)
			if err != nil {
				return err
			}

			if err := out.Render(results); err != nil {
				return err
			}

			if normErr != nil {
				return fmt.Errorf("%w: %w", ErrModuleIDFailed, normErr)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(args.file, "file", "f", "", `Read module ids from this file, one per line ("-" for stdin)`)
	must(cmd.MarkFlagFilename("file"))

	cmd.Flags().BoolVar(args.keepGoing, "keep-going", false, "Report every failing id instead of stopping at the first")
	cmd.Flags().IntVarP(args.concurrency, "concurrency", "j", runtime.GOMAXPROCS(0), "Maximum number of ids normalized in parallel")

	return cmd
}

// normalizeModuleIDs normalizes ids in parallel. Results are in input order.
// When keepGoing is set, every failure is collected into a
// [multierror.Error]; otherwise the first failure cancels the rest.
func normalizeModuleIDs(
	ctx context.Context, r *pagepath.Resolver, ids []string, concurrency int, keepGoing bool,
) ([]ModuleIDResult, error) {
	results := make([]ModuleIDResult, len(ids))
	errs := make([]error, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, concurrency))

	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			results[i].ID = id

			moduleID, err := r.NormalizeModuleID(id)
			if err != nil {
				err = fmt.Errorf("%q: %w", id, err)
				errs[i] = err
				results[i].Error = err.Error()

				slog.Debug("failed to normalize module id", slog.String("id", id), slog.Any("err", err))

				if keepGoing {
					return nil
				}

				return err
			}

			results[i].ModuleID = moduleID

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return results, merr.ErrorOrNil()
}

func readIDs(stdin io.Reader, file string) ([]string, error) {
	r := stdin

	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close() //nolint:errcheck

		r = f
	}

	var ids []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		ids = append(ids, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	return ids, nil
}

// ModuleIDArgs holds the arguments for the module-id command.
type ModuleIDArgs struct {
	file        *string
	keepGoing   *bool
	concurrency *int
	*RootArgs
}

// NewModuleIDArgs creates a new [ModuleIDArgs].
func NewModuleIDArgs(args *RootArgs) *ModuleIDArgs {
	return &ModuleIDArgs{
		file:        new(string),
		keepGoing:   new(bool),
		concurrency: new(int),
		RootArgs:    args,
	}
}

func (a *ModuleIDArgs) GetFile() string {
	return *a.file
}

func (a *ModuleIDArgs) GetKeepGoing() bool {
	return *a.keepGoing
}

func (a *ModuleIDArgs) GetConcurrency() int {
	return *a.concurrency
}
