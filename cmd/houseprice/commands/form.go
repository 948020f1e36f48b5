package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"houseprice/internal/domain"
	"houseprice/internal/render"
	"houseprice/internal/services/form"
)

// errInputClosed ends the form when stdin runs out mid-entry.
var errInputClosed = errors.New("input closed before the form was complete")

// formCmd prompts for each field, predicts, and offers another round. Failed
// predictions are shown inline and never end the session; an interrupt does.
func formCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Enter property details interactively and predict the price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			r := appCtx.Renderer(out)
			svc, err := appCtx.Form(form.OnBusy(r.Busy))
			if err != nil {
				return err
			}
			lines := newLineReader(ctx, cmd.InOrStdin())

			r.Banner()
			fmt.Fprintln(out, "Enter property details to get a price prediction")
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				in, err := promptInput(lines, out, r)
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}

				if _, err := svc.Submit(ctx, in); err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					if errors.Is(err, context.Canceled) {
						return err
					}
					r.Error(err)
				} else if res, ok := svc.Result(); ok {
					r.Result(res)
				}

				again, err := confirm(lines, out, "Predict another? [y/N] ")
				if err != nil {
					return err
				}
				if !again {
					return nil
				}
			}
		},
	}
}

// lineReader hands out stdin lines but gives up as soon as ctx is done, so an
// interrupt is not stuck behind a blocked read.
type lineReader struct {
	ctx   context.Context
	lines chan string
	err   error // written before lines is closed
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{ctx: ctx, lines: make(chan string)}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		lr.err = sc.Err()
	}()
	return lr
}

// next returns the next line, io.EOF at the end of input, or the context
// error once ctx is done.
func (lr *lineReader) next() (string, error) {
	select {
	case <-lr.ctx.Done():
		return "", lr.ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// promptInput asks for every field in order, re-asking a field until it
// parses.
func promptInput(lines *lineReader, out io.Writer, r *render.Renderer) (domain.FormInput, error) {
	var in domain.FormInput
	for _, f := range domain.Fields {
		for {
			fmt.Fprintf(out, "%s [%s]: ", f.Label, f.Placeholder)
			line, err := lines.next()
			if errors.Is(err, io.EOF) {
				return domain.FormInput{}, errInputClosed
			}
			if err != nil {
				return domain.FormInput{}, err
			}
			v, err := form.ParseField(f.Key, line)
			if err != nil {
				r.Error(err)
				continue
			}
			*in.Ref(f.Key) = v
			break
		}
	}
	return in, nil
}

func confirm(lines *lineReader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := lines.next()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
