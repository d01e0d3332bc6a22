// fetch.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ViniZap4/nurse-notes/client"
)

type fetchOptions struct {
	baseURL string
	output  string
	format  string
	noteID  string
	timeout time.Duration
}

func newFetchCmd(a *app) *cobra.Command {
	var opts fetchOptions

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all notes from a running service and save them to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("base-url") {
				opts.baseURL = a.cfg.BaseURL
			}
			if !cmd.Flags().Changed("output") {
				opts.output = a.cfg.Output
			}
			return a.fetch(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "service base URL (default from NOTES_BASE_URL)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default from NOTES_OUTPUT)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: json or yaml (default by file extension)")
	cmd.Flags().StringVar(&opts.noteID, "id", "note-1", "note id to fetch individually")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "per-request timeout")
	return cmd
}

// fetch lists every note, saves them, then fetches one note by id.
// The first failure aborts the run.
func (a *app) fetch(ctx context.Context, opts fetchOptions, out io.Writer) error {
	c, err := client.New(opts.baseURL, client.WithTimeout(opts.timeout))
	if err != nil {
		return err
	}

	notes, err := c.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("fetch all notes: %w", err)
	}
	a.log.Debug().Int("count", len(notes)).Str("base_url", opts.baseURL).Msg("fetched notes")

	fmt.Fprintf(out, "Retrieved %d notes\n", len(notes))
	for _, n := range notes {
		fmt.Fprintln(out, client.Summary(n))
	}

	if err := client.WriteNotes(opts.output, opts.format, notes); err != nil {
		return fmt.Errorf("save %s: %w", opts.output, err)
	}
	fmt.Fprintf(out, "Saved %s\n", opts.output)

	single, err := c.GetNote(ctx, opts.noteID)
	if err != nil {
		return fmt.Errorf("fetch note %s: %w", opts.noteID, err)
	}

	data, err := json.MarshalIndent(single, "", "  ")
	if err != nil {
		return fmt.Errorf("encode note %s: %w", opts.noteID, err)
	}
	fmt.Fprintf(out, "\nSingle note:\n%s\n", data)
	return nil
}
