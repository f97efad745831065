// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/BeBeatrice/Parallel-Computing/hub"
	"github.com/BeBeatrice/Parallel-Computing/wavefront"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHubCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hub",
		Short: "Serve the group relay that coordinators and workers connect to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return hub.NewServer(a.log).Serve(ctx, a.cfg.Hub.Listen)
		},
	}
	cmd.Flags().String("listen", ":8080", "address to listen on")

	return cmd
}

func newCoordinateCmd(a *app) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "coordinate <fileA> <fileB>",
		Short: "Publish inputs to a hub group and print the result its workers report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := hub.NewClient(a.cfg.Hub.URL)
			if group == "" {
				group = uuid.NewString()
			}
			if err := client.EnsureGroup(ctx, group, a.cfg.Workers); err != nil {
				return err
			}
			a.log.Info("coordinator: group ready", "group", group, "workers", a.cfg.Workers)
			fmt.Fprintf(a.errOut, "group: %s\n", group)

			seqA, seqB, err := readPair(args[0], args[1])
			if err != nil {
				abortGroup(ctx, a, client, group, err)

				return err
			}
			if err := client.PublishInputs(ctx, group, seqA, seqB); err != nil {
				return err
			}

			r, err := client.Result(ctx, group)
			if err != nil {
				return err
			}
			a.report(r.Distance, r.Workers, time.Duration(r.ElapsedSeconds*float64(time.Second)))

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&group, "group", "", "group id shared with the workers (default: a new UUID)")
	f.Int("workers", 4, "number of workers in the group")
	f.String("hub", "http://localhost:8080", "hub base URL")

	return cmd
}

func newWorkerCmd(a *app) *cobra.Command {
	var (
		group string
		rank  int
	)

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run one member of a hub group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if group == "" {
				return errors.New("--group is required")
			}
			ctx := cmd.Context()
			client := hub.NewClient(a.cfg.Hub.URL)
			if err := client.EnsureGroup(ctx, group, a.cfg.Workers); err != nil {
				return err
			}

			seqA, seqB, err := client.Inputs(ctx, group)
			if err != nil {
				return err
			}
			a.log.Info("worker: inputs received", "group", group, "rank", rank, "n", len(seqA), "m", len(seqB))

			start := time.Now()
			d, err := wavefront.Compute(ctx, seqA, seqB, client.Member(group, rank, a.cfg.Workers), a.engineOptions()...)
			if err != nil {
				if !errors.Is(err, wavefront.ErrAborted) {
					abortGroup(ctx, a, client, group, fmt.Errorf("worker %d: %w", rank, err))
				}

				return err
			}
			elapsed := time.Since(start)

			if rank == 0 {
				return client.PublishResult(ctx, group, hub.Report{
					Rank:           rank,
					Distance:       d,
					ElapsedSeconds: elapsed.Seconds(),
					Workers:        a.cfg.Workers,
				})
			}
			a.log.Info("worker: done", "group", group, "rank", rank, "distance", d)

			return nil
		},
	}
	addEngineFlags(cmd)
	f := cmd.Flags()
	f.StringVar(&group, "group", "", "group id shared with the coordinator")
	f.IntVar(&rank, "rank", 0, "rank of this worker in [0, workers)")
	f.Int("workers", 4, "number of workers in the group")
	f.String("hub", "http://localhost:8080", "hub base URL")

	return cmd
}

// abortGroup tells every member of group to stop because of cause.
func abortGroup(ctx context.Context, a *app, client *hub.Client, group string, cause error) {
	a.log.Error("aborting group", "group", group, "error", cause)
	if err := client.Abort(context.WithoutCancel(ctx), group, cause.Error()); err != nil {
		a.log.Warn("abort not delivered", "group", group, "error", err)
	}
}
