package main

import (
	"context"

	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/osa030/playaxis/internal/app/notification"
	"github.com/osa030/playaxis/internal/app/playback"
	"github.com/osa030/playaxis/internal/infra/config"
	"github.com/osa030/playaxis/internal/render"
)

// runHeadless plays the categories and logs every step. It returns when a
// non-looping cycle ends or on interrupt.
func runHeadless(cfg *config.Config) error {
	sigCtx, stopSignals := signalContext()
	defer stopSignals()

	v, selection := newVisual(cfg, render.NewScene())
	defer v.Close()

	manager := notification.NewManager()
	manager.Subscribe(notification.LogStream{})
	stream := notification.NewChanStream(64)
	manager.Subscribe(stream)

	g, ctx := errgroup.WithContext(sigCtx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		return manager.Run(ctx, v.Scheduler().Events())
	})

	g.Go(func() error {
		defer cancel()
		for n := range stream.C() {
			ev := n.Event
			if ev.Type == playback.EventStateChanged && ev.State == playback.StateStopped {
				return nil
			}
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		v.Stop()
		return nil
	})

	v.Play()

	if err := g.Wait(); err != nil {
		return err
	}
	zlog.Info().Msgf("Played %d selections", selection.Count())
	return nil
}
