package engine

import (
	"context"
	"log/slog"
)

// Runner serializes concurrent callers onto a single goroutine that
// owns the Engine, so its matching invariants only ever get mutated
// from one execution context. It is a command-queue pattern: callers
// enqueue a Command and block on its Resp channel for a Result.
type Runner struct {
	engine *Engine
	cmds   chan Command
	done   chan struct{}
	logger *slog.Logger
}

// NewRunner wraps engine with a buffered command channel of the given
// size. A nil logger falls back to slog.Default().
func NewRunner(engine *Engine, buffer int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		engine: engine,
		cmds:   make(chan Command, buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Submit enqueues a command. Callers must provide a Resp channel and
// receive exactly one Result from it.
func (r *Runner) Submit(cmd Command) {
	r.cmds <- cmd
}

// Run drains the command queue until ctx is cancelled. It is meant to
// run in its own goroutine; Done() closes once Run returns.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)

	for {
		select {
		case cmd := <-r.cmds:
			r.dispatch(cmd)
		case <-ctx.Done():
			r.logger.Info("engine runner stopping", "reason", ctx.Err())
			return
		}
	}
}

// Done returns a channel that closes once Run has returned.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) dispatch(cmd Command) {
	switch cmd.Type {
	case CmdPlaceLimit:
		rested, err := r.engine.AddLimitOrder(cmd.Limit.ID, cmd.Limit.Side, cmd.Limit.Price, cmd.Limit.Qty)
		if err != nil {
			r.logger.Warn("place_limit rejected", "id", cmd.Limit.ID, "err", err)
		}
		cmd.Resp <- Result{Rested: rested, Err: err}

	case CmdPlaceMarket:
		filled, err := r.engine.AddMarketOrder(cmd.Market.ID, cmd.Market.Side, cmd.Market.Qty)
		if err != nil {
			r.logger.Warn("place_market rejected", "id", cmd.Market.ID, "err", err)
		}
		cmd.Resp <- Result{Filled: filled, Err: err}

	case CmdCancel:
		existed := r.engine.CancelOrder(cmd.CancelID)
		cmd.Resp <- Result{Existed: existed}
	}
}
