// Package coordinator drives a simplified two-phase commit across the two
// account stores. Each transfer gets its own Coordinator owning one local
// transaction per store; the phase is explicit state so callers and logs can
// always tell how far a transfer got.
package coordinator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

type Phase string

const (
	PhaseIdle           Phase = "IDLE"
	PhaseStarted        Phase = "STARTED"
	PhasePreparing      Phase = "PREPARING"
	PhasePrepared       Phase = "PREPARED"
	PhaseCommitting     Phase = "COMMITTING"
	PhaseCommitted      Phase = "COMMITTED"
	PhaseFailed         Phase = "FAILED"
	PhasePrepareFailed  Phase = "PREPARE_FAILED"
	PhaseCommitFailed   Phase = "COMMIT_FAILED"
	PhaseRollingBack    Phase = "ROLLING_BACK"
	PhaseRolledBack     Phase = "ROLLED_BACK"
	PhaseRollbackFailed Phase = "ROLLBACK_FAILED"
)

func (p Phase) Terminal() bool {
	switch p {
	case PhaseCommitted, PhaseRolledBack, PhaseFailed, PhaseCommitFailed:
		return true
	}
	return false
}

// Error reports a coordination failure together with the phase it left the
// coordinator in, so callers can branch on how far the protocol got.
type Error struct {
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("coordinator: %s: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// CommitError is the commit-phase failure. SourceCommitted distinguishes the
// one genuinely inconsistent outcome: the source store finalized its
// transaction before the destination commit failed. Rollback cannot undo a
// committed side, so callers must escalate that case to reconciliation
// instead of treating it as a clean rollback.
type CommitError struct {
	SourceCommitted bool
	Err             error
}

func (e *CommitError) Error() string {
	if e.SourceCommitted {
		return fmt.Sprintf("coordinator: destination commit failed after source commit, reconciliation required: %v", e.Err)
	}
	return fmt.Sprintf("coordinator: source commit failed: %v", e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

type Coordinator struct {
	source port_persistence.Store
	dest   port_persistence.Store

	sourceTx port_persistence.Tx
	destTx   port_persistence.Tx

	phase Phase
	log   *zap.Logger
}

func New(source, dest port_persistence.Store, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		source: source,
		dest:   dest,
		phase:  PhaseIdle,
		log:    log,
	}
}

func (c *Coordinator) Phase() Phase { return c.phase }

// Active reports whether the coordinator still holds open transactions.
func (c *Coordinator) Active() bool {
	return c.sourceTx != nil || c.destTx != nil
}

func (c *Coordinator) SourceTx() port_persistence.Tx { return c.sourceTx }

func (c *Coordinator) DestTx() port_persistence.Tx { return c.destTx }

// Begin opens one local transaction against each store. If the second open
// fails, the first is released before returning so nothing is left dangling.
func (c *Coordinator) Begin(ctx context.Context) error {
	if c.phase != PhaseIdle {
		return &Error{Phase: c.phase, Err: fmt.Errorf("begin called in phase %s", c.phase)}
	}

	sourceTx, err := c.source.Begin(ctx)
	if err != nil {
		c.phase = PhaseFailed
		c.log.Error("failed to open source transaction", zap.Error(err))
		return &Error{Phase: PhaseFailed, Err: err}
	}

	destTx, err := c.dest.Begin(ctx)
	if err != nil {
		c.phase = PhaseFailed
		if rbErr := sourceTx.Rollback(ctx); rbErr != nil {
			c.log.Error("failed to release source transaction after begin failure", zap.Error(rbErr))
		}
		c.log.Error("failed to open destination transaction", zap.Error(err))
		return &Error{Phase: PhaseFailed, Err: err}
	}

	c.sourceTx = sourceTx
	c.destTx = destTx
	c.phase = PhaseStarted
	c.log.Debug("distributed transaction started")
	return nil
}

// Prepare flushes pending writes on both sides without finalizing either
// transaction. Any failure moves to PREPARE_FAILED and rolls both back; at
// this point rollback is still a complete remedy.
func (c *Coordinator) Prepare(ctx context.Context) error {
	if c.phase != PhaseStarted {
		return &Error{Phase: c.phase, Err: fmt.Errorf("prepare called in phase %s", c.phase)}
	}

	c.phase = PhasePreparing

	if err := c.sourceTx.Prepare(ctx); err != nil {
		return c.prepareFailed(ctx, "source", err)
	}
	if err := c.destTx.Prepare(ctx); err != nil {
		return c.prepareFailed(ctx, "dest", err)
	}

	c.phase = PhasePrepared
	c.log.Debug("prepare phase completed")
	return nil
}

func (c *Coordinator) prepareFailed(ctx context.Context, side string, err error) error {
	c.phase = PhasePrepareFailed
	c.log.Error("prepare phase failed", zap.String("store", side), zap.Error(err))
	if rbErr := c.Rollback(ctx); rbErr != nil {
		c.log.Error("rollback after prepare failure also failed", zap.Error(rbErr))
	}
	return &Error{Phase: PhasePrepareFailed, Err: err}
}

// Commit finalizes both local transactions, source first. The two commits are
// not atomic with each other: the window between them is kept as small as
// possible, and a destination failure after the source committed is surfaced
// as CommitError{SourceCommitted: true} rather than masked by a rollback that
// could not undo the source side anyway.
func (c *Coordinator) Commit(ctx context.Context) error {
	if c.phase != PhasePrepared {
		return &Error{Phase: c.phase, Err: fmt.Errorf("commit called in phase %s", c.phase)}
	}

	c.phase = PhaseCommitting

	if err := c.sourceTx.Commit(ctx); err != nil {
		// Nothing finalized yet; releasing the destination side fully
		// resolves the attempt.
		c.phase = PhaseCommitFailed
		c.log.Error("source commit failed", zap.Error(err))
		if rbErr := c.destTx.Rollback(ctx); rbErr != nil {
			c.log.Error("failed to release destination transaction after source commit failure", zap.Error(rbErr))
		}
		c.cleanup()
		return &CommitError{SourceCommitted: false, Err: err}
	}

	if err := c.destTx.Commit(ctx); err != nil {
		c.phase = PhaseCommitFailed
		c.log.Error("destination commit failed after source commit, stores are divergent",
			zap.Error(err))
		c.cleanup()
		return &CommitError{SourceCommitted: true, Err: err}
	}

	c.phase = PhaseCommitted
	c.cleanup()
	c.log.Info("distributed transaction committed")
	return nil
}

// Rollback rolls back whichever local transactions are still open. It is
// tolerant of either side already being closed and always releases resources.
func (c *Coordinator) Rollback(ctx context.Context) error {
	if c.phase.Terminal() && !c.Active() {
		return nil
	}

	prior := c.phase
	c.phase = PhaseRollingBack

	var firstErr error
	if c.sourceTx != nil {
		if err := c.sourceTx.Rollback(ctx); err != nil {
			firstErr = err
			c.log.Error("source rollback failed", zap.Error(err))
		}
	}
	if c.destTx != nil {
		if err := c.destTx.Rollback(ctx); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			c.log.Error("destination rollback failed", zap.Error(err))
		}
	}

	c.cleanup()

	if firstErr != nil {
		c.phase = PhaseRollbackFailed
		return &Error{Phase: PhaseRollbackFailed, Err: firstErr}
	}

	c.phase = PhaseRolledBack
	c.log.Info("distributed transaction rolled back", zap.String("from_phase", string(prior)))
	return nil
}

// ForceCleanup unconditionally releases both transactions. Crash-recovery
// paths call this when the normal protocol cannot be trusted anymore.
func (c *Coordinator) ForceCleanup(ctx context.Context) {
	c.log.Warn("forcing transaction cleanup", zap.String("phase", string(c.phase)))
	if c.sourceTx != nil {
		_ = c.sourceTx.Rollback(ctx)
	}
	if c.destTx != nil {
		_ = c.destTx.Rollback(ctx)
	}
	c.cleanup()
}

// cleanup is idempotent; every exit path funnels through it exactly once per
// open transaction.
func (c *Coordinator) cleanup() {
	c.sourceTx = nil
	c.destTx = nil
}
