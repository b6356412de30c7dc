package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/pkg/logger"
	"go.uber.org/zap"
)

var _ Transactor = (*transactorImpl)(nil)

// transactorImpl runs one operation at a time over State. The check, update
// and save steps of an operation form one unit: an operation error restores
// the state captured before it, and a successful operation is saved.
type transactorImpl struct {
	logger *zap.Logger
	mu     sync.Mutex
	state  State
}

func NewTransactor(logger *zap.Logger, state State) *transactorImpl {
	return &transactorImpl{
		logger: logger,
		state:  state,
	}
}

// WithTx runs function inside the critical section. A save failure is
// returned but the in-memory changes are kept.
func (t *transactorImpl) WithTx(ctx context.Context, function func(ctx context.Context) error) (txErr error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	restore := t.state.Snapshot()
	if err := function(ctx); err != nil {
		restore()
		logger.MakeInfo(t.logger, "operation rolled back", zap.Error(err))
		return err
	}

	err := t.state.Save()
	if logger.CheckError(err, t.logger, "failed save of state", zap.Error(err)) {
		if !errors.Is(err, entity.ErrPersistence) {
			err = errors.Join(entity.ErrPersistence, err)
		}
		return err
	}

	return nil
}

// Flush saves the state between operations, retrying documents a failed
// save left behind.
func (t *transactorImpl) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state.Save()
}
