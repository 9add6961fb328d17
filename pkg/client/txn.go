package client

import "errors"

// Txn runs an optimistic local mutation against a remote attempt. Apply
// mutates local state immediately; if Attempt then fails with an error
// Tolerate does not accept, Restore puts back the exact Snapshot taken
// before Apply ran.
type Txn[T any] struct {
	Snapshot func() T
	Apply    func() error
	Attempt  func() error
	Restore  func(T) error
	Tolerate func(error) bool
}

// Run executes the transaction. A tolerated Attempt error keeps the
// applied local state and reports success.
func (t Txn[T]) Run() error {
	snapshot := t.Snapshot()

	if err := t.Apply(); err != nil {
		return err
	}

	err := t.Attempt()
	if err == nil {
		return nil
	}
	if t.Tolerate != nil && t.Tolerate(err) {
		return nil
	}

	if rerr := t.Restore(snapshot); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}
