package cmd

import (
	"path/filepath"

	"github.com/termfolio/folio/internal/config"

	"github.com/gofrs/flock"
)

var instanceLock *flock.Flock

// acquireLock tries to become the single running folio instance.
// Returns false (without error) when another instance holds the lock.
func acquireLock() (bool, error) {
	lockPath := filepath.Join(config.GetFolioDir(), "folio.lock")
	instanceLock = flock.New(lockPath)

	locked, err := instanceLock.TryLock()
	if err != nil {
		return false, err
	}
	return locked, nil
}

func releaseLock() error {
	if instanceLock == nil {
		return nil
	}
	return instanceLock.Unlock()
}
