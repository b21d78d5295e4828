// Package filelock guards the bookings file against concurrent Seatwise
// processes. The store rewrites the whole file on save, so two processes
// mutating the same file can silently drop each other's records.
//
// The lock is a sibling file ({bookings}.lock) holding the owner's pid,
// created with O_EXCL so acquisition is atomic. A lock whose owner is no
// longer running is treated as stale and taken over.
//
// # Basic Usage
//
//	lock := filelock.New("/data/bookings.txt")
//	if err := lock.Acquire(); err != nil { ... }
//	defer lock.Release()
package filelock

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/seatwise/seatwise/internal/errors"
)

// Sentinel errors returned by lock operations.
var (
	// ErrLocked is returned when another live process holds the lock.
	ErrLocked = errors.New("bookings file is locked by another process")

	// ErrNotHeld is returned when releasing a lock this process never acquired.
	ErrNotHeld = errors.New("lock is not held by this process")
)

// Lock is an advisory lock on one bookings file. It is not safe for
// concurrent use within a single process; each process takes one lock.
type Lock struct {
	lockPath string
	held     bool
}

// New returns an unacquired Lock for the given bookings file path.
func New(bookingsPath string) *Lock {
	return &Lock{lockPath: bookingsPath + ".lock"}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.lockPath
}

// Acquire takes the lock, writing this process's pid to the lock file.
// A lock file owned by a dead process is removed and taken over. Fails
// with ErrLocked when the owner is still running.
func (l *Lock) Acquire() error {
	if l.held {
		return nil
	}

	if err := l.tryCreate(); err == nil {
		l.held = true
		return nil
	} else if !os.IsExist(err) {
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	owner, err := l.owner()
	if err != nil {
		// Unreadable lock file: treat as stale.
		owner = 0
	}
	if owner > 0 && processAlive(owner) {
		return errors.Wrapf(ErrLocked, "pid %d holds %s", owner, l.lockPath)
	}

	// Stale lock: the owner is gone. Take it over.
	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	if err := l.tryCreate(); err != nil {
		if os.IsExist(err) {
			return errors.Wrap(ErrLocked, "lock re-acquired by another process")
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	l.held = true
	return nil
}

// Release removes the lock file. Fails with ErrNotHeld when Acquire did
// not succeed first. A lock file already removed by hand is not an error.
func (l *Lock) Release() error {
	if !l.held {
		return ErrNotHeld
	}
	l.held = false

	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// tryCreate atomically creates the lock file with this process's pid.
func (l *Lock) tryCreate() error {
	f, err := os.OpenFile(l.lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, werr := fmt.Fprintf(f, "%d\n", os.Getpid())
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// owner reads the pid recorded in the lock file.
func (l *Lock) owner() (int, error) {
	data, err := os.ReadFile(l.lockPath)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("malformed lock file %s: %w", l.lockPath, err)
	}
	return pid, nil
}

// processAlive reports whether a process with the given pid exists.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil || err == syscall.EPERM
}
