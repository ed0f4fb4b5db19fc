package concurrent

import "sync"

func lockUnlock(locker sync.Locker) func() {
	locker.Lock()

	return locker.Unlock
}
