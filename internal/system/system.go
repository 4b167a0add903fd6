package system

import (
	"log"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// DefaultWorkers returns the number of logical CPUs, used as the default
// size of the conversion pool.
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		if err != nil {
			log.Printf("[!] Не удалось определить число CPU: %v", err)
		}
		return runtime.NumCPU()
	}
	return n
}
