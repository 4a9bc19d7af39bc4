package handler

import (
	"log"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"notable/utils"
)

type StatsHandler struct {
	started time.Time
}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{started: time.Now()}
}

// GetStats reports a process health snapshot for operators. Protected
// route; nothing here is exposed to anonymous callers.
func (h *StatsHandler) GetStats(c *gin.Context) {
	cpuPercent := 0.0
	if percentages, err := cpu.Percent(0, false); err != nil {
		log.Printf("Error getting CPU usage: %v", err)
	} else if len(percentages) > 0 {
		cpuPercent = percentages[0]
	}

	memory := gin.H{}
	if vm, err := mem.VirtualMemory(); err != nil {
		log.Printf("Error getting memory usage: %v", err)
	} else {
		memory = gin.H{
			"total":        vm.Total,
			"used":         vm.Used,
			"used_percent": vm.UsedPercent,
		}
	}

	utils.Success(c, gin.H{
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"cpu_percent":    cpuPercent,
		"memory":         memory,
		"goroutines":     runtime.NumGoroutine(),
	})
}
