package probe

// CPUTimes holds cumulative time-in-state counters (USER_HZ ticks) from the
// aggregate cpu line of /proc/stat.
type CPUTimes struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
}

// IdleAll is time not spent executing, including I/O wait.
func (c CPUTimes) IdleAll() uint64 {
	return c.Idle + c.IOWait
}

// NonIdle is time spent executing in any mode. Guest time is already
// counted in user/nice and is not added again.
func (c CPUTimes) NonIdle() uint64 {
	return c.User + c.Nice + c.System + c.IRQ + c.SoftIRQ + c.Steal
}

// Total is IdleAll + NonIdle.
func (c CPUTimes) Total() uint64 {
	return c.IdleAll() + c.NonIdle()
}

// MemoryUsage is derived from MemTotal and MemAvailable.
type MemoryUsage struct {
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	PercentUsed    float64 `json:"percent_used"`
}

// DiskUsage describes space on the filesystem holding Path.
type DiskUsage struct {
	Path        string  `json:"path"`
	TotalBytes  uint64  `json:"total_bytes"`
	UsedBytes   uint64  `json:"used_bytes"`
	FreeBytes   uint64  `json:"free_bytes"`
	PercentUsed float64 `json:"percent_used"`
}

// OSInfo describes the running kernel, as reported by uname(2).
type OSInfo struct {
	System  string `json:"system"`
	Release string `json:"release"`
	Version string `json:"version"`
	Machine string `json:"machine"`
}
