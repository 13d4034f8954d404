package probe

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hostkit/hostkit/pkg/textfile"
)

const fixtureMeminfo = `MemTotal:       16384256 kB
MemFree:         1234567 kB
MemAvailable:    4096064 kB
Buffers:          204800 kB
HugePages_Total:       0
`

func TestProbe_ReadUptimeSeconds(t *testing.T) {
	p := fixtureProc(t, map[string]string{"uptime": "350735.47 234388.90\n"})

	got, err := p.ReadUptimeSeconds()
	if err != nil {
		t.Fatalf("ReadUptimeSeconds() error = %v", err)
	}
	if got != 350735.47 {
		t.Errorf("ReadUptimeSeconds() = %v, want 350735.47", got)
	}
}

func TestProbe_ReadUptimeSeconds_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		p := fixtureProc(t, nil)
		_, err := p.ReadUptimeSeconds()
		if !errors.Is(err, textfile.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
	t.Run("malformed", func(t *testing.T) {
		p := fixtureProc(t, map[string]string{"uptime": "abc 123\n"})
		_, err := p.ReadUptimeSeconds()
		if !errors.Is(err, textfile.ErrParse) {
			t.Errorf("err = %v, want ErrParse", err)
		}
	})
	t.Run("empty", func(t *testing.T) {
		p := fixtureProc(t, map[string]string{"uptime": ""})
		_, err := p.ReadUptimeSeconds()
		if !errors.Is(err, textfile.ErrParse) {
			t.Errorf("err = %v, want ErrParse", err)
		}
	})
}

func TestParseCPULine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantTotal uint64
		wantIdle  uint64
		wantErr   bool
	}{
		{
			name: "modern kernel, ten fields",
			line: "cpu  3357 0 4313 1362393 10 5 7 2 0 0",
			// non_idle = 3357+0+4313+5+7+2 = 7684; idle_all = 1362393+10
			wantTotal: 7684 + 1362403,
			wantIdle:  1362403,
		},
		{
			name:      "old kernel, four fields",
			line:      "cpu 100 20 30 850",
			wantTotal: 1000,
			wantIdle:  850,
		},
		{
			name:      "iowait only",
			line:      "cpu 100 0 0 800 50",
			wantTotal: 950,
			wantIdle:  850,
		},
		{name: "per-cpu line rejected", line: "cpu0 1 2 3 4", wantErr: true},
		{name: "too few fields", line: "cpu 1 2 3", wantErr: true},
		{name: "non-numeric field", line: "cpu 1 2 x 4", wantErr: true},
		{name: "empty", line: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCPULine("/proc/stat", tc.line)
			if tc.wantErr {
				if !errors.Is(err, textfile.ErrParse) {
					t.Fatalf("err = %v, want ErrParse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCPULine() error = %v", err)
			}
			if got.Total() != tc.wantTotal {
				t.Errorf("Total() = %d, want %d", got.Total(), tc.wantTotal)
			}
			if got.IdleAll() != tc.wantIdle {
				t.Errorf("IdleAll() = %d, want %d", got.IdleAll(), tc.wantIdle)
			}
		})
	}
}

func TestProbe_ReadCPUTimes_FirstLineOnly(t *testing.T) {
	p := fixtureProc(t, map[string]string{
		"stat": "cpu  10 0 10 80 0 0 0 0 0 0\ncpu0 10 0 10 80 0 0 0 0 0 0\nintr 12345\n",
	})
	got, err := p.ReadCPUTimes()
	if err != nil {
		t.Fatalf("ReadCPUTimes() error = %v", err)
	}
	if got.Total() != 100 || got.IdleAll() != 80 {
		t.Errorf("got total %d idle %d, want 100/80", got.Total(), got.IdleAll())
	}
}

func TestProbe_ReadMemoryUsage(t *testing.T) {
	p := fixtureProc(t, map[string]string{"meminfo": fixtureMeminfo})

	got, err := p.ReadMemoryUsage()
	if err != nil {
		t.Fatalf("ReadMemoryUsage() error = %v", err)
	}
	if got.TotalBytes != 16384256*1024 {
		t.Errorf("TotalBytes = %d", got.TotalBytes)
	}
	if got.AvailableBytes != 4096064*1024 {
		t.Errorf("AvailableBytes = %d", got.AvailableBytes)
	}
	if got.UsedBytes != (16384256-4096064)*1024 {
		t.Errorf("UsedBytes = %d", got.UsedBytes)
	}
	// used 12288192 kB of 16384256 kB is exactly 75%
	if got.PercentUsed != 75 {
		t.Errorf("PercentUsed = %v, want 75", got.PercentUsed)
	}
}

func TestProbe_ReadMemoryUsage_Malformed(t *testing.T) {
	p := fixtureProc(t, map[string]string{"meminfo": "MemTotal 1024 kB\n"})
	if _, err := p.ReadMemoryUsage(); !errors.Is(err, textfile.ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestMemoryUsageFrom(t *testing.T) {
	tests := []struct {
		name         string
		total, avail uint64
		wantUsed     uint64
		wantPct      float64
	}{
		{"normal", 1000, 250, 750 * 1024, 75},
		{"available exceeds total clamps to zero", 1000, 1200, 0, 0},
		{"zero total", 0, 0, 0, 0},
		{"zero total with available", 0, 50, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MemoryUsageFrom(tc.total, tc.avail)
			if got.UsedBytes != tc.wantUsed {
				t.Errorf("UsedBytes = %d, want %d", got.UsedBytes, tc.wantUsed)
			}
			if got.PercentUsed != tc.wantPct {
				t.Errorf("PercentUsed = %v, want %v", got.PercentUsed, tc.wantPct)
			}
		})
	}
}

func TestDiskUsageFrom(t *testing.T) {
	// 1000 blocks of 4 KiB, 300 free, 250 available to users.
	got := DiskUsageFrom("/", 4096, 1000, 300, 250)
	if got.TotalBytes != 4096000 {
		t.Errorf("TotalBytes = %d", got.TotalBytes)
	}
	if got.UsedBytes != 700*4096 {
		t.Errorf("UsedBytes = %d", got.UsedBytes)
	}
	if got.FreeBytes != 250*4096 {
		t.Errorf("FreeBytes = %d", got.FreeBytes)
	}
	if got.PercentUsed != 70 {
		t.Errorf("PercentUsed = %v, want 70", got.PercentUsed)
	}

	empty := DiskUsageFrom("/empty", 4096, 0, 0, 0)
	if empty.PercentUsed != 0 {
		t.Errorf("zero-size filesystem PercentUsed = %v, want 0", empty.PercentUsed)
	}
}

func TestPercentAndRound2(t *testing.T) {
	if got := Percent(1, 3); got != 33.33 {
		t.Errorf("Percent(1,3) = %v, want 33.33", got)
	}
	if got := Percent(2, 3); got != 66.67 {
		t.Errorf("Percent(2,3) = %v, want 66.67", got)
	}
	if got := Percent(5, 0); got != 0 {
		t.Errorf("Percent(5,0) = %v, want 0", got)
	}
	if got := Round2(12.3456); got != 12.35 {
		t.Errorf("Round2(12.3456) = %v", got)
	}
}

func TestReadDiskUsage_Live(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("statfs is only wired on linux")
	}
	p := New("/proc")
	got, err := p.ReadDiskUsage(t.TempDir())
	if err != nil {
		t.Fatalf("ReadDiskUsage() error = %v", err)
	}
	if got.PercentUsed < 0 || got.PercentUsed > 100 {
		t.Errorf("PercentUsed = %v out of range", got.PercentUsed)
	}

	_, err = p.ReadDiskUsage(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, textfile.ErrNotFound) {
		t.Errorf("missing path err = %v, want ErrNotFound", err)
	}
}

func TestReadOSInfo_Live(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uname is only wired on linux")
	}
	info, err := New("/proc").ReadOSInfo()
	if err != nil {
		t.Fatalf("ReadOSInfo() error = %v", err)
	}
	if info.System != "Linux" {
		t.Errorf("System = %q, want Linux", info.System)
	}
	if info.Release == "" || info.Machine == "" {
		t.Errorf("incomplete OSInfo: %+v", info)
	}
}

// fixtureProc writes files into a temp directory and returns a Probe rooted there.
func fixtureProc(t *testing.T, files map[string]string) *Probe {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return New(root)
}
