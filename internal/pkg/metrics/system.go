package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const DefaultCollectInterval = 5 * time.Second

var (
	HostCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_host_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	HostMemoryUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_host_memory_used_bytes",
			Help: "Host memory in use, bytes",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_heap_alloc_bytes",
			Help: "Go heap allocation of the tracker process",
		},
	)

	// Каждая подписка держит горутину, так что рост здесь виден раньше утечки памяти.
	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_goroutines",
			Help: "Number of goroutines in the tracker process",
		},
	)
)

// StartSystemMetricsCollector снимает показатели до отмены ctx.
// interval <= 0 заменяется на DefaultCollectInterval.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collect(ctx)
			}
		}
	}()
}

func collect(ctx context.Context) {
	// Интервал замера CPU занимает секунду, отмена ctx его прерывает
	if usage, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(usage) > 0 {
		HostCPUUsage.Set(usage[0])
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		HostMemoryUsed.Set(float64(vm.Used))
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	HeapAlloc.Set(float64(ms.HeapAlloc))
	Goroutines.Set(float64(runtime.NumGoroutine()))
}
