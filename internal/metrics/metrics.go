// Package metrics provides request metrics collection for the API gateway.
// Package metrics 提供API网关的请求指标采集功能。
//
// Counters are collected atomically so the main request path pays almost
// nothing for instrumentation. Failures are split along the client's error
// taxonomy: transport failures versus envelope-reported failures.
//
// 计数器以原子方式收集，因此主请求路径几乎不为检测付出代价。
// 失败按客户端的错误分类拆分：传输失败与信封报告的失败。
package metrics

import (
	"sync/atomic"
	"time"
)

// Level defines the metrics collection level.
// Level 定义指标采集级别。
type Level int

const (
	// Disabled means metrics collection is turned off.
	// Disabled 表示禁用指标采集。
	Disabled Level = iota

	// Basic enables request, failure, and latency counters.
	// Basic 启用请求、失败和延迟计数器。
	Basic
)

// Outcome classifies a completed request for recording purposes.
// Outcome 对已完成的请求进行分类以便记录。
type Outcome int

const (
	// OutcomeSuccess is a request whose envelope reported success.
	// OutcomeSuccess 表示信封报告成功的请求。
	OutcomeSuccess Outcome = iota

	// OutcomeTransport is a request that failed before an envelope was decoded.
	// OutcomeTransport 表示在解码信封之前失败的请求。
	OutcomeTransport

	// OutcomeEnvelope is a request whose envelope reported success=false.
	// OutcomeEnvelope 表示信封报告success=false的请求。
	OutcomeEnvelope
)

// Metrics is a request metrics collector.
// It uses atomic operations to ensure thread safety under concurrent requests.
//
// Metrics 是请求指标收集器。
// 使用原子操作确保并发请求下的线程安全。
type Metrics struct {
	level Level

	requests          uint64 // Completed requests / 已完成的请求数
	successes         uint64 // Envelope-reported successes / 信封报告成功数
	transportFailures uint64 // Transport failures / 传输失败数
	envelopeFailures  uint64 // Envelope-reported failures / 信封报告失败数

	latencySum uint64 // Sum of request latencies (ns) / 请求延迟总和（纳秒）
}

// New creates a metrics collector at the given level.
//
// New 创建给定级别的指标收集器。
//
// Parameters:
//   - level: The collection level
//
// Returns:
//   - *Metrics: A new collector instance
func New(level Level) *Metrics {
	return &Metrics{level: level}
}

// Record registers one completed request.
// It is a no-op when collection is disabled.
//
// Record 记录一个已完成的请求。禁用采集时为空操作。
//
// Parameters:
//   - outcome: How the request ended
//   - latency: Wall-clock duration of the request
func (m *Metrics) Record(outcome Outcome, latency time.Duration) {
	if m == nil || m.level == Disabled {
		return
	}

	atomic.AddUint64(&m.requests, 1)
	atomic.AddUint64(&m.latencySum, uint64(latency.Nanoseconds()))

	switch outcome {
	case OutcomeSuccess:
		atomic.AddUint64(&m.successes, 1)
	case OutcomeTransport:
		atomic.AddUint64(&m.transportFailures, 1)
	case OutcomeEnvelope:
		atomic.AddUint64(&m.envelopeFailures, 1)
	}
}

// Stats is a point-in-time snapshot of the collected counters.
// Stats 是收集的计数器的时间点快照。
type Stats struct {
	// Requests is the number of completed requests
	// Requests 是已完成的请求数量
	Requests uint64

	// Successes is the number of requests whose envelope reported success
	// Successes 是信封报告成功的请求数量
	Successes uint64

	// TransportFailures is the number of requests that failed in transit
	// TransportFailures 是传输中失败的请求数量
	TransportFailures uint64

	// EnvelopeFailures is the number of requests rejected by the backend
	// EnvelopeFailures 是被后端拒绝的请求数量
	EnvelopeFailures uint64

	// AvgLatency is the mean request duration
	// AvgLatency 是平均请求持续时间
	AvgLatency time.Duration
}

// Snapshot returns a copy of the current counters.
//
// Snapshot 返回当前计数器的副本。
//
// Returns:
//   - Stats: The snapshot
func (m *Metrics) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}

	requests := atomic.LoadUint64(&m.requests)
	stats := Stats{
		Requests:          requests,
		Successes:         atomic.LoadUint64(&m.successes),
		TransportFailures: atomic.LoadUint64(&m.transportFailures),
		EnvelopeFailures:  atomic.LoadUint64(&m.envelopeFailures),
	}
	if requests > 0 {
		stats.AvgLatency = time.Duration(atomic.LoadUint64(&m.latencySum) / requests)
	}
	return stats
}
