// Package benchmark repeats an operation and reports timing statistics.
//
// A Benchmark first measures an idle-loop baseline: the wall and CPU time
// of timing nothing. It then times each iteration with a wall and a CPU
// timer. The Result keeps the raw samples; adjusted samples subtract the
// baseline, saturating at zero, and feed the statistics in a Report.
//
// # Text Report
//
//	Benchmark: '<title>'
//	Info: <info>
//	 Iterations: <n>
//	 WallTime [ns]:
//	  min:       <ns>
//	  max:       <ns>
//	  mean:      <ns>
//	  SD:        <ns>
//	  median:    <ns>
//	  %err:      <fraction or n/a>
//	 CPUTime [ns]:
//	  ...
//
// The Info line is omitted when empty. Reports can also be encoded as JSON,
// CBOR, CSV (one row per iteration) or PDF.
//
// A Benchmark is not safe for concurrent use.
package benchmark
