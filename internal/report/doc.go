// Package report renders aggregate reports.
//
// The text form always lists, in order: the method header, the throughput
// block, the latency block, the resource block and the detection block, so
// reports of different strategies line up when compared. The JSON form
// carries the same fields for tooling.
package report
