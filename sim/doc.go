// Package sim provides host-side stand-ins for the ooktx hardware
// capabilities: a virtual clock, a delay that advances it, and a pin that
// records every level it is driven to.
//
// A Delay wired to the same Clock as the transmitter makes transmissions
// deterministic: time only moves when the pulse driver waits, so a
// recorded Pin can be turned back into the exact pulse widths sent.
package sim
