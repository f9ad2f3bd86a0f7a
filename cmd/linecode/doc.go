// Command linecode encodes bit strings with digital line codes and prints
// the resulting waveforms.
//
// Usage:
//
//	linecode [flags] BITS...
//
// Output formats:
//
//   - table: one row per input and scheme, each bit cell shown as two level
//     symbols ('+', '0' or '-')
//   - json: an array of {input, scheme, waveform, report} records
//   - cbor: the same records in Core Deterministic CBOR
//   - frame: binary frames as produced by the frame package, back to back
//
// Settings may be kept in a YAML file passed with --config; flags given on
// the command line override it. The process exits with status 2 on any error.
package main
