// Package jtoo implements JTOO, a strict canonical text encoding.
//
// JTOO is designed to be:
//   - Canonical: every value has exactly one legal spelling
//   - Compact: one-letter tags, no whitespace, no field names
//   - Typed: dates, times, offsets, timestamps and byte strings are
//     first-class
//   - Streaming-friendly: values decode in a single forward pass with no
//     backtracking
//
// # Data Model
//
// Scalars: bool, integer, decimal, string, byte string, timestamp
// Date/time: date, time, UTC offset, and their composites
// Containers: list
//
// # Syntax
//
// Bool:        T / F
// Integer:     -1_234_567
// Decimal:     1_234.567_8, 0.000_000_1
// String:      "tab\09quote\22"
// Byte string: Bdeadbeef
// List:        [T,[],[1,2]]
// Date:        D2029, D2029-08, D2029-W08, D2029-08-07, D2029-W08-03
// Time:        T06, T06:05, T06:05:04.333_222_111
// Offset:      Z, +08, ~05:30
// Timestamp:   S1_700_000_000, S1_700_000_000.123
//
// # Usage
//
// Encoding is driven by an Encoder:
//
//	enc := jtoo.NewEncoder()
//	enc.OpenList()
//	enc.AppendInteger(1234)
//	enc.AppendBool(true)
//	enc.CloseList()
//	text, err := enc.Text() // [1_234,T]
//
// Decoding is driven by a Decoder in the same order:
//
//	dec := jtoo.NewDecoder([]byte("[1_234,T]"))
//	dec.ConsumeOpenList()
//	n, _ := dec.ConsumeInteger()
//	b, _ := dec.ConsumeBool()
//	dec.ConsumeCloseList()
//	err := dec.Close()
//
// Both types stop at the first error. Parse and Emit convert between text
// and a generic Value tree when the structure is not known in advance.
package jtoo
