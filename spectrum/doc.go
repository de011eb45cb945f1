// Package spectrum exports the full energy spectrum of a model — one
// (index, energy) row per configuration — as CSV, optionally compressed.
//
// The spectrum of an N-site model has 2^N rows, so even modest systems
// produce files worth compressing: a 20-site model is a million rows.
// Rows are written in index order, which makes the output directly
// comparable across runs and suitable for diffing against approximate
// samplers.
//
// # Usage
//
//	f, _ := os.Create("spectrum.csv.zst")
//	defer f.Close()
//	err := spectrum.Dump(ctx, f, model, spectrum.Zstd)
package spectrum
