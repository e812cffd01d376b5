// Package dataset provides CSV loading utilities for datasets and paired
// datasets.
//
// # Loading a Dataset
//
// Load a numeric column from a CSV file:
//
//	data, err := dataset.LoadColumn("scores.csv", "score")
//
// Or customize the loading:
//
//	opts := dataset.DefaultOptions()
//	opts.ValueColumn = "score"
//	opts.FilterColumn = "class"
//	opts.FilterValue = "A"
//	data, err := dataset.Load("scores.csv", opts)
//
// # Loading Paired Data
//
// Load two columns as (x, y) pairs for correlation:
//
//	opts := dataset.DefaultOptions()
//	opts.XColumn = "hours"
//	opts.YColumn = "score"
//	pairs, err := dataset.LoadPairs("study.csv", opts)
//	r := stats.Correlation(pairs)
//
// Rows with blank or NA cells are skipped; for paired loading a row is
// skipped when either cell is missing so the pairing stays aligned.
package dataset
