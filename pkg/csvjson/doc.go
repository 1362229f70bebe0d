// Package csvjson turns delimited text files into cleaned JSON rows.
//
// The first line is the header; every following record becomes a
// rowclean.Row keyed by header names, is passed through an optional
// rowclean.Reformatter, and is emitted in input order. Records reads rows,
// Rows encodes them as JSON objects and Convert writes JSON lines.
//
//	rf, _ := profile.Build(rowclean.DefaultRegistry())
//	n, err := csvjson.Convert(ctx, in, os.Stdout,
//	    csvjson.WithReformatter(rf),
//	    csvjson.WithComma(';'),
//	)
//
// WithRawFirstRow leaves the first data row uncleaned, for files whose first
// record repeats the header or carries already-processed values.
//
// Cleaner failures never stop a conversion; see package rowclean. While a row
// is cleaned its number is stored in the context, and RowExtractor exposes it
// to the logger so warnings carry a "row" attribute.
package csvjson
