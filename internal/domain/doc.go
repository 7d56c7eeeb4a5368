// Package domain models pedestrian accident records from the German
// Unfallatlas (accident atlas) published by the statistical offices.
//
// # Data Source
//
// Each year is published as one semicolon-delimited CSV named like
// "Unfallorte2021_LinRef.csv". One row describes one accident with injuries.
// The columns used here:
//
//	UJAHR      accident year, e.g. "2021"
//	IstFuss    1 when a pedestrian was involved, 0 otherwise
//	XGCSWGS84  WGS-84 longitude with a comma decimal mark, e.g. "13,38862"
//	YGCSWGS84  WGS-84 latitude with a comma decimal mark, e.g. "52,51627"
//
// Some extracts begin with a UTF-8 byte order mark and older ones are
// encoded as Windows-1252. Decoding is the adapter's concern; the domain
// only sees header names and string fields.
//
// # Combined Dataset
//
// The aggregator writes the pedestrian rows of every year into one
// comma-delimited file with the header UJAHR,XGCSWGS84,YGCSWGS84. Coordinates
// keep their raw comma-decimal text, so standard CSV quoting wraps them:
//
//	UJAHR,XGCSWGS84,YGCSWGS84
//	2021,"13,38862","52,51627"
//
// The renderer reads that file back, replaces each decimal comma with a dot,
// and drops rows whose coordinates still fail to parse. See [ParseDecimal].
package domain
