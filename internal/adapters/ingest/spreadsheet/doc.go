// Package spreadsheet loads visit exports into datasets
//
// Design choices:
// - Cell extraction only: no type coercion, no schema checks; the engine
//   owns validation so every loader stays dumb and interchangeable.
// - CSV decodes UTF-8 first and falls back to Latin-1, matching what the
//   field tools actually export.
// - XLSX goes through excelize and reads the first sheet unless told
//   otherwise; trailing blank rows are dropped.
package spreadsheet
