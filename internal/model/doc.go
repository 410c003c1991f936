// Package model defines the catalogue's domain data: products, the fixed
// category set and the remotely persisted display settings. Decoding is
// lenient because the backing store is a spreadsheet whose cells may hold
// numbers as text.
package model
