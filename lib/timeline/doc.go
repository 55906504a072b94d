// Package timeline downloads the wiki's product timeline and turns its
// table into catalog records.
//
// Fetching and normalizing are kept apart: Fetch only turns a URL into a
// parsed document, Normalize only reads a document. Normalize is a single
// pass over the rows in page order, the only state carried between rows
// is the pending rowspan date.
package timeline
