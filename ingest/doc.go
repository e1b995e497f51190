// Package ingest reads field books from CSV.
//
// Every reader expects a header row. Column names are matched
// case-insensitively after trimming, extra columns are ignored and short
// rows read missing cells as empty. A bad cell fails the whole file with an
// error naming its line and column.
//
// Angular cells are parsed in the angle.Format the caller passes. Standard
// deviations of angular observations are booked in arcseconds; distance
// standard deviations in meters.
package ingest
