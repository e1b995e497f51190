// Package report writes computation results for other tools: CSV tables
// for spreadsheets, PDF field reports for filing, and KML placemarks for
// map viewers.
//
// Every result is first turned into a Table; the CSV writers emit its grid
// and WritePDF lays titled tables out on A4 pages with go-pdf/fpdf.
// Coordinates are written with four decimals and angles as packed DD.MMSS
// text. KML output converts grid coordinates of a UTM zone to WGS84 with
// package geo before placing them.
package report
