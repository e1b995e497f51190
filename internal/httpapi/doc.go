// Package httpapi exposes the survey computations over HTTP with gin.
//
// Routes:
//
//	GET  /ping
//	GET  /api/v1/angles/decode?value=45.3000
//	GET  /api/v1/angles/encode?degrees=45.5
//	GET  /api/v1/geo/utm-zone?lon=9.2&lat=45.4
//	POST /api/v1/geo/convert
//	POST /api/v1/jobs[?format=json|csv|residuals|kml|pdf&epsg=32632]
//
// Jobs are posted as JSON or YAML, the same documents the surveyor command
// reads from disk. They cannot reference CSV field books.
package httpapi
