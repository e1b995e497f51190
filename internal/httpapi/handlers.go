package httpapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/geo"
	"github.com/katalvlaran/surveyor/job"
)

type handlers struct {
	cfg Config
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

type decodeQuery struct {
	Value  string `form:"value" binding:"required"`
	Format string `form:"format"`
}

func (h *handlers) decodeAngle(c *gin.Context) {
	var q decodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	f, err := angle.ParseFormat(q.Format)
	if err != nil {
		badRequest(c, err)
		return
	}
	deg, err := angle.Parse(q.Value, f)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": q.Value, "degrees": deg, "dms": angle.Encode(deg)})
}

type encodeQuery struct {
	Degrees *float64 `form:"degrees" binding:"required"`
}

func (h *handlers) encodeAngle(c *gin.Context) {
	var q encodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"degrees": *q.Degrees, "dms": angle.Encode(*q.Degrees)})
}

type zoneQuery struct {
	Lon *float64 `form:"lon" binding:"required"`
	Lat *float64 `form:"lat" binding:"required"`
}

func (h *handlers) utmZone(c *gin.Context) {
	var q zoneQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	code, err := geo.UTMEPSG(*q.Lon, *q.Lat)
	if err != nil {
		badRequest(c, err)
		return
	}
	u, _ := geo.ParseEPSG(code)
	c.JSON(http.StatusOK, gin.H{"zone": u.Zone, "north": u.North, "epsg": code, "name": u.String()})
}

// ConvertRequest is the body of POST /api/v1/geo/convert.
type ConvertRequest struct {
	From   int      `json:"from" binding:"required"`
	To     int      `json:"to" binding:"required"`
	Points []geo.XY `json:"points" binding:"required,min=1"`
}

func (h *handlers) convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pts, err := geo.Convert(req.Points, req.From, req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"epsg": req.To, "points": pts})
}

type jobQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=json csv residuals kml pdf"`
	EPSG   int    `form:"epsg"`
}

// runJob decodes a job, runs it, and renders the outcome. A document that
// does not decode, or lacks its kind's section, is a 400; any other failure
// is a 422 carrying whatever partial outcome the computation produced.
func (h *handlers) runJob(c *gin.Context) {
	var q jobQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxJobBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		badRequest(c, err)
		return
	}
	j, err := job.Decode(bytes.NewReader(body))
	if err != nil {
		badRequest(c, err)
		return
	}

	out, err := j.Run()
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, job.ErrKind) || errors.Is(err, job.ErrSection) || errors.Is(err, job.ErrNoFiles) {
			status = http.StatusBadRequest
		}
		resp := gin.H{"error": err.Error()}
		if out != nil {
			resp["outcome"] = out
		}
		c.JSON(status, resp)
		return
	}

	var buf bytes.Buffer
	switch q.Format {
	case "csv":
		err = out.WriteCSV(&buf)
		h.render(c, err, "text/csv; charset=utf-8", buf.Bytes())
	case "residuals":
		err = out.WriteResiduals(&buf)
		h.render(c, err, "text/csv; charset=utf-8", buf.Bytes())
	case "pdf":
		err = out.WritePDF(&buf)
		h.render(c, err, "application/pdf", buf.Bytes())
	case "kml":
		err = out.WriteKML(&buf, q.EPSG)
		h.render(c, err, "application/vnd.google-earth.kml+xml", buf.Bytes())
	default:
		c.JSON(http.StatusOK, out)
	}
}

// render writes data, or the export error as a 400.
func (h *handlers) render(c *gin.Context, err error, contentType string, data []byte) {
	if err != nil {
		badRequest(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
