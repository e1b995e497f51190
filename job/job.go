package job

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surveyor/leveling"
	"github.com/katalvlaran/surveyor/network"
	"github.com/katalvlaran/surveyor/traverse"
	"github.com/katalvlaran/surveyor/triangulation"
)

// Kind names the computation a job runs.
type Kind string

const (
	KindTraverse      Kind = "traverse"
	KindTriangulation Kind = "triangulation"
	KindNetwork       Kind = "network"
	KindQuadrilateral Kind = "quadrilateral"
	KindTrigLeveling  Kind = "trig-leveling"
	KindLeveling      Kind = "leveling"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindTraverse, KindTriangulation, KindNetwork, KindQuadrilateral, KindTrigLeveling, KindLeveling}

// Job is one computation.
type Job struct {
	Kind Kind   `yaml:"kind" json:"kind"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// AngleFormat is "dms" (default) or "decimal".
	AngleFormat string `yaml:"angle_format,omitempty" json:"angle_format,omitempty"`
	// EPSG of the grid coordinates, used for KML export.
	EPSG int `yaml:"epsg,omitempty" json:"epsg,omitempty"`

	Traverse      *Traverse      `yaml:"traverse,omitempty" json:"traverse,omitempty"`
	Triangulation *Triangulation `yaml:"triangulation,omitempty" json:"triangulation,omitempty"`
	Network       *Network       `yaml:"network,omitempty" json:"network,omitempty"`
	Quadrilateral *Quadrilateral `yaml:"quadrilateral,omitempty" json:"quadrilateral,omitempty"`
	TrigLeveling  *TrigLeveling  `yaml:"trig_leveling,omitempty" json:"trig_leveling,omitempty"`
	Leveling      *Leveling      `yaml:"leveling,omitempty" json:"leveling,omitempty"`

	files fs.FS
}

// Leg is a traverse leg as booked.
type Leg struct {
	Line      string  `yaml:"line" json:"line"`
	Direction Angle   `yaml:"direction" json:"direction"`
	Distance  float64 `yaml:"distance" json:"distance"`
}

// Included switches a traverse to included angles.
type Included struct {
	InitialAzimuth Angle `yaml:"initial_azimuth" json:"initial_azimuth"`
	// Kind is "interior" (default) or "exterior".
	Kind   string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Closed bool   `yaml:"closed" json:"closed"`
}

// Traverse is the section of a traverse job.
type Traverse struct {
	Start traverse.Point `yaml:"start" json:"start"`
	Legs  []Leg          `yaml:"legs,omitempty" json:"legs,omitempty"`
	// LegsCSV is read with ingest.ReadLegs and appended to Legs.
	LegsCSV string `yaml:"legs_csv,omitempty" json:"-"`
	// Method is "bowditch" (default) or "none".
	Method   string    `yaml:"method,omitempty" json:"method,omitempty"`
	Included *Included `yaml:"included,omitempty" json:"included,omitempty"`
}

// Triangle is a chain triangle as booked.
type Triangle struct {
	P1        string `yaml:"p1" json:"p1"`
	P2        string `yaml:"p2" json:"p2"`
	P3        string `yaml:"p3" json:"p3"`
	A1        Angle  `yaml:"a1" json:"a1"`
	A2        Angle  `yaml:"a2" json:"a2"`
	A3        Angle  `yaml:"a3" json:"a3"`
	Direction string `yaml:"direction" json:"direction"`
}

// Triangulation is the section of a triangulation chain job.
type Triangulation struct {
	Start        triangulation.Point `yaml:"start" json:"start"`
	BaseDistance float64             `yaml:"base_distance" json:"base_distance"`
	BaseAzimuth  Angle               `yaml:"base_azimuth" json:"base_azimuth"`
	Triangles    []Triangle          `yaml:"triangles,omitempty" json:"triangles,omitempty"`
	TrianglesCSV string              `yaml:"triangles_csv,omitempty" json:"-"`
}

// Observation is a network observation as booked. Value is meters for
// distances and an angle otherwise; SD is meters or arcseconds.
type Observation struct {
	Type  string  `yaml:"type" json:"type"`
	At    string  `yaml:"at,omitempty" json:"at,omitempty"`
	From  string  `yaml:"from" json:"from"`
	To    string  `yaml:"to" json:"to"`
	Value Angle   `yaml:"value" json:"value"`
	SD    float64 `yaml:"sd" json:"sd"`
}

// Network is the section of a least-squares network job.
type Network struct {
	Stations        []network.Station `yaml:"stations,omitempty" json:"stations,omitempty"`
	StationsCSV     string            `yaml:"stations_csv,omitempty" json:"-"`
	Observations    []Observation     `yaml:"observations,omitempty" json:"observations,omitempty"`
	ObservationsCSV string            `yaml:"observations_csv,omitempty" json:"-"`
	MaxIterations   int               `yaml:"max_iterations,omitempty" json:"max_iterations,omitempty"`
	Tolerance       float64           `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
}

// QuadAngles are the eight angles of a braced quadrilateral as booked.
type QuadAngles struct {
	BAC Angle `yaml:"bac" json:"bac"`
	CAD Angle `yaml:"cad" json:"cad"`
	CBD Angle `yaml:"cbd" json:"cbd"`
	DBA Angle `yaml:"dba" json:"dba"`
	DCA Angle `yaml:"dca" json:"dca"`
	ACB Angle `yaml:"acb" json:"acb"`
	ADB Angle `yaml:"adb" json:"adb"`
	BDC Angle `yaml:"bdc" json:"bdc"`
}

// Quadrilateral is the section of a braced quadrilateral job.
type Quadrilateral struct {
	A               string              `yaml:"a" json:"a"`
	B               string              `yaml:"b" json:"b"`
	C               string              `yaml:"c" json:"c"`
	D               string              `yaml:"d" json:"d"`
	Start           triangulation.Point `yaml:"start" json:"start"`
	Baseline        float64             `yaml:"baseline" json:"baseline"`
	BaselineAzimuth Angle               `yaml:"baseline_azimuth" json:"baseline_azimuth"`
	Direction       string              `yaml:"direction" json:"direction"`
	Angles          QuadAngles          `yaml:"angles" json:"angles"`
	BaselineSD      float64             `yaml:"baseline_sd,omitempty" json:"baseline_sd,omitempty"`
	// AngleSD in arcseconds.
	AngleSD float64 `yaml:"angle_sd,omitempty" json:"angle_sd,omitempty"`
}

// TrigTarget is a trigonometric leveling target as booked.
type TrigTarget struct {
	Target       string  `yaml:"target" json:"target"`
	HD           float64 `yaml:"hd" json:"hd"`
	Zenith       Angle   `yaml:"zenith" json:"zenith"`
	TargetHeight float64 `yaml:"th" json:"th"`
}

// TrigLeveling is the section of a trigonometric leveling job.
type TrigLeveling struct {
	StationElevation float64      `yaml:"station_elevation" json:"station_elevation"`
	InstrumentHeight float64      `yaml:"instrument_height" json:"instrument_height"`
	Targets          []TrigTarget `yaml:"targets,omitempty" json:"targets,omitempty"`
	TargetsCSV       string       `yaml:"targets_csv,omitempty" json:"-"`
}

// Leveling is the section of a differential leveling job.
type Leveling struct {
	Start    float64            `yaml:"start" json:"start"`
	Close    *float64           `yaml:"close,omitempty" json:"close,omitempty"`
	Readings []leveling.Reading `yaml:"readings,omitempty" json:"readings,omitempty"`
	BookCSV  string             `yaml:"book_csv,omitempty" json:"-"`
}

// Decode reads a YAML (or JSON, which is YAML) job from r. Unknown fields
// are rejected. CSV references resolve only after WithFiles.
func Decode(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var j Job
	if err := dec.Decode(&j); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("job: empty document")
		}
		return nil, fmt.Errorf("job: decode: %w", err)
	}
	j.Kind = Kind(strings.ToLower(strings.TrimSpace(string(j.Kind))))
	return &j, nil
}

// Load reads the job file at path. CSV references resolve against the
// file's directory.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	j, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	j.files = os.DirFS(filepath.Dir(path))
	return j, nil
}

// WithFiles returns j resolving CSV references in fsys.
func (j *Job) WithFiles(fsys fs.FS) *Job {
	j.files = fsys
	return j
}

// open opens a CSV reference.
func (j *Job) open(name string) (fs.File, error) {
	if j.files == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, name)
	}
	f, err := j.files.Open(filepath.ToSlash(filepath.Clean(name)))
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	return f, nil
}
