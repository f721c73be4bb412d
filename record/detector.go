package record

// Detector describes the geometry of one physical gravitational-wave
// detector. Detectors are immutable after construction; every column is
// read-only and the Location/Response views alias the record's own arrays.
type Detector struct {
	name   string
	prefix string

	vertexLongitudeRadians float64
	vertexLatitudeRadians  float64
	vertexElevation        float32

	xArmAltitudeRadians float32
	xArmAzimuthRadians  float32
	yArmAltitudeRadians float32
	yArmAzimuthRadians  float32
	xArmMidpoint        float32
	yArmMidpoint        float32

	location [3]float64
	response [3][3]float32
}

// Name returns the detector's full name, e.g. "LHO_4k".
func (d *Detector) Name() string { return d.name }

// Prefix returns the detector's instrument prefix, e.g. "H1".
func (d *Detector) Prefix() string { return d.prefix }

// VertexLongitudeRadians returns the vertex longitude in radians.
func (d *Detector) VertexLongitudeRadians() float64 { return d.vertexLongitudeRadians }

// VertexLatitudeRadians returns the vertex latitude in radians.
func (d *Detector) VertexLatitudeRadians() float64 { return d.vertexLatitudeRadians }

// VertexElevation returns the vertex elevation in meters.
func (d *Detector) VertexElevation() float32 { return d.vertexElevation }

// XArmAltitudeRadians returns the x-arm altitude in radians.
func (d *Detector) XArmAltitudeRadians() float32 { return d.xArmAltitudeRadians }

// XArmAzimuthRadians returns the x-arm azimuth in radians.
func (d *Detector) XArmAzimuthRadians() float32 { return d.xArmAzimuthRadians }

// YArmAltitudeRadians returns the y-arm altitude in radians.
func (d *Detector) YArmAltitudeRadians() float32 { return d.yArmAltitudeRadians }

// YArmAzimuthRadians returns the y-arm azimuth in radians.
func (d *Detector) YArmAzimuthRadians() float32 { return d.yArmAzimuthRadians }

// XArmMidpoint returns the x-arm midpoint in meters.
func (d *Detector) XArmMidpoint() float32 { return d.xArmMidpoint }

// YArmMidpoint returns the y-arm midpoint in meters.
func (d *Detector) YArmMidpoint() float32 { return d.yArmMidpoint }

// Location returns the detector's geocentric location in meters as a
// 3-element view aliasing the record's internal array. The view stays valid
// for as long as it is reachable; it keeps the owning Detector alive.
func (d *Detector) Location() []float64 {
	return d.location[:]
}

// Response returns the detector's 3×3 response tensor as row views aliasing
// the record's internal arrays.
func (d *Detector) Response() [][]float32 {
	return [][]float32{
		d.response[0][:],
		d.response[1][:],
		d.response[2][:],
	}
}

var detectorColumns = map[string]column[Detector]{
	"name":                   roStrCol(func(d *Detector) string { return d.name }),
	"prefix":                 roStrCol(func(d *Detector) string { return d.prefix }),
	"vertexLongitudeRadians": roF64Col(func(d *Detector) float64 { return d.vertexLongitudeRadians }),
	"vertexLatitudeRadians":  roF64Col(func(d *Detector) float64 { return d.vertexLatitudeRadians }),
	"vertexElevation":        roF32Col(func(d *Detector) float32 { return d.vertexElevation }),
	"xArmAltitudeRadians":    roF32Col(func(d *Detector) float32 { return d.xArmAltitudeRadians }),
	"xArmAzimuthRadians":     roF32Col(func(d *Detector) float32 { return d.xArmAzimuthRadians }),
	"yArmAltitudeRadians":    roF32Col(func(d *Detector) float32 { return d.yArmAltitudeRadians }),
	"yArmAzimuthRadians":     roF32Col(func(d *Detector) float32 { return d.yArmAzimuthRadians }),
	"xArmMidpoint":           roF32Col(func(d *Detector) float32 { return d.xArmMidpoint }),
	"yArmMidpoint":           roF32Col(func(d *Detector) float32 { return d.yArmMidpoint }),
}

var detectorColumnNames = columnNames(detectorColumns)

// Get returns the named column's value.
func (d *Detector) Get(name string) (Value, error) {
	return getColumn(detectorColumns, d, name)
}

// Set always fails: every Detector column is read-only.
func (d *Detector) Set(name string, v Value) error {
	return setColumn(detectorColumns, d, name, v)
}

// Columns returns the sorted column names of the detector table.
func (d *Detector) Columns() []string {
	return detectorColumnNames
}
