package record

import "sync"

// detectorGeometry is one entry of the compiled-in geometry table. Locations
// are geocentric meters, angles are radians, the response tensor is the
// detector's dimensionless antenna response.
type detectorGeometry struct {
	name      string
	prefix    string
	longitude float64
	latitude  float64
	elevation float32
	xAlt      float32
	xAz       float32
	yAlt      float32
	yAz       float32
	xMid      float32
	yMid      float32
	location  [3]float64
	response  [3][3]float32
}

var detectorGeometries = []detectorGeometry{
	{
		name: "LHO_4k", prefix: "H1",
		longitude: -2.08405676917, latitude: 0.81079526383, elevation: 142.554,
		xAlt: -6.195e-4, xAz: 5.65487724844, yAlt: 1.25e-5, yAz: 4.08408092164,
		xMid: 1997.54, yMid: 1997.52,
		location: [3]float64{-2161414.92636, -3834695.17889, 4600350.22664},
		response: [3][3]float32{
			{-0.3926141, -0.0776130, -0.2473886},
			{-0.0776130, 0.3195244, 0.2279981},
			{-0.2473886, 0.2279981, 0.0730903},
		},
	},
	{
		name: "LHO_2k", prefix: "H2",
		longitude: -2.08405676917, latitude: 0.81079526383, elevation: 142.554,
		xAlt: -6.195e-4, xAz: 5.65487724844, yAlt: 1.25e-5, yAz: 4.08408092164,
		xMid: 1004.50, yMid: 1004.50,
		location: [3]float64{-2161414.92636, -3834695.17889, 4600350.22664},
		response: [3][3]float32{
			{-0.3926141, -0.0776130, -0.2473886},
			{-0.0776130, 0.3195244, 0.2279981},
			{-0.2473886, 0.2279981, 0.0730903},
		},
	},
	{
		name: "LLO_4k", prefix: "L1",
		longitude: -1.58430937078, latitude: 0.53342313506, elevation: -6.574,
		xAlt: -3.121e-4, xAz: 4.40317772346, yAlt: -6.107e-4, yAz: 2.88237979289,
		xMid: 1997.575, yMid: 1997.575,
		location: [3]float64{-74276.0447238, -5496283.71971, 3224257.01744},
		response: [3][3]float32{
			{0.4112809, 0.1402097, 0.2472943},
			{0.1402097, -0.1090056, -0.1816157},
			{0.2472943, -0.1816157, -0.3022755},
		},
	},
	{
		name: "VIRGO", prefix: "V1",
		longitude: 0.18333805213, latitude: 0.76151183984, elevation: 51.884,
		xAlt: 0, xAz: 0.33916285222, yAlt: 0, yAz: 5.05155183261,
		xMid: 1500.0, yMid: 1500.0,
		location: [3]float64{4546374.099, 842989.697626, 4378576.96241},
		response: [3][3]float32{
			{0.2438740, -0.0990838, -0.2325762},
			{-0.0990838, -0.4478258, 0.1878331},
			{-0.2325762, 0.1878331, 0.2039518},
		},
	},
	{
		name: "GEO_600", prefix: "G1",
		longitude: 0.17116780435, latitude: 0.91184982752, elevation: 114.425,
		xAlt: 0, xAz: 1.19360100484, yAlt: 0, yAz: 5.83039279401,
		xMid: 300.0, yMid: 300.0,
		location: [3]float64{3856309.94926, 666598.956317, 5019641.41725},
		response: [3][3]float32{
			{-0.0968250, -0.3657823, 0.1221373},
			{-0.3657823, 0.2229681, 0.2497174},
			{0.1221373, 0.2497174, -0.1261431},
		},
	},
	{
		name: "TAMA_300", prefix: "T1",
		longitude: 2.43536359469, latitude: 0.62267336022, elevation: 90.0,
		xAlt: 0, xAz: 4.71238898038, yAlt: 0, yAz: 3.14159265359,
		xMid: 150.0, yMid: 150.0,
		location: [3]float64{-3946409.7, 3366259.02, 3699150.69},
		response: [3][3]float32{
			{0.1121397, 0.3308421, -0.1802193},
			{0.3308421, 0.2177940, 0.1537258},
			{-0.1802193, 0.1537258, -0.3299337},
		},
	},
}

func newDetector(g detectorGeometry) *Detector {
	return &Detector{
		name:                   g.name,
		prefix:                 g.prefix,
		vertexLongitudeRadians: g.longitude,
		vertexLatitudeRadians:  g.latitude,
		vertexElevation:        g.elevation,
		xArmAltitudeRadians:    g.xAlt,
		xArmAzimuthRadians:     g.xAz,
		yArmAltitudeRadians:    g.yAlt,
		yArmAzimuthRadians:     g.yAz,
		xArmMidpoint:           g.xMid,
		yArmMidpoint:           g.yMid,
		location:               g.location,
		response:               g.response,
	}
}

var buildCachedDetectors = sync.OnceValue(func() map[string]*Detector {
	m := make(map[string]*Detector, len(detectorGeometries))
	for _, g := range detectorGeometries {
		m[g.name] = newDetector(g)
	}
	return m
})

// CachedDetectors returns the prebuilt Detector records for all known
// physical detectors, keyed by detector name. The Detector records are shared
// and immutable; the returned map is the caller's to modify.
func CachedDetectors() map[string]*Detector {
	cached := buildCachedDetectors()
	m := make(map[string]*Detector, len(cached))
	for name, d := range cached {
		m[name] = d
	}
	return m
}
