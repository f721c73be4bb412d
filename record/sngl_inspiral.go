package record

import (
	"github.com/hupe1980/gwtools/ilwd"
	"github.com/hupe1980/gwtools/layout"
)

// Inline string capacities of the sngl_inspiral table, terminator included.
const (
	IfoMaxLen     = 8
	SearchMaxLen  = 25
	ChannelMaxLen = 65
)

// Layout of the per-row name/id block. The identifier slots are 8-aligned
// past the string fields.
const (
	snglIfoOff       = 0
	snglSearchOff    = snglIfoOff + IfoMaxLen
	snglChannelOff   = snglSearchOff + SearchMaxLen
	snglProcessIDOff = 104
	snglEventIDOff   = snglProcessIDOff + 8
	snglBlockSize    = snglEventIDOff + 8
)

var (
	snglIfoField     = layout.Field{Offset: snglIfoOff, MaxLen: IfoMaxLen}
	snglSearchField  = layout.Field{Offset: snglSearchOff, MaxLen: SearchMaxLen}
	snglChannelField = layout.Field{Offset: snglChannelOff, MaxLen: ChannelMaxLen}
)

// SnglInspiral is one candidate-event row from an inspiral search pipeline.
//
// Numeric fields are plain struct members and freely writable. The three
// inline string columns (ifo, search, channel) and the two identifier slots
// live in a fixed-layout block and are reached through the layout accessors,
// which enforce the columns' declared capacities. Identifiers are stored
// inline and read directly off the row, so a freshly constructed row is
// immediately usable by the coincidence metric.
type SnglInspiral struct {
	reg *ilwd.Registry

	EndTime          int32
	EndTimeNS        int32
	EndTimeGMST      float64
	ImpulseTime      int32
	ImpulseTimeNS    int32
	TemplateDuration float64
	EventDuration    float64
	Amplitude        float32
	EffDistance      float32
	CoaPhase         float32
	Mass1            float32
	Mass2            float32
	MChirp           float32
	MTotal           float32
	Eta              float32
	Kappa            float32
	Chi              float32
	Tau0             float32
	Tau2             float32
	Tau3             float32
	Tau4             float32
	Tau5             float32
	TTotal           float32
	Psi0             float32
	Psi3             float32
	Alpha            float32
	Alpha1           float32
	Alpha2           float32
	Alpha3           float32
	Alpha4           float32
	Alpha5           float32
	Alpha6           float32
	Beta             float32
	FFinal           float32
	SNR              float32
	Chisq            float32
	ChisqDOF         int32
	BankChisq        float32
	BankChisqDOF     int32
	ContChisq        float32
	ContChisqDOF     int32
	SigmaSq          float64
	RsqVetoDuration  float32
	Gamma            [10]float32

	block [snglBlockSize]byte
}

// NewSnglInspiral creates a zeroed row bound to reg. The zero block leaves
// every inline string empty (terminated at offset zero) and both identifier
// payloads at zero.
func NewSnglInspiral(reg *ilwd.Registry) *SnglInspiral {
	return &SnglInspiral{reg: reg}
}

// Registry returns the identifier registry the row was built with.
func (r *SnglInspiral) Registry() *ilwd.Registry { return r.reg }

// Ifo returns the instrument code, e.g. "H1".
func (r *SnglInspiral) Ifo() (string, error) {
	return layout.GetString(r.block[:], snglIfoField)
}

// SetIfo sets the instrument code.
func (r *SnglInspiral) SetIfo(s string) error {
	return layout.SetString(r.block[:], snglIfoField, s)
}

// Search returns the search tag.
func (r *SnglInspiral) Search() (string, error) {
	return layout.GetString(r.block[:], snglSearchField)
}

// SetSearch sets the search tag.
func (r *SnglInspiral) SetSearch(s string) error {
	return layout.SetString(r.block[:], snglSearchField, s)
}

// Channel returns the channel name.
func (r *SnglInspiral) Channel() (string, error) {
	return layout.GetString(r.block[:], snglChannelField)
}

// SetChannel sets the channel name.
func (r *SnglInspiral) SetChannel(s string) error {
	return layout.SetString(r.block[:], snglChannelField, s)
}

func (r *SnglInspiral) rawProcessID() int64 {
	v, _ := layout.GetInt64(r.block[:], snglProcessIDOff)
	return v
}

func (r *SnglInspiral) setRawProcessID(v int64) {
	_ = layout.PutInt64(r.block[:], snglProcessIDOff, v)
}

func (r *SnglInspiral) rawEventID() int64 {
	v, _ := layout.GetInt64(r.block[:], snglEventIDOff)
	return v
}

func (r *SnglInspiral) setRawEventID(v int64) {
	_ = layout.PutInt64(r.block[:], snglEventIDOff, v)
}

// ProcessID mints the row's process identifier from the stored payload.
func (r *SnglInspiral) ProcessID() ilwd.ID {
	return r.reg.Process.New(r.rawProcessID())
}

// SetProcessID stores id's payload. id must have been minted by the
// registry's process class; otherwise SetProcessID fails with ErrWrongIDType
// and the stored payload is unchanged.
func (r *SnglInspiral) SetProcessID(id ilwd.ID) error {
	return r.Set("process_id", IDValue(id))
}

// EventID mints the row's event identifier from the stored payload.
func (r *SnglInspiral) EventID() ilwd.ID {
	return r.reg.SnglInspiral.New(r.rawEventID())
}

// SetEventID stores id's payload. id must have been minted by the registry's
// sngl_inspiral event class.
func (r *SnglInspiral) SetEventID(id ilwd.ID) error {
	return r.Set("event_id", IDValue(id))
}

func snglBlock(r *SnglInspiral) []byte { return r.block[:] }

var snglInspiralColumns = map[string]column[SnglInspiral]{
	"end_time":          i32Col(func(r *SnglInspiral) *int32 { return &r.EndTime }),
	"end_time_ns":       i32Col(func(r *SnglInspiral) *int32 { return &r.EndTimeNS }),
	"end_time_gmst":     f64Col(func(r *SnglInspiral) *float64 { return &r.EndTimeGMST }),
	"impulse_time":      i32Col(func(r *SnglInspiral) *int32 { return &r.ImpulseTime }),
	"impulse_time_ns":   i32Col(func(r *SnglInspiral) *int32 { return &r.ImpulseTimeNS }),
	"template_duration": f64Col(func(r *SnglInspiral) *float64 { return &r.TemplateDuration }),
	"event_duration":    f64Col(func(r *SnglInspiral) *float64 { return &r.EventDuration }),
	"amplitude":         f32Col(func(r *SnglInspiral) *float32 { return &r.Amplitude }),
	"eff_distance":      f32Col(func(r *SnglInspiral) *float32 { return &r.EffDistance }),
	"coa_phase":         f32Col(func(r *SnglInspiral) *float32 { return &r.CoaPhase }),
	"mass1":             f32Col(func(r *SnglInspiral) *float32 { return &r.Mass1 }),
	"mass2":             f32Col(func(r *SnglInspiral) *float32 { return &r.Mass2 }),
	"mchirp":            f32Col(func(r *SnglInspiral) *float32 { return &r.MChirp }),
	"mtotal":            f32Col(func(r *SnglInspiral) *float32 { return &r.MTotal }),
	"eta":               f32Col(func(r *SnglInspiral) *float32 { return &r.Eta }),
	"kappa":             f32Col(func(r *SnglInspiral) *float32 { return &r.Kappa }),
	"chi":               f32Col(func(r *SnglInspiral) *float32 { return &r.Chi }),
	"tau0":              f32Col(func(r *SnglInspiral) *float32 { return &r.Tau0 }),
	"tau2":              f32Col(func(r *SnglInspiral) *float32 { return &r.Tau2 }),
	"tau3":              f32Col(func(r *SnglInspiral) *float32 { return &r.Tau3 }),
	"tau4":              f32Col(func(r *SnglInspiral) *float32 { return &r.Tau4 }),
	"tau5":              f32Col(func(r *SnglInspiral) *float32 { return &r.Tau5 }),
	"ttotal":            f32Col(func(r *SnglInspiral) *float32 { return &r.TTotal }),
	"psi0":              f32Col(func(r *SnglInspiral) *float32 { return &r.Psi0 }),
	"psi3":              f32Col(func(r *SnglInspiral) *float32 { return &r.Psi3 }),
	"alpha":             f32Col(func(r *SnglInspiral) *float32 { return &r.Alpha }),
	"alpha1":            f32Col(func(r *SnglInspiral) *float32 { return &r.Alpha1 }),
	"alpha2":            f32Col(func(r *SnglInspiral) *float32 { return &r.Alpha2 }),
	"alpha3":            f32Col(func(r *SnglInspiral) *float32 { return &r.Alpha3 }),
	"alpha4":            f32Col(func(r *SnglInspiral) *float32 { return &r.Alpha4 }),
	"alpha5":            f32Col(func(r *SnglInspiral) *float32 { return &r.Alpha5 }),
	"alpha6":            f32Col(func(r *SnglInspiral) *float32 { return &r.Alpha6 }),
	"beta":              f32Col(func(r *SnglInspiral) *float32 { return &r.Beta }),
	"f_final":           f32Col(func(r *SnglInspiral) *float32 { return &r.FFinal }),
	"snr":               f32Col(func(r *SnglInspiral) *float32 { return &r.SNR }),
	"chisq":             f32Col(func(r *SnglInspiral) *float32 { return &r.Chisq }),
	"chisq_dof":         i32Col(func(r *SnglInspiral) *int32 { return &r.ChisqDOF }),
	"bank_chisq":        f32Col(func(r *SnglInspiral) *float32 { return &r.BankChisq }),
	"bank_chisq_dof":    i32Col(func(r *SnglInspiral) *int32 { return &r.BankChisqDOF }),
	"cont_chisq":        f32Col(func(r *SnglInspiral) *float32 { return &r.ContChisq }),
	"cont_chisq_dof":    i32Col(func(r *SnglInspiral) *int32 { return &r.ContChisqDOF }),
	"sigmasq":           f64Col(func(r *SnglInspiral) *float64 { return &r.SigmaSq }),
	"rsqveto_duration":  f32Col(func(r *SnglInspiral) *float32 { return &r.RsqVetoDuration }),
	"Gamma0":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[0] }),
	"Gamma1":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[1] }),
	"Gamma2":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[2] }),
	"Gamma3":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[3] }),
	"Gamma4":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[4] }),
	"Gamma5":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[5] }),
	"Gamma6":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[6] }),
	"Gamma7":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[7] }),
	"Gamma8":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[8] }),
	"Gamma9":            f32Col(func(r *SnglInspiral) *float32 { return &r.Gamma[9] }),
	"ifo":               strCol(snglBlock, snglIfoField),
	"search":            strCol(snglBlock, snglSearchField),
	"channel":           strCol(snglBlock, snglChannelField),
	"process_id": idCol(
		func(r *SnglInspiral) *ilwd.Class { return r.reg.Process },
		(*SnglInspiral).rawProcessID,
		(*SnglInspiral).setRawProcessID,
	),
	"event_id": idCol(
		func(r *SnglInspiral) *ilwd.Class { return r.reg.SnglInspiral },
		(*SnglInspiral).rawEventID,
		(*SnglInspiral).setRawEventID,
	),
}

var snglInspiralColumnNames = columnNames(snglInspiralColumns)

// Get returns the named column's value.
func (r *SnglInspiral) Get(name string) (Value, error) {
	return getColumn(snglInspiralColumns, r, name)
}

// Set assigns the named column. A failed assignment leaves the column
// unchanged.
func (r *SnglInspiral) Set(name string, v Value) error {
	return setColumn(snglInspiralColumns, r, name, v)
}

// Columns returns the sorted column names of the sngl_inspiral table.
func (r *SnglInspiral) Columns() []string {
	return snglInspiralColumnNames
}
