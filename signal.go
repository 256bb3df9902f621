package sonargeo

// TxSignalKind is the closed set of transmit signal shapes.
type TxSignalKind int

const (
	TxSignalUnknown TxSignalKind = iota
	TxSignalCW
	TxSignalFMUpSweep
	TxSignalFMDownSweep
)

func (k TxSignalKind) String() string {
	switch k {
	case TxSignalCW:
		return "CW"
	case TxSignalFMUpSweep:
		return "FM_UP_SWEEP"
	case TxSignalFMDownSweep:
		return "FM_DOWN_SWEEP"
	default:
		return "UNKNOWN"
	}
}

// CWSignalParameters describes a continuous-wave transmit pulse.
type CWSignalParameters struct {
	CenterFrequency        float32
	Bandwidth              float32
	EffectivePulseDuration float32
}

// FMSignalParameters describes a frequency-modulated (chirp) transmit
// pulse; SweepDirection is +1 for up-sweep, -1 for down-sweep.
type FMSignalParameters struct {
	CenterFrequency        float32
	Bandwidth              float32
	EffectivePulseDuration float32
	SweepDirection         int
}

// GenericSignalParameters describes a transmit pulse whose shape is not
// resolved to CW or FM.
type GenericSignalParameters struct {
	CenterFrequency        float32
	Bandwidth              float32
	EffectivePulseDuration float32
}

// TxSignalParameters is a closed tagged union over the three transmit
// signal shapes, modelled as a Go-idiomatic tagged struct rather than an
// interface hierarchy, per the "variant dispatch" design note: exactly
// one of the CW/FM/Generic fields is populated, selected by Kind.
type TxSignalParameters struct {
	Kind    TxSignalKind
	CW      CWSignalParameters
	FM      FMSignalParameters
	Generic GenericSignalParameters
}

// NewCWTxSignal wraps CW parameters as a tagged union value.
func NewCWTxSignal(p CWSignalParameters) TxSignalParameters {
	return TxSignalParameters{Kind: TxSignalCW, CW: p}
}

// NewFMTxSignal wraps FM parameters, tagging the kind from the sweep
// direction.
func NewFMTxSignal(p FMSignalParameters) TxSignalParameters {
	kind := TxSignalFMDownSweep
	if p.SweepDirection >= 0 {
		kind = TxSignalFMUpSweep
	}
	return TxSignalParameters{Kind: kind, FM: p}
}

// NewGenericTxSignal wraps unresolved signal parameters.
func NewGenericTxSignal(p GenericSignalParameters) TxSignalParameters {
	return TxSignalParameters{Kind: TxSignalUnknown, Generic: p}
}

// GetTxSignalType is a pure projection onto the variant's tag, mirroring
// the get_tx_signal_type() method each source variant exposes.
func (t TxSignalParameters) GetTxSignalType() TxSignalKind {
	return t.Kind
}
