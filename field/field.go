// Package field enumerates the scalar slots of SEG-Y trace and binary
// headers and extracts or patches their big-endian values in raw header
// buffers.
//
// A Tag is the 1-based byte position of the slot, exactly as the SEG-Y
// rev1 standard numbers them: trace header fields run 1..240, binary
// header fields 3201..3600. Widths (2 or 4 bytes, always signed) come
// from the standard layout and are looked up per tag.
package field

import (
	"encoding/binary"
	"fmt"
)

// Tag identifies one scalar slot in a trace or binary header by its
// 1-based standard byte position.
type Tag int

// Trace header fields.
const (
	TraceSequenceLine    Tag = 1
	TraceSequenceFile    Tag = 5
	FieldRecord          Tag = 9
	TraceNumber          Tag = 13
	EnergySourcePoint    Tag = 17
	CDP                  Tag = 21
	CDPTrace             Tag = 25
	TraceIdentification  Tag = 29
	SummedTraces         Tag = 31
	StackedTraces        Tag = 33
	DataUse              Tag = 35
	Offset               Tag = 37
	ReceiverGroupElev    Tag = 41
	SourceSurfaceElev    Tag = 45
	SourceDepth          Tag = 49
	ReceiverDatumElev    Tag = 53
	SourceDatumElev      Tag = 57
	SourceWaterDepth     Tag = 61
	GroupWaterDepth      Tag = 65
	ElevationScalar      Tag = 69
	SourceGroupScalar    Tag = 71
	SourceX              Tag = 73
	SourceY              Tag = 77
	GroupX               Tag = 81
	GroupY               Tag = 85
	CoordinateUnits      Tag = 89
	WeatheringVelocity   Tag = 91
	SubWeatheringVel     Tag = 93
	SourceUpholeTime     Tag = 95
	GroupUpholeTime      Tag = 97
	SourceStaticCorr     Tag = 99
	GroupStaticCorr      Tag = 101
	TotalStaticApplied   Tag = 103
	LagTimeA             Tag = 105
	LagTimeB             Tag = 107
	DelayRecordingTime   Tag = 109
	MuteTimeStart        Tag = 111
	MuteTimeEnd          Tag = 113
	SampleCount          Tag = 115
	SampleInterval       Tag = 117
	GainType             Tag = 119
	InstrGainConstant    Tag = 121
	InstrInitialGain     Tag = 123
	Correlated           Tag = 125
	SweepFrequencyStart  Tag = 127
	SweepFrequencyEnd    Tag = 129
	SweepLength          Tag = 131
	SweepType            Tag = 133
	SweepTaperStart      Tag = 135
	SweepTaperEnd        Tag = 137
	TaperType            Tag = 139
	AliasFilterFrequency Tag = 141
	AliasFilterSlope     Tag = 143
	NotchFilterFrequency Tag = 145
	NotchFilterSlope     Tag = 147
	LowCutFrequency      Tag = 149
	HighCutFrequency     Tag = 151
	LowCutSlope          Tag = 153
	HighCutSlope         Tag = 155
	YearDataRecorded     Tag = 157
	DayOfYear            Tag = 159
	HourOfDay            Tag = 161
	MinuteOfHour         Tag = 163
	SecondOfMinute       Tag = 165
	TimeBaseCode         Tag = 167
	TraceWeightingFactor Tag = 169
	GeophoneGroupRoll1   Tag = 171
	GeophoneGroupFirst   Tag = 173
	GeophoneGroupLast    Tag = 175
	GapSize              Tag = 177
	OverTravel           Tag = 179
	CDPX                 Tag = 181
	CDPY                 Tag = 185
	Inline               Tag = 189
	Crossline            Tag = 193
	ShotPoint            Tag = 197
	ShotPointScalar      Tag = 201
	MeasurementUnit      Tag = 203
	TransductionMantissa Tag = 205
	TransductionPower    Tag = 209
	TransductionUnit     Tag = 211
	TraceIdentifier      Tag = 213
	ScalarTraceHeader    Tag = 215
	SourceType           Tag = 217
	SourceEnergyDirMant  Tag = 219
	SourceEnergyDirExp   Tag = 223
	SourceMeasureMant    Tag = 225
	SourceMeasureExp     Tag = 229
	SourceMeasureUnit    Tag = 231
)

// Binary header fields. Positions are 3201-based per the standard; Get
// and Put subtract BinBase when the buffer is the 400-byte binary
// header alone.
const (
	BinJobID             Tag = 3201
	BinLineNumber        Tag = 3205
	BinReelNumber        Tag = 3209
	BinTraces            Tag = 3213
	BinAuxTraces         Tag = 3215
	BinInterval          Tag = 3217
	BinIntervalOriginal  Tag = 3219
	BinSamples           Tag = 3221
	BinSamplesOriginal   Tag = 3223
	BinFormat            Tag = 3225
	BinEnsembleFold      Tag = 3227
	BinSortingCode       Tag = 3229
	BinVerticalSum       Tag = 3231
	BinSweepFreqStart    Tag = 3233
	BinSweepFreqEnd      Tag = 3235
	BinSweepLength       Tag = 3237
	BinSweep             Tag = 3239
	BinSweepChannel      Tag = 3241
	BinSweepTaperStart   Tag = 3243
	BinSweepTaperEnd     Tag = 3245
	BinTaper             Tag = 3247
	BinCorrelatedTraces  Tag = 3249
	BinBinaryGainRecov   Tag = 3251
	BinAmplitudeRecov    Tag = 3253
	BinMeasurementSystem Tag = 3255
	BinImpulsePolarity   Tag = 3257
	BinVibratoryPolarity Tag = 3259
	BinSEGYRevision      Tag = 3501
	BinTraceFlag         Tag = 3503
	BinExtendedHeaders   Tag = 3505
)

// BinBase is subtracted from binary header tags to address the 400-byte
// binary header buffer directly.
const BinBase = 3200

// TraceHeaderSize is the fixed byte size of a trace header.
const TraceHeaderSize = 240

// BinHeaderSize is the fixed byte size of the binary file header.
const BinHeaderSize = 400

var widths = map[Tag]int{
	TraceSequenceLine: 4, TraceSequenceFile: 4, FieldRecord: 4,
	TraceNumber: 4, EnergySourcePoint: 4, CDP: 4, CDPTrace: 4,
	TraceIdentification: 2, SummedTraces: 2, StackedTraces: 2,
	DataUse: 2, Offset: 4, ReceiverGroupElev: 4, SourceSurfaceElev: 4,
	SourceDepth: 4, ReceiverDatumElev: 4, SourceDatumElev: 4,
	SourceWaterDepth: 4, GroupWaterDepth: 4, ElevationScalar: 2,
	SourceGroupScalar: 2, SourceX: 4, SourceY: 4, GroupX: 4, GroupY: 4,
	CoordinateUnits: 2, WeatheringVelocity: 2, SubWeatheringVel: 2,
	SourceUpholeTime: 2, GroupUpholeTime: 2, SourceStaticCorr: 2,
	GroupStaticCorr: 2, TotalStaticApplied: 2, LagTimeA: 2, LagTimeB: 2,
	DelayRecordingTime: 2, MuteTimeStart: 2, MuteTimeEnd: 2,
	SampleCount: 2, SampleInterval: 2, GainType: 2, InstrGainConstant: 2,
	InstrInitialGain: 2, Correlated: 2, SweepFrequencyStart: 2,
	SweepFrequencyEnd: 2, SweepLength: 2, SweepType: 2,
	SweepTaperStart: 2, SweepTaperEnd: 2, TaperType: 2,
	AliasFilterFrequency: 2, AliasFilterSlope: 2, NotchFilterFrequency: 2,
	NotchFilterSlope: 2, LowCutFrequency: 2, HighCutFrequency: 2,
	LowCutSlope: 2, HighCutSlope: 2, YearDataRecorded: 2, DayOfYear: 2,
	HourOfDay: 2, MinuteOfHour: 2, SecondOfMinute: 2, TimeBaseCode: 2,
	TraceWeightingFactor: 2, GeophoneGroupRoll1: 2, GeophoneGroupFirst: 2,
	GeophoneGroupLast: 2, GapSize: 2, OverTravel: 2, CDPX: 4, CDPY: 4,
	Inline: 4, Crossline: 4, ShotPoint: 4, ShotPointScalar: 2,
	MeasurementUnit: 2, TransductionMantissa: 4, TransductionPower: 2,
	TransductionUnit: 2, TraceIdentifier: 2, ScalarTraceHeader: 2,
	SourceType: 2, SourceEnergyDirMant: 4, SourceEnergyDirExp: 2,
	SourceMeasureMant: 4, SourceMeasureExp: 2, SourceMeasureUnit: 2,

	BinJobID: 4, BinLineNumber: 4, BinReelNumber: 4, BinTraces: 2,
	BinAuxTraces: 2, BinInterval: 2, BinIntervalOriginal: 2,
	BinSamples: 2, BinSamplesOriginal: 2, BinFormat: 2,
	BinEnsembleFold: 2, BinSortingCode: 2, BinVerticalSum: 2,
	BinSweepFreqStart: 2, BinSweepFreqEnd: 2, BinSweepLength: 2,
	BinSweep: 2, BinSweepChannel: 2, BinSweepTaperStart: 2,
	BinSweepTaperEnd: 2, BinTaper: 2, BinCorrelatedTraces: 2,
	BinBinaryGainRecov: 2, BinAmplitudeRecov: 2, BinMeasurementSystem: 2,
	BinImpulsePolarity: 2, BinVibratoryPolarity: 2, BinSEGYRevision: 2,
	BinTraceFlag: 2, BinExtendedHeaders: 2,
}

// Width returns the byte width of the slot, or 0 if the tag is not a
// known field position.
func (t Tag) Width() int {
	return widths[t]
}

// Known reports whether the tag names a standard field position.
func (t Tag) Known() bool {
	_, ok := widths[t]
	return ok
}

// offsetInto translates a tag to a 0-based offset within buf, which is
// either a 240-byte trace header or a 400-byte binary header.
func offsetInto(t Tag, buf []byte) (int, error) {
	w, ok := widths[t]
	if !ok {
		return 0, fmt.Errorf("unknown header field at byte %d", int(t))
	}
	off := int(t) - 1
	if off >= BinBase {
		off -= BinBase
	}
	if off+w > len(buf) {
		return 0, fmt.Errorf("field at byte %d overruns %d-byte header", int(t), len(buf))
	}
	return off, nil
}

// Get extracts the signed big-endian value of the field from a raw
// header buffer.
func Get(buf []byte, t Tag) (int, error) {
	off, err := offsetInto(t, buf)
	if err != nil {
		return 0, err
	}
	switch t.Width() {
	case 2:
		return int(int16(binary.BigEndian.Uint16(buf[off:]))), nil
	case 4:
		return int(int32(binary.BigEndian.Uint32(buf[off:]))), nil
	}
	return 0, fmt.Errorf("unsupported field width %d", t.Width())
}

// Put patches the field's slot in a raw header buffer with the signed
// big-endian encoding of v.
func Put(buf []byte, t Tag, v int) error {
	off, err := offsetInto(t, buf)
	if err != nil {
		return err
	}
	switch t.Width() {
	case 2:
		binary.BigEndian.PutUint16(buf[off:], uint16(int16(v)))
	case 4:
		binary.BigEndian.PutUint32(buf[off:], uint32(int32(v)))
	default:
		return fmt.Errorf("unsupported field width %d", t.Width())
	}
	return nil
}
