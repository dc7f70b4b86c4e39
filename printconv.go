// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ConversionID identifies which conversion pattern or shared lookup renders
// a raw value for display. It is a closed set resolved offline: the table
// generator structurally matches each manufacturer's declared mapping
// against this catalog and leaves unmatched mappings on ConvNone for manual
// triage, never inventing one at runtime.
//
//go:generate stringer -type=ConversionID
type ConversionID uint16

const (
	// ConvNone renders the raw value unchanged and is counted as unmapped.
	ConvNone ConversionID = iota

	// Binary and tri-state enumerations.
	ConvOnOff
	ConvYesNo
	ConvOffOnAuto
	ConvAutoManual
	ConvEnabledDisabled

	// Ordered quality/strength scales.
	ConvLowNormalHigh
	ConvOffLowNormalHigh
	ConvQuality
	ConvContrast
	ConvSaturation
	ConvSharpness

	// Standard EXIF enumerations.
	ConvOrientation
	ConvResolutionUnit
	ConvYCbCrPositioning
	ConvColorSpace
	ConvFlash
	ConvExposureProgram
	ConvMeteringMode
	ConvLightSource
	ConvWhiteBalance
	ConvSceneCaptureType
	ConvGainControl
	ConvCustomRendered
	ConvExposureMode
	ConvSubjectDistanceRange
	ConvSensingMethod
	ConvFileSource
	ConvSceneType
	ConvFlashpixVersion

	// Numeric formatting rules.
	ConvInt
	ConvFNumber
	ConvExposureTime
	ConvFocalLength
	ConvFocalLength35
	ConvAPEXAperture
	ConvAPEXShutterSpeed
	ConvEV
	ConvMeters
	ConvMillimeters
	ConvPercent
	ConvDecimal1
	ConvDecimal2
	ConvSeconds

	// Structural renderings.
	ConvDimensions
	ConvSpaceSep
	ConvVersion
	ConvTimestamp
	ConvDegrees
	ConvUserComment
	ConvBinary
	ConvString

	// Shared-table variants. Each references one LookupTable by id; the
	// table itself lives in the generated data and is never copied per tag.
	ConvNikonLensID
	ConvCanonLensType
	ConvCanonWhiteBalance
	ConvNikonQuality
)

type convKind uint8

const (
	convRaw convKind = iota
	convEnum
	convLookup
	convFunc
)

type conversionSpec struct {
	kind convKind

	enum  map[int64]string
	table LookupID
	fn    func(TagValue, *Tables) string
}

// Reusable enumerations shared by many ConversionIDs. Tri-state and larger
// enumerations referenced by multiple manufacturers are defined once here.
var (
	enumOnOff            = map[int64]string{0: "Off", 1: "On"}
	enumYesNo            = map[int64]string{0: "No", 1: "Yes"}
	enumOffOnAuto        = map[int64]string{0: "Off", 1: "On", 2: "Auto"}
	enumAutoManual       = map[int64]string{0: "Auto", 1: "Manual"}
	enumEnabledDisabled  = map[int64]string{0: "Disabled", 1: "Enabled"}
	enumLowNormalHigh    = map[int64]string{0: "Low", 1: "Normal", 2: "High"}
	enumOffLowNormalHigh = map[int64]string{0: "Off", 1: "Low", 2: "Normal", 3: "High"}
	enumQuality          = map[int64]string{1: "Economy", 2: "Normal", 3: "Fine", 4: "RAW", 5: "Superfine"}
	enumNormalSoftHard   = map[int64]string{0: "Normal", 1: "Soft", 2: "Hard"}
	enumNormalLowHigh    = map[int64]string{0: "Normal", 1: "Low", 2: "High"}

	enumOrientation = map[int64]string{
		1: "Horizontal (normal)",
		2: "Mirror horizontal",
		3: "Rotate 180",
		4: "Mirror vertical",
		5: "Mirror horizontal and rotate 270 CW",
		6: "Rotate 90 CW",
		7: "Mirror horizontal and rotate 90 CW",
		8: "Rotate 270 CW",
	}
	enumResolutionUnit   = map[int64]string{1: "None", 2: "inches", 3: "cm"}
	enumYCbCrPositioning = map[int64]string{1: "Centered", 2: "Co-sited"}
	enumColorSpace       = map[int64]string{
		1:      "sRGB",
		2:      "Adobe RGB",
		0xfffd: "Wide Gamut RGB",
		0xfffe: "ICC Profile",
		0xffff: "Uncalibrated",
	}
	enumFlash = map[int64]string{
		0x00: "No Flash",
		0x01: "Fired",
		0x05: "Fired, Return not detected",
		0x07: "Fired, Return detected",
		0x08: "On, Did not fire",
		0x09: "On, Fired",
		0x0d: "On, Return not detected",
		0x0f: "On, Return detected",
		0x10: "Off, Did not fire",
		0x14: "Off, Did not fire, Return not detected",
		0x18: "Auto, Did not fire",
		0x19: "Auto, Fired",
		0x1d: "Auto, Fired, Return not detected",
		0x1f: "Auto, Fired, Return detected",
		0x20: "No flash function",
		0x30: "Off, No flash function",
		0x41: "Fired, Red-eye reduction",
		0x45: "Fired, Red-eye reduction, Return not detected",
		0x47: "Fired, Red-eye reduction, Return detected",
		0x49: "On, Red-eye reduction",
		0x4d: "On, Red-eye reduction, Return not detected",
		0x4f: "On, Red-eye reduction, Return detected",
		0x50: "Off, Red-eye reduction",
		0x58: "Auto, Did not fire, Red-eye reduction",
		0x59: "Auto, Fired, Red-eye reduction",
		0x5d: "Auto, Fired, Red-eye reduction, Return not detected",
		0x5f: "Auto, Fired, Red-eye reduction, Return detected",
	}
	enumExposureProgram = map[int64]string{
		0: "Not Defined",
		1: "Manual",
		2: "Program AE",
		3: "Aperture-priority AE",
		4: "Shutter speed priority AE",
		5: "Creative (Slow speed)",
		6: "Action (High speed)",
		7: "Portrait",
		8: "Landscape",
		9: "Bulb",
	}
	enumMeteringMode = map[int64]string{
		0:   "Unknown",
		1:   "Average",
		2:   "Center-weighted average",
		3:   "Spot",
		4:   "Multi-spot",
		5:   "Multi-segment",
		6:   "Partial",
		255: "Other",
	}
	enumLightSource = map[int64]string{
		0:   "Unknown",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten (Incandescent)",
		4:   "Flash",
		9:   "Fine Weather",
		10:  "Cloudy",
		11:  "Shade",
		12:  "Daylight Fluorescent",
		13:  "Day White Fluorescent",
		14:  "Cool White Fluorescent",
		15:  "White Fluorescent",
		17:  "Standard Light A",
		18:  "Standard Light B",
		19:  "Standard Light C",
		20:  "D55",
		21:  "D65",
		22:  "D75",
		23:  "D50",
		24:  "ISO Studio Tungsten",
		255: "Other",
	}
	enumSceneCaptureType = map[int64]string{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night",
		4: "Other",
	}
	enumGainControl = map[int64]string{
		0: "None",
		1: "Low gain up",
		2: "High gain up",
		3: "Low gain down",
		4: "High gain down",
	}
	enumCustomRendered = map[int64]string{0: "Normal", 1: "Custom"}
	enumExposureMode   = map[int64]string{0: "Auto", 1: "Manual", 2: "Auto bracket"}
	enumSubjectDistanceRange = map[int64]string{
		0: "Unknown",
		1: "Macro",
		2: "Close",
		3: "Distant",
	}
	enumSensingMethod = map[int64]string{
		1: "Not defined",
		2: "One-chip color area",
		3: "Two-chip color area",
		4: "Three-chip color area",
		5: "Color sequential area",
		7: "Trilinear",
		8: "Color sequential linear",
	}
	enumFileSource = map[int64]string{
		1: "Film Scanner",
		2: "Reflection Print Scanner",
		3: "Digital Camera",
	}
	enumSceneType = map[int64]string{1: "Directly photographed"}
)

// conversions is the pattern catalog. Dispatch is a static map keyed by the
// closed ConversionID set; there is no runtime-evaluated expression path.
var conversions = map[ConversionID]conversionSpec{
	ConvNone: {kind: convRaw},

	ConvOnOff:            {kind: convEnum, enum: enumOnOff},
	ConvYesNo:            {kind: convEnum, enum: enumYesNo},
	ConvOffOnAuto:        {kind: convEnum, enum: enumOffOnAuto},
	ConvAutoManual:       {kind: convEnum, enum: enumAutoManual},
	ConvEnabledDisabled:  {kind: convEnum, enum: enumEnabledDisabled},
	ConvLowNormalHigh:    {kind: convEnum, enum: enumLowNormalHigh},
	ConvOffLowNormalHigh: {kind: convEnum, enum: enumOffLowNormalHigh},
	ConvQuality:          {kind: convEnum, enum: enumQuality},
	ConvContrast:         {kind: convEnum, enum: enumNormalSoftHard},
	ConvSaturation:       {kind: convEnum, enum: enumNormalLowHigh},
	ConvSharpness:        {kind: convEnum, enum: enumNormalSoftHard},

	ConvOrientation:          {kind: convEnum, enum: enumOrientation},
	ConvResolutionUnit:       {kind: convEnum, enum: enumResolutionUnit},
	ConvYCbCrPositioning:     {kind: convEnum, enum: enumYCbCrPositioning},
	ConvColorSpace:           {kind: convEnum, enum: enumColorSpace},
	ConvFlash:                {kind: convEnum, enum: enumFlash},
	ConvExposureProgram:      {kind: convEnum, enum: enumExposureProgram},
	ConvMeteringMode:         {kind: convEnum, enum: enumMeteringMode},
	ConvLightSource:          {kind: convEnum, enum: enumLightSource},
	ConvWhiteBalance:         {kind: convEnum, enum: enumAutoManual},
	ConvSceneCaptureType:     {kind: convEnum, enum: enumSceneCaptureType},
	ConvGainControl:          {kind: convEnum, enum: enumGainControl},
	ConvCustomRendered:       {kind: convEnum, enum: enumCustomRendered},
	ConvExposureMode:         {kind: convEnum, enum: enumExposureMode},
	ConvSubjectDistanceRange: {kind: convEnum, enum: enumSubjectDistanceRange},
	ConvSensingMethod:        {kind: convEnum, enum: enumSensingMethod},
	ConvFileSource:           {kind: convEnum, enum: enumFileSource},
	ConvSceneType:            {kind: convEnum, enum: enumSceneType},

	ConvInt:              {kind: convFunc, fn: convertInt},
	ConvFNumber:          {kind: convFunc, fn: convertFNumber},
	ConvExposureTime:     {kind: convFunc, fn: convertExposureTime},
	ConvFocalLength:      {kind: convFunc, fn: convertFocalLength},
	ConvFocalLength35:    {kind: convFunc, fn: convertFocalLength35},
	ConvAPEXAperture:     {kind: convFunc, fn: convertAPEXAperture},
	ConvAPEXShutterSpeed: {kind: convFunc, fn: convertAPEXShutterSpeed},
	ConvEV:               {kind: convFunc, fn: convertEV},
	ConvMeters:           {kind: convFunc, fn: convertMeters},
	ConvMillimeters:      {kind: convFunc, fn: convertMillimeters},
	ConvPercent:          {kind: convFunc, fn: convertPercent},
	ConvDecimal1:         {kind: convFunc, fn: convertDecimal1},
	ConvDecimal2:         {kind: convFunc, fn: convertDecimal2},
	ConvSeconds:          {kind: convFunc, fn: convertSeconds},

	ConvDimensions:      {kind: convFunc, fn: convertDimensions},
	ConvSpaceSep:        {kind: convFunc, fn: convertSpaceSep},
	ConvVersion:         {kind: convFunc, fn: convertVersion},
	ConvFlashpixVersion: {kind: convFunc, fn: convertVersion},
	ConvTimestamp:       {kind: convFunc, fn: convertTimestamp},
	ConvDegrees:         {kind: convFunc, fn: convertDegrees},
	ConvUserComment:     {kind: convFunc, fn: convertUserComment},
	ConvBinary:          {kind: convFunc, fn: convertBinary},
	ConvString:          {kind: convFunc, fn: convertString},

	ConvNikonLensID:       {kind: convLookup, table: LookupNikonLensID},
	ConvCanonLensType:     {kind: convLookup, table: LookupCanonLensType},
	ConvCanonWhiteBalance: {kind: convLookup, table: LookupCanonWhiteBalance},
	ConvNikonQuality:      {kind: convLookup, table: LookupNikonQuality},
}

// Convert renders a raw value via the conversion id's pattern or shared
// lookup. It is total: every id produces a non-empty string for every value
// shape, defaulting to an "Unknown (<raw>)" rendering, never an error.
func Convert(v TagValue, id ConversionID, tables *Tables) string {
	spec, found := conversions[id]
	if !found {
		return unknownOf(v)
	}
	switch spec.kind {
	case convRaw:
		return nonEmpty(v.Text())
	case convEnum:
		n, ok := v.ToInt64()
		if !ok {
			return unknownOf(v)
		}
		if s, found := spec.enum[n]; found {
			return s
		}
		return fmt.Sprintf("Unknown (%d)", n)
	case convLookup:
		n, ok := v.ToInt64()
		if !ok {
			return unknownOf(v)
		}
		if s, found := tables.Lookup(spec.table)[n]; found {
			return s
		}
		return fmt.Sprintf("Unknown (%d)", n)
	case convFunc:
		return nonEmpty(spec.fn(v, tables))
	default:
		return unknownOf(v)
	}
}

func unknownOf(v TagValue) string {
	if n, ok := v.ToInt64(); ok {
		return fmt.Sprintf("Unknown (%d)", n)
	}
	return fmt.Sprintf("Unknown (%s)", v.Text())
}

func nonEmpty(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// floatOf resolves a numeric value, reporting the undef/inf sentinels for
// zero-denominator rationals instead of dividing.
func floatOf(v TagValue) (float64, string) {
	f, ok := v.ToFloat64()
	if !ok {
		return 0, unknownOf(v)
	}
	if math.IsNaN(f) {
		return 0, "undef"
	}
	if math.IsInf(f, 0) {
		return 0, "inf"
	}
	return f, ""
}

func convertInt(v TagValue, _ *Tables) string {
	n, ok := v.ToInt64()
	if !ok {
		return unknownOf(v)
	}
	return strconv.FormatInt(n, 10)
}

func convertFNumber(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	if f <= 0 {
		return unknownOf(v)
	}
	if f < 1 {
		return fmt.Sprintf("%.2f", f)
	}
	return fmt.Sprintf("%.1f", f)
}

func convertExposureTime(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	switch {
	case f >= 1:
		return strconv.FormatFloat(f, 'f', -1, 64)
	case f > 0:
		return fmt.Sprintf("1/%d", int64(math.Round(1/f)))
	default:
		return "0"
	}
}

func convertFocalLength(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	rounded := math.Round(f*10) / 10
	if rounded == math.Trunc(rounded) {
		return fmt.Sprintf("%d mm", int64(rounded))
	}
	return fmt.Sprintf("%.1f mm", rounded)
}

func convertFocalLength35(v TagValue, _ *Tables) string {
	n, ok := v.ToInt64()
	if !ok {
		return unknownOf(v)
	}
	return fmt.Sprintf("%d mm", n)
}

func convertAPEXAperture(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	return fmt.Sprintf("%.1f", math.Pow(2, f/2))
}

func convertAPEXShutterSpeed(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	secs := 1 / math.Pow(2, f)
	if secs >= 1 {
		return strconv.FormatFloat(secs, 'f', -1, 64)
	}
	return fmt.Sprintf("1/%d", int64(math.Round(1/secs)))
}

func convertEV(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	if f == 0 {
		return "0"
	}
	return fmt.Sprintf("%+.1f", f)
}

func convertMeters(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	return fmt.Sprintf("%.1f m", f)
}

func convertMillimeters(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	return fmt.Sprintf("%.1f mm", f)
}

func convertPercent(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	return fmt.Sprintf("%d%%", int64(math.Round(f)))
}

func convertDecimal1(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	return fmt.Sprintf("%.1f", f)
}

func convertDecimal2(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	return fmt.Sprintf("%.2f", f)
}

func convertSeconds(v TagValue, _ *Tables) string {
	f, sentinel := floatOf(v)
	if sentinel != "" {
		return sentinel
	}
	return fmt.Sprintf("%.1f s", f)
}

// convertDimensions renders width x height pairs as "WxH".
func convertDimensions(v TagValue, _ *Tables) string {
	el := v.Elems()
	if len(el) < 2 {
		return unknownOf(v)
	}
	w, h := int64(toFloat64(el[0])), int64(toFloat64(el[1]))
	return fmt.Sprintf("%dx%d", w, h)
}

func convertSpaceSep(v TagValue, _ *Tables) string {
	el := v.Elems()
	if len(el) == 0 {
		return unknownOf(v)
	}
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(elemText(e))
	}
	return sb.String()
}

// convertVersion renders 4 digit bytes like "0230" as "2.30".
func convertVersion(v TagValue, _ *Tables) string {
	var s string
	switch vv := v.Interface().(type) {
	case string:
		s = vv
	case []byte:
		s = string(trimBytesNulls(vv))
	default:
		return unknownOf(v)
	}
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return unknownOf(v)
	}
	major := strings.TrimLeft(s[:2], "0")
	if major == "" {
		major = "0"
	}
	return major + "." + s[2:]
}

// convertTimestamp renders three rationals (hour, minute, second) as
// "HH:MM:SS".
func convertTimestamp(v TagValue, _ *Tables) string {
	el := v.Elems()
	if len(el) != 3 {
		return unknownOf(v)
	}
	parts := make([]int64, 3)
	for i, e := range el {
		f := toFloat64(e)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "undef"
		}
		parts[i] = int64(math.Round(f))
	}
	return fmt.Sprintf("%02d:%02d:%02d", parts[0], parts[1], parts[2])
}

// convertDegrees renders three rationals (degrees, minutes, seconds) as
// decimal degrees.
func convertDegrees(v TagValue, _ *Tables) string {
	el := v.Elems()
	if len(el) != 3 {
		f, sentinel := floatOf(v)
		if sentinel != "" {
			return sentinel
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	deg := toFloat64(el[0]) + toFloat64(el[1])/60 + toFloat64(el[2])/3600
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "undef"
	}
	return fmt.Sprintf("%.6f", deg)
}

// convertUserComment decodes the 8-byte charset prefix of an EXIF
// UserComment. UNICODE payloads are UCS-2 in the segment's byte order;
// unmarked payloads fall back to Latin-1.
func convertUserComment(v TagValue, _ *Tables) string {
	b := v.Bytes()
	if b == nil {
		return nonEmpty(v.Text())
	}
	if len(b) < 8 {
		return nonEmpty(printableString(string(b)))
	}
	charset := strings.ToUpper(strings.TrimRight(string(b[:8]), "\x00 "))
	payload := b[8:]
	switch charset {
	case "ASCII":
		return nonEmpty(printableString(string(trimBytesNulls(payload))))
	case "UNICODE":
		endian := unicode.BigEndian
		if v.order == binary.LittleEndian {
			endian = unicode.LittleEndian
		}
		dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
		if s, err := dec.String(string(payload)); err == nil {
			return nonEmpty(printableString(s))
		}
		return unknownOf(v)
	default:
		if s, err := charmap.ISO8859_1.NewDecoder().String(string(payload)); err == nil {
			return nonEmpty(printableString(s))
		}
		return unknownOf(v)
	}
}

func convertBinary(v TagValue, _ *Tables) string {
	if b := v.Bytes(); b != nil {
		return fmt.Sprintf("(Binary data %d bytes)", len(b))
	}
	return nonEmpty(v.Text())
}

func convertString(v TagValue, _ *Tables) string {
	switch vv := v.Interface().(type) {
	case string:
		return nonEmpty(printableString(vv))
	case []byte:
		return nonEmpty(printableString(string(trimBytesNulls(vv))))
	default:
		return nonEmpty(v.Text())
	}
}
