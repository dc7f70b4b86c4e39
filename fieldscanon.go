package exifcore

// Canon maker note definitions. The note is a plain IFD at the blob start
// whose internal offsets are relative to the enclosing segment, hence the
// segment offset base. The packed CameraSettings and ShotInfo records are
// extracted via binary layout tables.

var canonMakerNoteSpec = MakerNoteSpec{
	MakePrefix: "Canon",
	Ns:         NsCanon,
	HeaderLen:  0,
	Base:       OffsetBaseSegment,
}

var canonTags = TagSet{
	0x0001: {ID: 0x0001, Name: "CanonCameraSettings", Binary: &canonCameraSettings},
	0x0004: {ID: 0x0004, Name: "CanonShotInfo", Binary: &canonShotInfo},
	0x0006: {ID: 0x0006, Name: "CanonImageType", Conversion: ConvString},
	0x0007: {ID: 0x0007, Name: "CanonFirmwareVersion", Conversion: ConvString},
	0x0008: {ID: 0x0008, Name: "FileNumber", Conversion: ConvInt},
	0x000c: {ID: 0x000c, Name: "SerialNumber", Conversion: ConvInt},
	0x0013: {ID: 0x0013, Name: "ThumbnailImageValidArea", Conversion: ConvSpaceSep},
	0x0095: {ID: 0x0095, Name: "LensModel", Conversion: ConvString},
}

// The CameraSettings record is an int16 array; field offsets are in bytes
// from the record start.
var canonCameraSettings = BinaryLayout{
	Ns: "Canon.CameraSettings",
	Fields: []FieldSpec{
		{Offset: 2, Name: "MacroMode", Format: FormatInt16, Conversion: ConvOnOff},
		{Offset: 4, Name: "SelfTimer", Format: FormatInt16, Conversion: ConvInt},
		{Offset: 6, Name: "Quality", Format: FormatInt16, Conversion: ConvQuality},
		{Offset: 8, Name: "CanonFlashMode", Format: FormatInt16, Conversion: ConvOffOnAuto},
		{Offset: 10, Name: "ContinuousDrive", Format: FormatInt16, Conversion: ConvOnOff},
		{Offset: 14, Name: "FocusMode", Format: FormatInt16, Conversion: ConvAutoManual},
		{Offset: 22, Name: "LensType", Format: FormatUint16, Conversion: ConvCanonLensType},
		{Offset: 24, Name: "MaxFocalLength", Format: FormatInt16, Conversion: ConvFocalLength35},
		{Offset: 26, Name: "MinFocalLength", Format: FormatInt16, Conversion: ConvFocalLength35},
		{Offset: 40, Name: "ImageStabilization", Format: FormatInt16, Conversion: ConvOnOff},
	},
}

var canonShotInfo = BinaryLayout{
	Ns: "Canon.ShotInfo",
	Fields: []FieldSpec{
		{Offset: 4, Name: "ISO", Format: FormatInt16, Conversion: ConvInt},
		{Offset: 14, Name: "WhiteBalance", Format: FormatInt16, Conversion: ConvCanonWhiteBalance},
		{Offset: 16, Name: "SlowShutter", Format: FormatInt16, Conversion: ConvOnOff},
		{Offset: 30, Name: "FlashExposureComp", Format: FormatInt16, Conversion: ConvEV},
		// Trailer field, counted from the record end.
		{Offset: -2, Name: "CameraType", Format: FormatUint8, Conversion: ConvInt},
	},
}

var canonWhiteBalanceLookup = LookupTable{
	0:  "Auto",
	1:  "Daylight",
	2:  "Cloudy",
	3:  "Tungsten",
	4:  "Fluorescent",
	5:  "Flash",
	6:  "Custom",
	7:  "Black & White",
	8:  "Shade",
	9:  "Manual Temperature (Kelvin)",
	10: "PC Set1",
	11: "PC Set2",
	12: "PC Set3",
	14: "Daylight Fluorescent",
	15: "Custom 1",
	16: "Custom 2",
	17: "Underwater",
}
