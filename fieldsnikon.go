package exifcore

// Nikon maker note definitions. Type 3 notes start with a "Nikon\0\x02..."
// header followed by an embedded TIFF header; internal offsets are relative
// to that embedded header, not to the segment start. The serial number and
// shutter count tags double as the decryption seeds for encrypted sections.

var nikonMakerNoteSpec = MakerNoteSpec{
	MakePrefix:   "NIKON",
	Ns:           NsNikon,
	HeaderLen:    10,
	Base:         OffsetBaseBlob,
	EmbeddedTIFF: true,
}

var nikonTags = TagSet{
	0x0001: {ID: 0x0001, Name: "MakerNoteVersion", Conversion: ConvVersion},
	0x0002: {ID: 0x0002, Name: "ISO", Conversion: ConvSpaceSep},
	0x0004: {ID: 0x0004, Name: "Quality", Conversion: ConvString},
	0x0005: {ID: 0x0005, Name: "WhiteBalance", Conversion: ConvString},
	0x0007: {ID: 0x0007, Name: "FocusMode", Conversion: ConvString},
	0x0008: {ID: 0x0008, Name: "FlashSetting", Conversion: ConvString},
	0x001d: {ID: 0x001d, Name: "SerialNumber", Conversion: ConvString, Seed: SeedSerial},
	0x0083: {ID: 0x0083, Name: "LensType", Conversion: ConvInt},
	0x0084: {ID: 0x0084, Name: "Lens", Conversion: ConvSpaceSep},
	0x0088: {ID: 0x0088, Name: "AFInfo", Binary: &nikonAFInfo},
	0x0098: {ID: 0x0098, Name: "LensData", Binary: &nikonLensData},
	0x00a7: {ID: 0x00a7, Name: "ShutterCount", Conversion: ConvInt, Seed: SeedCount},
	0x00a8: {ID: 0x00a8, Name: "FlashInfo", Conversion: ConvBinary},
}

var nikonAFInfo = BinaryLayout{
	Ns: "Nikon.AFInfo",
	Fields: []FieldSpec{
		{Offset: 0, Name: "AFAreaMode", Format: FormatUint8, Conversion: ConvInt},
		{Offset: 1, Name: "AFPoint", Format: FormatUint8, Conversion: ConvInt},
		// The in-focus points are a bit field over byte 2. Bit 0 needs a
		// mask; a fractional offset cannot express it.
		{Offset: 2, Name: "AFPointsInFocusCenter", Format: FormatUint8, Mask: 0x01, Conversion: ConvYesNo},
		{Offset: 2.1, Name: "AFPointsInFocusTop", Conversion: ConvYesNo},
		{Offset: 2.2, Name: "AFPointsInFocusBottom", Conversion: ConvYesNo},
		{Offset: 2.3, Name: "AFPointsInFocusLeft", Conversion: ConvYesNo},
		{Offset: 2.4, Name: "AFPointsInFocusRight", Conversion: ConvYesNo},
	},
}

// The lens record's version header is plain; everything after byte 4 is
// run through the serial/count keyed transform first.
var nikonLensData = BinaryLayout{
	Ns:           "Nikon.LensData",
	Decrypt:      TransformNikonXor,
	DecryptStart: 4,
	Fields: []FieldSpec{
		{Offset: 0, Name: "LensDataVersion", Format: FormatString, CountMode: CountFixed, Count: 4},
		{Offset: 12, Name: "LensID", Format: FormatUint8, Encrypted: true, Conversion: ConvNikonLensID},
		{Offset: 13, Name: "ApertureAtMinFocal", Format: FormatUint8, Encrypted: true, Conversion: ConvInt},
		{Offset: 14, Name: "MinFocalLength", Format: FormatUint8, Encrypted: true, Conversion: ConvInt},
		{Offset: 15, Name: "MaxFocalLength", Format: FormatUint8, Encrypted: true, Conversion: ConvInt},
	},
}

var nikonQualityLookup = LookupTable{
	1: "VGA Basic",
	2: "VGA Normal",
	3: "VGA Fine",
	4: "SXGA Basic",
	5: "SXGA Normal",
	6: "SXGA Fine",
	7: "XGA Basic",
	8: "XGA Normal",
	9: "XGA Fine",
}
