package exifcore

// Standard EXIF tag definitions, mined offline from the reference tag
// listings. IFD0 and its thumbnail chain (IFD1) share one underlying
// TagSet; the thumbnail offset/length pair is preserved raw for the
// preview extractor.

var exifIFDTags = TagSet{
	0x0100: {ID: 0x0100, Name: "ImageWidth", Conversion: ConvInt},
	0x0101: {ID: 0x0101, Name: "ImageHeight", Conversion: ConvInt},
	0x010e: {ID: 0x010e, Name: "ImageDescription", Conversion: ConvString},
	0x010f: {ID: 0x010f, Name: "Make", Conversion: ConvString},
	0x0110: {ID: 0x0110, Name: "Model", Conversion: ConvString},
	0x0112: {ID: 0x0112, Name: "Orientation", Conversion: ConvOrientation},
	0x011a: {ID: 0x011a, Name: "XResolution", Conversion: ConvInt},
	0x011b: {ID: 0x011b, Name: "YResolution", Conversion: ConvInt},
	0x0128: {ID: 0x0128, Name: "ResolutionUnit", Conversion: ConvResolutionUnit},
	0x0131: {ID: 0x0131, Name: "Software", Conversion: ConvString},
	0x0132: {ID: 0x0132, Name: "ModifyDate", Conversion: ConvString},
	0x013b: {ID: 0x013b, Name: "Artist", Conversion: ConvString},
	0x0201: {ID: 0x0201, Name: "ThumbnailOffset", PreserveRaw: true, AddBase: true},
	0x0202: {ID: 0x0202, Name: "ThumbnailLength", PreserveRaw: true},
	0x0213: {ID: 0x0213, Name: "YCbCrPositioning", Conversion: ConvYCbCrPositioning},
	0x8298: {ID: 0x8298, Name: "Copyright", Conversion: ConvString},
	0x8769: {ID: 0x8769, Name: "ExifOffset", SubIFD: NsExif},
	0x8825: {ID: 0x8825, Name: "GPSInfo", SubIFD: NsGPS},
}

var exifSubIFDTags = TagSet{
	0x829a: {ID: 0x829a, Name: "ExposureTime", Conversion: ConvExposureTime},
	0x829d: {ID: 0x829d, Name: "FNumber", Conversion: ConvFNumber},
	0x8822: {ID: 0x8822, Name: "ExposureProgram", Conversion: ConvExposureProgram},
	0x8827: {ID: 0x8827, Name: "ISO", Conversion: ConvInt},
	0x9000: {ID: 0x9000, Name: "ExifVersion", Conversion: ConvVersion},
	0x9003: {ID: 0x9003, Name: "DateTimeOriginal", Conversion: ConvString},
	0x9004: {ID: 0x9004, Name: "CreateDate", Conversion: ConvString},
	0x9101: {ID: 0x9101, Name: "ComponentsConfiguration", Conversion: ConvSpaceSep},
	0x9201: {ID: 0x9201, Name: "ShutterSpeedValue", Conversion: ConvAPEXShutterSpeed},
	0x9202: {ID: 0x9202, Name: "ApertureValue", Conversion: ConvAPEXAperture},
	0x9204: {ID: 0x9204, Name: "ExposureCompensation", Conversion: ConvEV},
	0x9205: {ID: 0x9205, Name: "MaxApertureValue", Conversion: ConvAPEXAperture},
	0x9206: {ID: 0x9206, Name: "SubjectDistance", Conversion: ConvMeters},
	0x9207: {ID: 0x9207, Name: "MeteringMode", Conversion: ConvMeteringMode},
	0x9208: {ID: 0x9208, Name: "LightSource", Conversion: ConvLightSource},
	0x9209: {ID: 0x9209, Name: "Flash", Conversion: ConvFlash},
	0x920a: {ID: 0x920a, Name: "FocalLength", Conversion: ConvFocalLength},
	0x927c: {ID: 0x927c, Name: "MakerNote", MakerNote: true},
	0x9286: {ID: 0x9286, Name: "UserComment", Conversion: ConvUserComment},
	0x9290: {ID: 0x9290, Name: "SubSecTime", Conversion: ConvString},
	0x9291: {ID: 0x9291, Name: "SubSecTimeOriginal", Conversion: ConvString},
	0xa000: {ID: 0xa000, Name: "FlashpixVersion", Conversion: ConvFlashpixVersion},
	0xa001: {ID: 0xa001, Name: "ColorSpace", Conversion: ConvColorSpace},
	0xa002: {ID: 0xa002, Name: "ExifImageWidth", Conversion: ConvInt},
	0xa003: {ID: 0xa003, Name: "ExifImageHeight", Conversion: ConvInt},
	0xa005: {ID: 0xa005, Name: "InteropOffset", SubIFD: NsInterop},
	0xa217: {ID: 0xa217, Name: "SensingMethod", Conversion: ConvSensingMethod},
	0xa300: {ID: 0xa300, Name: "FileSource", Conversion: ConvFileSource},
	0xa301: {ID: 0xa301, Name: "SceneType", Conversion: ConvSceneType},
	0xa401: {ID: 0xa401, Name: "CustomRendered", Conversion: ConvCustomRendered},
	0xa402: {ID: 0xa402, Name: "ExposureMode", Conversion: ConvExposureMode},
	0xa403: {ID: 0xa403, Name: "WhiteBalance", Conversion: ConvWhiteBalance},
	0xa404: {ID: 0xa404, Name: "DigitalZoomRatio", Conversion: ConvDecimal1},
	0xa405: {ID: 0xa405, Name: "FocalLengthIn35mmFormat", Conversion: ConvFocalLength35},
	0xa406: {ID: 0xa406, Name: "SceneCaptureType", Conversion: ConvSceneCaptureType},
	0xa407: {ID: 0xa407, Name: "GainControl", Conversion: ConvGainControl},
	0xa408: {ID: 0xa408, Name: "Contrast", Conversion: ConvContrast},
	0xa409: {ID: 0xa409, Name: "Saturation", Conversion: ConvSaturation},
	0xa40a: {ID: 0xa40a, Name: "Sharpness", Conversion: ConvSharpness},
	0xa40c: {ID: 0xa40c, Name: "SubjectDistanceRange", Conversion: ConvSubjectDistanceRange},
	0xa420: {ID: 0xa420, Name: "ImageUniqueID", Conversion: ConvString},
	0xa430: {ID: 0xa430, Name: "OwnerName", Conversion: ConvString},
	0xa431: {ID: 0xa431, Name: "SerialNumber", Conversion: ConvString},
	0xa432: {ID: 0xa432, Name: "LensInfo", Conversion: ConvSpaceSep},
	0xa433: {ID: 0xa433, Name: "LensMake", Conversion: ConvString},
	0xa434: {ID: 0xa434, Name: "LensModel", Conversion: ConvString},
}

var exifInteropTags = TagSet{
	0x0001: {ID: 0x0001, Name: "InteropIndex", Conversion: ConvString},
	0x0002: {ID: 0x0002, Name: "InteropVersion", Conversion: ConvVersion},
}

var exifGPSTags = TagSet{
	0x0000: {ID: 0x0000, Name: "GPSVersionID", Conversion: ConvSpaceSep},
	0x0001: {ID: 0x0001, Name: "GPSLatitudeRef", Conversion: ConvString},
	0x0002: {ID: 0x0002, Name: "GPSLatitude", Conversion: ConvDegrees},
	0x0003: {ID: 0x0003, Name: "GPSLongitudeRef", Conversion: ConvString},
	0x0004: {ID: 0x0004, Name: "GPSLongitude", Conversion: ConvDegrees},
	0x0005: {ID: 0x0005, Name: "GPSAltitudeRef", Conversion: ConvInt},
	0x0006: {ID: 0x0006, Name: "GPSAltitude", Conversion: ConvMeters},
	0x0007: {ID: 0x0007, Name: "GPSTimeStamp", Conversion: ConvTimestamp},
	0x0012: {ID: 0x0012, Name: "GPSMapDatum", Conversion: ConvString},
	0x001d: {ID: 0x001d, Name: "GPSDateStamp", Conversion: ConvString},
}
