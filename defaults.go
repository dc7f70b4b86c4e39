// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

// defaultTables is assembled once from the generated data files and never
// mutated. It is injected as a parameter, not consulted as an ambient
// singleton, so tests can substitute synthetic tables.
var defaultTables = &Tables{
	Tags: map[Namespace]TagSet{
		NsIFD0:    exifIFDTags,
		NsIFD1:    exifIFDTags,
		NsExif:    exifSubIFDTags,
		NsGPS:     exifGPSTags,
		NsInterop: exifInteropTags,
		NsCanon:   canonTags,
		NsNikon:   nikonTags,
	},
	Lookups: map[LookupID]LookupTable{
		LookupNikonLensID:       nikonLensIDLookup,
		LookupCanonLensType:     canonLensTypeLookup,
		LookupCanonWhiteBalance: canonWhiteBalanceLookup,
		LookupNikonQuality:      nikonQualityLookup,
	},
	MakerNotes: []MakerNoteSpec{
		canonMakerNoteSpec,
		nikonMakerNoteSpec,
	},
	Xlat: &nikonXlat,
}

// DefaultTables returns the generated tag, layout and lookup tables.
func DefaultTables() *Tables {
	return defaultTables
}
