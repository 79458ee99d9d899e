package decoder

// directorySchema is the fixed 64-word AREA directory block.
//
// Word numbering follows the McIDAS Programmer's Manual chapter on AREA
// files. Reserved words keep their positional names so the full record
// remains inspectable.
var directorySchema = Schema{
	word("adde_position"), word("image_type"),
	word("sensor_source"), word("date"), word("time"),
	word("upper_left_line_coordinate"),
	word("upper_left_image_element"), pad(4),
	word("image_lines"), word("data_per_line"),
	word("bytes_per_point"), word("line_resolution"),
	word("element_resolution"), word("spectral_bands"),
	word("line_prefix_length"), word("ssec_project"),
	word("creation_date"), word("creation_time"),
	word("spectral_band_map_32"), word("spectral_band_map_64"),
	word("word21"), word("word22"), word("word23"),
	word("word24"), strT("memo", 32, decodeStrip),
	word("area_number"), word("data_offset"), word("navigation_offset"),
	word("validity_code"), word("pdl1"), word("pdl2"),
	word("pdl3"), word("pdl4"), word("pdl5"), word("pdl6"),
	word("pdl7"), word("pdl8"), word("band8_source"),
	word("image_start_date"), word("image_start_time"),
	word("image_start_scan"), word("prefix_doc_length"),
	word("prefix_calibration_length"), word("prefix_band_length"),
	str("source_type", 4), str("calibration_type", 4),
	word("word54"), word("word55"), word("word56"),
	word("original_source_type"), word("units"), word("scaling"),
	word("supplemental_offset"), word("supplemental_length"),
	word("word62"), word("calibration_offset"), word("comment_length"),
}

// Directory is the decoded primary header of an AREA file.
//
// The geometry and offset fields the pipeline depends on are lifted into
// typed fields; everything else stays reachable through the raw record.
// A Directory is created once per decode and never mutated afterwards.
type Directory struct {
	SensorSource int32
	Date         int32
	Time         int32

	UpperLeftLine    int32
	UpperLeftElement int32

	ImageLines    int32
	DataPerLine   int32
	BytesPerPoint int32

	LineResolution    int32
	ElementResolution int32

	SpectralBands    int32
	LinePrefixLength int32

	CreationDate int32
	CreationTime int32

	Memo       string
	AreaNumber int32

	DataOffset       int32
	NavigationOffset int32
	ValidityCode     int32

	PrefixDocLength         int32
	PrefixCalibrationLength int32
	PrefixBandLength        int32

	SourceType      string
	CalibrationType string

	CalibrationOffset int32
	CommentLength     int32

	raw *Record
}

// Field returns any directory word by its table name.
func (d *Directory) Field(name string) (any, bool) {
	return d.raw.Get(name)
}

// DecodeDirectory reads the 64-word directory block at the record mark.
func DecodeDirectory(s *ByteStream, mark int) (*Directory, error) {
	s.JumpTo(mark, 0)

	rec, err := DecodeSchema(s, "directory", directorySchema)
	if err != nil {
		return nil, err
	}

	return &Directory{
		SensorSource:      rec.Int("sensor_source"),
		Date:              rec.Int("date"),
		Time:              rec.Int("time"),
		UpperLeftLine:     rec.Int("upper_left_line_coordinate"),
		UpperLeftElement:  rec.Int("upper_left_image_element"),
		ImageLines:        rec.Int("image_lines"),
		DataPerLine:       rec.Int("data_per_line"),
		BytesPerPoint:     rec.Int("bytes_per_point"),
		LineResolution:    rec.Int("line_resolution"),
		ElementResolution: rec.Int("element_resolution"),
		SpectralBands:     rec.Int("spectral_bands"),
		LinePrefixLength:  rec.Int("line_prefix_length"),
		CreationDate:      rec.Int("creation_date"),
		CreationTime:      rec.Int("creation_time"),
		Memo:              rec.Str("memo"),
		AreaNumber:        rec.Int("area_number"),
		DataOffset:        rec.Int("data_offset"),
		NavigationOffset:  rec.Int("navigation_offset"),
		ValidityCode:      rec.Int("validity_code"),

		PrefixDocLength:         rec.Int("prefix_doc_length"),
		PrefixCalibrationLength: rec.Int("prefix_calibration_length"),
		PrefixBandLength:        rec.Int("prefix_band_length"),

		SourceType:      rec.Str("source_type"),
		CalibrationType: rec.Str("calibration_type"),

		CalibrationOffset: rec.Int("calibration_offset"),
		CommentLength:     rec.Int("comment_length"),

		raw: rec,
	}, nil
}
