package decoder

// Navigation is the type-tagged secondary header describing the sensor's
// viewing geometry. Exactly one of the catalog's schemas is decoded,
// selected by the 4-character discriminant read from the file.
type Navigation struct {
	// Type is the 4-character discriminant, space padding included
	// ("MSG " and "PS  " are distinct tags).
	Type string

	*Record
}

// Navigation discriminants with decodable schemas. The catalog is a closed,
// hand-maintained enumeration: an unrecognized tag is a hard decode failure,
// never a default record.
const (
	NavDMSP = "DMSP"
	NavGOES = "GOES"
	NavGVAR = "GVAR"
	NavLALO = "LALO"
	NavLAMB = "LAMB"
	NavMERC = "MERC"
	NavMSAT = "MSAT"
	NavMSG  = "MSG "
	NavPS   = "PS  "
	NavRADR = "RADR"
	NavRECT = "RECT"
	NavTANC = "TANC"
	NavTIRO = "TIRO"
)

// navigationSchemas maps each discriminant to its fixed block layout.
// Built once at package initialization and read-only thereafter.
var navigationSchemas = map[string]Schema{
	NavDMSP: dmspSchema(),
	NavGOES: goesSchema(),
	NavGVAR: gvarSchema(),
	NavLALO: laloSchema(),
	NavLAMB: lambSchema(),
	NavMERC: mercSchema(),
	NavMSAT: msatSchema(),
	NavMSG:  {pad(508)},
	NavPS:   psSchema(),
	NavRADR: radrSchema(),
	NavRECT: rectSchema(),
	NavTANC: tancSchema(),
	NavTIRO: tiroSchema(),
}

// NavigationSchema returns the block schema for a discriminant.
func NavigationSchema(navType string) (Schema, bool) {
	s, ok := navigationSchemas[navType]
	return s, ok
}

// NavigationTypes returns every discriminant in the catalog.
func NavigationTypes() []string {
	types := make([]string, 0, len(navigationSchemas))
	for t := range navigationSchemas {
		types = append(types, t)
	}
	return types
}

// DecodeNavigation reads the 4-character discriminant at mark+offset and
// decodes the navigation block that follows it.
func DecodeNavigation(s *ByteStream, mark, offset int) (*Navigation, error) {
	s.JumpTo(mark, offset)

	tag, err := s.ReadBytes(4)
	if err != nil {
		return nil, &ErrFormat{Block: "navigation", Reason: err.Error()}
	}
	navType := string(tag)

	schema, ok := navigationSchemas[navType]
	if !ok {
		return nil, &ErrUnknownNavigation{Type: navType}
	}

	rec, err := DecodeSchema(s, "navigation "+navType, schema)
	if err != nil {
		return nil, err
	}

	return &Navigation{Type: navType, Record: rec}, nil
}

func dmspSchema() Schema {
	return Schema{
		word("source_date"), word("image_time"), word("orbit_type"),
		str("epoch_date", 4), str("epoch_time", 4), word("mean_motion1"),
		word("mean_motion2"), word("mean_motion3"), word("bstart1"),
		word("bstart2"), word("inclination"), word("right_ascension"),
		word("eccentricity"), word("perigee"), word("mean_anomaly"),
		word("mean_motion3"), pad(108), str("data_type", 4),
		word("ascending_lt"), word("first_scan"), word("first_scan_time"),
		word("scan_flipped"), word("element_flipped"), pad(4),
		word("elem_per_scan"), pad(272), strT("ascii_record", 32, decodeStrip),
	}
}

func goesSchema() Schema {
	return Schema{
		word("satellite_date"), word("image_time"), word("orbit_type"),
		word("epoch_date"), word("epoch_time"), word("semimajor_axis"),
		word("eccentricity"), word("inclination"), word("mean_anomaly"),
		word("perigee"), word("right_ascension"), word("declination"),
		word("right_ascension_sat"), word("center_line"), word("spin_period"),
		word("sweep_angle_line"), word("scan_lines"), word("sensors"),
		word("lines"), word("sweep_angle_element"), word("elements"),
		word("pitch"), word("yaw"), word("roll"), pad(4),
		word("east_west_adjust"), word("adjust_time"), pad(4),
		word("sensor_angle_delta"), word("skew"), pad(4),
		word("first_beta_line"), word("first_beta_time1"),
		word("first_beta_time2"), word("beta_count1"), word("second_beta_line"),
		word("second_beta_time1"), word("second_beta_time2"), word("beta_count2"),
		word("gamma_offset"), word("time_zero"), word("gamma_dot"), pad(4),
		strT("memo", 32, decodeStrip),
	}
}

// gvarSchema is the GOES I-M GVAR orbit/attitude block. The sinusoid and
// monomial-sinusoid coefficient groups repeat with numeric suffixes; they
// are expanded flat so byte offsets match the on-disk layout.
func gvarSchema() Schema {
	s := Schema{
		strT("memo", 4, decodeStrip),
		word("scan_status1"), word("scan_status2"), pad(4),
		word("ref_longitude"), word("ref_dist_from_nominal"), word("ref_latitude"),
		word("ref_yaw"), word("ref_attitude_roll"), word("ref_attitude_pitch"),
		word("ref_attitude_yaw"), word("epoch_date"), word("epoch_time"),
		word("epoch_delta"), word("image_motion_comp_roll"),
		word("image_motion_comp_pitch"), word("image_motion_comp_yaw"),
	}
	s = append(s, repeatWords([]string{"longitude_delta"}, 13)...)
	s = append(s, repeatWords([]string{"radial_dist_delta"}, 11)...)
	s = append(s, repeatWords([]string{"sin_geocentric_lat_delta"}, 9)...)
	s = append(s, repeatWords([]string{"sin_orbit_yaw_delta"}, 9)...)
	s = append(s,
		word("daily_solar_rate"), word("exp_start_time"),
		word("roll_exp_magnitude"), word("roll_exp_time_const"),
		word("roll_mean_attitude"), word("roll_num_sin"),
	)
	s = append(s, repeatWords([]string{"roll_sin_mag", "roll_phase_sin"}, 15)...)
	s = append(s, word("roll_num_mono_sin"))
	s = append(s, repeatWords([]string{
		"roll_order_app_sin", "roll_order_mono_sin",
		"roll_magnitude_mono_sin", "roll_phase_mono_sin",
		"roll_angle_from_epoch",
	}, 4)...)
	s = append(s,
		pad(48), word("pitch_exp_magnitude"), word("pitch_exp_time_const"),
		word("pitch_mean_attitude"), word("pitch_num_sin"),
	)
	s = append(s, repeatWords([]string{"pitch_sin_mag", "pitch_phase_sin"}, 15)...)
	s = append(s, word("pitch_num_mono_sin"))
	s = append(s, repeatWords([]string{
		"pitch_order_app_sin", "pitch_order_mono_sin",
		"pitch_magnitude_mono_sin", "pitch_phase_mono_sin",
		"pitch_angle_from_epoch",
	}, 4)...)
	s = append(s,
		word("yaw_exp_magnitude"), word("yaw_exp_time_const"),
		word("yaw_mean_attitude"), word("yaw_num_sin"),
	)
	s = append(s, repeatWords([]string{"yaw_sin_mag", "yaw_phase_sin"}, 15)...)
	s = append(s, word("yaw_num_mono_sin"))
	s = append(s, repeatWords([]string{
		"yaw_order_app_sin", "yaw_order_mono_sin",
		"yaw_magnitude_mono_sin", "yaw_phase_mono_sin",
		"yaw_angle_from_epoch",
	}, 4)...)
	s = append(s,
		pad(72), word("pitch_misalign_exp_magnitude"),
		word("pitch_misalign_exp_time_const"), word("pitch_misalign_mean_attitude"),
		word("pitch_misalign_num_sin"),
	)
	s = append(s, repeatWords([]string{
		"pitch_misalign_sin_mag", "pitch_misalign_phase_sin",
	}, 15)...)
	s = append(s, word("pitch_misalign_num_mono_sin"))
	s = append(s, repeatWords([]string{
		"pitch_misalign_order_app_sin", "pitch_misalign_order_mono_sin",
		"pitch_misalign_magnitude_mono_sin", "pitch_misalign_phase_mono_sin",
		"pitch_misalign_angle_from_epoch",
	}, 4)...)
	s = append(s,
		word("yaw_misalign_exp_magnitude"), word("yaw_misalign_exp_time_const"),
		word("yaw_misalign_mean_attitude"), word("yaw_misalign_num_sin"),
	)
	s = append(s, repeatWords([]string{
		"yaw_misalign_sin_mag", "yaw_misalign_phase_sin",
	}, 15)...)
	s = append(s, word("yaw_misalign_num_mono_sin"))
	s = append(s, repeatWords([]string{
		"yaw_misalign_order_app_sin", "yaw_misalign_order_mono_sin",
		"yaw_misalign_magnitude_mono_sin", "yaw_misalign_phase_mono_sin",
		"yaw_misalign_angle_from_epoch",
	}, 4)...)
	s = append(s,
		word("julian_date"), word("image_start_time"), word("instrument_flag"),
		pad(36), word("nadir_ns"), word("nadir_ew"), word("nadir_ns_inc"),
		word("nadir_ew_inc"), pad(1028),
	)
	return s
}

func laloSchema() Schema {
	return Schema{
		str("navigation_source", 4), pad(252),
		word("number_rows"), word("number_elements"), word("min_lat"),
		word("min_lon"), word("max_lat"), word("max_lon"),
		word("line_resolution"), word("element_resolution"),
		word("navigation_size"), word("nav_data_size"),
		word("top_line_number"), word("left_element"),
		word("block_size"), word("lat_header_size"),
		word("aux_lon_offset"), word("dir_lat_offset"),
		word("dir_lon_offset"), pad(184),
	}
}

func lambSchema() Schema {
	return Schema{
		word("image_pole_line"), word("image_pole_element"),
		word("standard_lat1"), word("standard_lat2"),
		word("standard_lat_resolution"), word("central_lon"),
		word("sphere_radius"), word("sphere_eccentricity"),
		word("coordinate_type"), word("longitude_convention"),
		pad(436), strT("memo", 32, decodeStrip),
	}
}

func mercSchema() Schema {
	return Schema{
		word("equator_line"), word("central_lon_element"),
		wordT("standard_lat", dmsDecimal), word("standard_lat_resolution"),
		wordT("central_lon", dmsDecimal), word("sphere_radius"),
		word("sphere_eccentricity"), word("coordinate_type"),
		word("longitude_convention"), pad(440),
		strT("memo", 32, decodeStrip),
	}
}

func msatSchema() Schema {
	return Schema{
		word("navigation_date"), word("navigation_time"),
		word("reference_position"), word("ref_line"),
		word("center_line"), word("center_lon"), pad(8),
		word("navigation_date2"), pad(984),
	}
}

func psSchema() Schema {
	return Schema{
		word("image_pole_line"), word("image_pole_element"),
		word("standard_lat"), word("standard_lat_resolution"),
		word("central_lon"), word("sphere_radius"),
		word("sphere_eccentricity"), word("coordinate_type"),
		word("longitude_convention"), pad(440),
		strT("memo", 32, decodeStrip),
	}
}

func radrSchema() Schema {
	return Schema{
		word("rda_row"), word("rda_column"), word("rda_lat"),
		word("rda_lon"), word("resolution"), word("zenith_angle"),
		word("longitude_resolution"),
	}
}

func rectSchema() Schema {
	return Schema{
		word("image_row_number"), word("image_row_latitude"),
		word("image_column_number"), word("image_column_longitude"),
		word("dy"), word("dx"), word("sphere_radius"),
		word("sphere_eccentricity"), word("coordinate_type"),
		word("longitude_convention"),
	}
}

func tancSchema() Schema {
	return Schema{
		word("image_pole_line"), word("image_pole_element"),
		word("km_per_pixel"), word("standard_lat"), word("standard_lon"),
		pad(456), strT("memo", 32, decodeStrip),
	}
}

func tiroSchema() Schema {
	return Schema{
		word("source_date"), word("navigation_time"), word("orbit_type"),
		word("epoch_date"), word("epoch_time"), word("semimajor_axis"),
		word("eccentricity"), word("inclination"), word("mean_anomaly"),
		word("perigee"), word("right_ascension"), word("samples_per_line"),
		word("angular_increment"), word("fraction_seconds"), pad(120),
		word("pass_type"), word("first_line_coord"), word("first_line_time"),
		word("line_interval1"), word("inverted"), word("inverted_lines"),
		word("inverted_elements"), word("line_interval2"), word("data_interval"),
		pad(264), strT("comments", 32, decodeStrip),
	}
}
