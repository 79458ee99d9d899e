package decoder

// McIDAS sensor-source lookup table.
// Source: SSEC McIDAS Programmer's Manual, AREA directory word 3 (SS) codes.
var sensorSourceNames = map[int32]string{
	0:   "Derived data",
	1:   "Test patterns",
	2:   "Graphics",
	3:   "Miscellaneous",
	4:   "PDUS METEOSAT Visible",
	5:   "PDUS METEOSAT Infrared",
	6:   "PDUS METEOSAT Water Vapor",
	7:   "Radar",
	8:   "Miscellaneous aircraft data",
	9:   "Raw METEOSAT",
	10:  "Composite image",
	12:  "GMS Visible",
	13:  "GMS Infrared",
	14:  "ATS 6 Visible",
	15:  "ATS 6 Infrared",
	16:  "SMS-1 Visible",
	17:  "SMS-1 Infrared",
	18:  "SMS-2 Visible",
	19:  "SMS-2 Infrared",
	20:  "GOES-1 Visible",
	21:  "GOES-1 Infrared",
	22:  "GOES-2 Visible",
	23:  "GOES-2 Infrared",
	24:  "GOES-3 Visible",
	25:  "GOES-3 Infrared",
	26:  "GOES-4 Visible (VAS)",
	27:  "GOES-4 Infrared and Water Vapor (VAS)",
	28:  "GOES-5 Visible (VAS)",
	29:  "GOES-5 Infrared and Water Vapor (VAS)",
	30:  "GOES-6 Visible",
	31:  "GOES-6 Infrared",
	32:  "GOES-7 Visible, Block 1 Auxiliary Data",
	33:  "GOES-7 Infrared",
	34:  "FY-2B",
	35:  "FY-2C",
	36:  "FY-2D",
	37:  "FY-2E",
	38:  "FY-2F",
	39:  "FY-2G",
	40:  "FY-2H",
	41:  "TIROS-N (POES)",
	42:  "NOAA-6",
	43:  "NOAA-7",
	44:  "NOAA-8",
	45:  "NOAA-9",
	46:  "Venus",
	47:  "Voyager 1",
	48:  "Voyager 2",
	49:  "Galileo",
	50:  "Hubble Space Telescope",
	51:  "Meteosat-8 (MSG-1)",
	52:  "Meteosat-9 (MSG-2)",
	53:  "Meteosat-10 (MSG-3)",
	54:  "Meteosat-3",
	55:  "Meteosat-4",
	56:  "Meteosat-5",
	57:  "Meteosat-6",
	58:  "Meteosat-7",
	60:  "NOAA-10",
	61:  "NOAA-11",
	62:  "NOAA-12",
	63:  "NOAA-13",
	64:  "NOAA-14",
	65:  "NOAA-15",
	66:  "NOAA-16",
	67:  "NOAA-17",
	68:  "NOAA-18",
	69:  "NOAA-19",
	70:  "GOES-8",
	71:  "GOES-8 Sounder",
	72:  "GOES-9",
	73:  "GOES-9 Sounder",
	74:  "GOES-10",
	75:  "GOES-10 Sounder",
	76:  "GOES-11",
	77:  "GOES-11 Sounder",
	78:  "GOES-12",
	79:  "GOES-12 Sounder",
	80:  "ERBE",
	82:  "GMS-4",
	83:  "GMS-5",
	84:  "MTSAT-1R",
	85:  "MTSAT-2",
	86:  "Himawari-8",
	87:  "DMSP F-8",
	88:  "DMSP F-9",
	89:  "DMSP F-10",
	90:  "DMSP F-11",
	91:  "DMSP F-12",
	92:  "DMSP F-13",
	93:  "DMSP F-14",
	94:  "DMSP F-15",
	95:  "FY-1B",
	96:  "FY-1C",
	97:  "FY-1D",
	101: "TERRA-L1B",
	102: "TERRA-CLD",
	103: "TERRA-GEO",
	104: "TERRA-AER",
	106: "TERRA-TOP",
	107: "TERRA-ATM",
	108: "TERRA-GUS",
	109: "TERRA-RET",
	111: "AQUA-L1B",
	112: "AQUA-CLD",
	113: "AQUA-GEO",
	114: "AQUA-AER",
	116: "AQUA-TOP",
	117: "AQUA-ATM",
	118: "AQUA-GUS",
	119: "AQUA-RET",
	128: "TERRA-SST",
	129: "TERRA-LST",
	138: "AQUA-SST",
	139: "AQUA-LST",
	160: "TERRA-NDVI",
	161: "TERRA-CREF",
	170: "AQUA-NDVI",
	171: "AQUA-CREF",
	174: "EWS-G1",
	175: "EWS-G1 Sounder",
	176: "EWS-G2",
	177: "EWS-G2 Sounder",
	178: "EWS-G3",
	179: "EWS-G3 Sounder",
	180: "GOES-13",
	181: "GOES-13 Sounder",
	182: "GOES-14",
	183: "GOES-14 Sounder",
	184: "GOES-15",
	185: "GOES-15 Sounder",
	186: "GOES-16",
	187: "GOES-16 Level 2 Products",
	188: "GOES-17",
	189: "GOES-17 Level 2 Products",
	190: "GOES-18",
	191: "GOES-18 Level 2 Products",
	192: "GOES-19",
	193: "GOES-19 Level 2 Products",
	195: "DMSP F-16",
	196: "DMSP F-17",
	200: "AIRS-L1B",
	210: "AMSR-E L1B",
	211: "AMSR-E RAIN",
	216: "AMSU-A LWP",
	220: "TRMM",
	221: "GMS-1",
	222: "GMS-2",
	223: "GMS-3",
	230: "Kalpana-1",
	231: "INSAT-3D Imager",
	232: "INSAT-3D Sounder",
	240: "Metop-A",
	241: "Metop-B",
	242: "Metop-C",
	250: "COMS-1",
	261: "Landsat 1",
	262: "Landsat 2",
	263: "Landsat 3",
	264: "Landsat 4",
	265: "Landsat 5",
	266: "Landsat 6",
	267: "Landsat 7",
	268: "Landsat 8",
	275: "FY-3A",
	276: "FY-3B",
	277: "FY-3C",
	286: "HimawariCast-8",
	287: "Himawari-9",
	288: "HimawariCast-9",
	289: "HimawariCast-8/9",
	300: "NPP-VIIRS",
	301: "NOAA-20 (JPSS-1)",
	302: "NOAA-21 (JPSS-2)",
	303: "NOAA-22 (JPSS-3)",
	304: "NOAA-23 (JPSS-4)",
	320: "SNPP SDR",
	321: "NOAA-20 SDR",
	322: "NOAA-21 SDR",
	323: "NOAA-22 SDR",
	324: "NOAA-23 SDR",
	325: "SNPP EDR",
	326: "NOAA-20 EDR",
	327: "NOAA-21 EDR",
	328: "NOAA-22 EDR",
	329: "NOAA-23 EDR",
	354: "Meteosat-11 (MSG-4)",
	400: "South Pole Composite",
	401: "North Pole Composite",
	410: "Megha-Tropic",
}

// SensorSourceName returns the satellite/sensor name for an AREA directory
// sensor-source code. Unknown codes return false.
func SensorSourceName(code int32) (string, bool) {
	name, ok := sensorSourceNames[code]
	return name, ok
}
