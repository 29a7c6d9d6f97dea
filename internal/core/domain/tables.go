package domain

// Static domain knowledge for IEC 60079 / ATEX certification. These tables
// are read-only after init; concurrent Parse calls share them freely.

// ProtectionDescriptions maps a protection base type to its concept name
// per IEC 60079. Level suffixes (a/b/c) do not change the description.
var ProtectionDescriptions = map[string]string{
	"d":  "Flameproof enclosure",
	"e":  "Increased safety",
	"i":  "Intrinsic safety",
	"m":  "Encapsulation",
	"n":  "Non-sparking / restricted breathing",
	"o":  "Oil immersion",
	"p":  "Pressurised enclosure",
	"q":  "Powder filling",
	"s":  "Special protection",
	"t":  "Protection by enclosure (dust)",
	"op": "Optical radiation",
}

// GasGroupDescriptions maps an equipment group to the atmosphere it is
// rated for.
var GasGroupDescriptions = map[string]string{
	"I":    "Mining (firedamp/methane)",
	"IIA":  "Gas group IIA (propane)",
	"IIB":  "Gas group IIB (ethylene)",
	"IIC":  "Gas group IIC (hydrogen, acetylene)",
	"IIIA": "Dust group IIIA (combustible flyings)",
	"IIIB": "Dust group IIIB (non-conductive dust)",
	"IIIC": "Dust group IIIC (conductive dust)",
}

// TempClassMaxima maps a temperature class to the maximum surface
// temperature of the equipment.
var TempClassMaxima = map[string]string{
	"T1": "450°C",
	"T2": "300°C",
	"T3": "200°C",
	"T4": "135°C",
	"T5": "100°C",
	"T6": "85°C",
}

// EPLZones maps an equipment protection level to the zone the equipment may
// be installed in. Mining levels have no zone system.
var EPLZones = map[string]string{
	"Ga": "Zone 0",
	"Gb": "Zone 1",
	"Gc": "Zone 2",
	"Da": "Zone 20",
	"Db": "Zone 21",
	"Dc": "Zone 22",
	"Ma": "Mining (group I)",
	"Mb": "Mining (group I)",
}

// NotifiedBodies lists certification bodies recognised when scanning a
// document. Matching is case-insensitive and must check longer names before
// shorter ones so that e.g. "SGS Fimko" is never shadowed by "SGS".
var NotifiedBodies = []string{
	"DEKRA Certification B.V.",
	"DEKRA EXAM",
	"DEKRA",
	"Sira Certification Service",
	"SIRA",
	"Baseefa",
	"UL International DEMKO",
	"DEMKO",
	"FM Approvals",
	"CSA Group Netherlands",
	"CSA Group",
	"TÜV Rheinland",
	"TÜV SÜD",
	"TÜV NORD",
	"SGS Fimko",
	"SGS Baseefa",
	"SGS",
	"Intertek",
	"ExVeritas",
	"Element Materials Technology",
	"Eurofins E&E CML",
	"CML B.V.",
	"CML",
	"Physikalisch-Technische Bundesanstalt",
	"PTB",
	"IBExU",
	"INERIS",
	"LCIE Bureau Veritas",
	"LCIE",
	"Bureau Veritas",
	"Nemko Presafe",
	"Presafe",
	"NEMKO",
	"Kiwa ExVision",
	"Kiwa",
	"UL",
}
