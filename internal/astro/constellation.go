package astro

// ConstellationAt returns the name of the constellation nearest to the given
// equatorial position (degrees, J2000).
//
// The lookup is by great-circle distance to tabulated constellation centers,
// not by the exact IAU boundaries. Near a boundary the answer can differ from
// the official assignment, which is acceptable for display purposes. The
// Messier and NGC showpieces users actually look up sit well inside their
// constellations.
func ConstellationAt(raDeg, decDeg float64) string {
	best := ""
	bestSep := 360.0
	for _, c := range constellationCenters {
		sep := AngularSeparation(raDeg, decDeg, c.RADeg, c.DecDeg)
		if sep < bestSep {
			bestSep = sep
			best = c.Name
		}
	}
	return best
}

// constellationCenter is an approximate midpoint of a constellation's area.
type constellationCenter struct {
	Name   string
	Abbrev string
	RADeg  float64
	DecDeg float64
}

// constellationCenters covers all 88 IAU constellations. Centers are
// approximate area midpoints (J2000), RA converted from hours to degrees.
var constellationCenters = []constellationCenter{
	{"Andromeda", "And", 12.0, 37.0},
	{"Antlia", "Ant", 150.0, -33.0},
	{"Apus", "Aps", 240.0, -75.0},
	{"Aquarius", "Aqr", 335.0, -10.0},
	{"Aquila", "Aql", 295.0, 3.0},
	{"Ara", "Ara", 260.0, -55.0},
	{"Aries", "Ari", 40.0, 20.0},
	{"Auriga", "Aur", 90.0, 42.0},
	{"Boötes", "Boo", 220.0, 31.0},
	{"Caelum", "Cae", 70.0, -38.0},
	{"Camelopardalis", "Cam", 90.0, 69.0},
	{"Cancer", "Cnc", 130.0, 20.0},
	{"Canes Venatici", "CVn", 195.0, 40.0},
	{"Canis Major", "CMa", 103.0, -22.0},
	{"Canis Minor", "CMi", 115.0, 6.0},
	{"Capricornus", "Cap", 315.0, -18.0},
	{"Carina", "Car", 130.0, -60.0},
	{"Cassiopeia", "Cas", 15.0, 62.0},
	{"Centaurus", "Cen", 195.0, -47.0},
	{"Cepheus", "Cep", 330.0, 70.0},
	{"Cetus", "Cet", 25.0, -8.0},
	{"Chamaeleon", "Cha", 160.0, -79.0},
	{"Circinus", "Cir", 219.0, -63.0},
	{"Columba", "Col", 87.0, -35.0},
	{"Coma Berenices", "Com", 191.0, 23.0},
	{"Corona Australis", "CrA", 280.0, -41.0},
	{"Corona Borealis", "CrB", 237.0, 33.0},
	{"Corvus", "Crv", 186.0, -18.0},
	{"Crater", "Crt", 170.0, -15.0},
	{"Crux", "Cru", 186.0, -60.0},
	{"Cygnus", "Cyg", 309.0, 45.0},
	{"Delphinus", "Del", 310.0, 12.0},
	{"Dorado", "Dor", 78.0, -60.0},
	{"Draco", "Dra", 255.0, 65.0},
	{"Equuleus", "Equ", 317.0, 8.0},
	{"Eridanus", "Eri", 50.0, -28.0},
	{"Fornax", "For", 42.0, -30.0},
	{"Gemini", "Gem", 105.0, 23.0},
	{"Grus", "Gru", 337.0, -46.0},
	{"Hercules", "Her", 261.0, 27.0},
	{"Horologium", "Hor", 49.0, -53.0},
	{"Hydra", "Hya", 160.0, -20.0},
	{"Hydrus", "Hyi", 35.0, -70.0},
	{"Indus", "Ind", 330.0, -60.0},
	{"Lacerta", "Lac", 337.0, 46.0},
	{"Leo", "Leo", 160.0, 13.0},
	{"Leo Minor", "LMi", 154.0, 32.0},
	{"Lepus", "Lep", 83.0, -19.0},
	{"Libra", "Lib", 228.0, -15.0},
	{"Lupus", "Lup", 228.0, -42.0},
	{"Lynx", "Lyn", 120.0, 47.0},
	{"Lyra", "Lyr", 283.0, 37.0},
	{"Mensa", "Men", 81.0, -77.0},
	{"Microscopium", "Mic", 314.0, -36.0},
	{"Monoceros", "Mon", 105.0, -3.0},
	{"Musca", "Mus", 189.0, -70.0},
	{"Norma", "Nor", 239.0, -51.0},
	{"Octans", "Oct", 315.0, -85.0},
	{"Ophiuchus", "Oph", 257.0, -7.0},
	{"Orion", "Ori", 83.0, 3.0},
	{"Pavo", "Pav", 294.0, -65.0},
	{"Pegasus", "Peg", 340.0, 19.0},
	{"Perseus", "Per", 48.0, 45.0},
	{"Phoenix", "Phe", 14.0, -48.0},
	{"Pictor", "Pic", 86.0, -53.0},
	{"Pisces", "Psc", 7.0, 14.0},
	{"Piscis Austrinus", "PsA", 334.0, -30.0},
	{"Puppis", "Pup", 109.0, -31.0},
	{"Pyxis", "Pyx", 134.0, -27.0},
	{"Reticulum", "Ret", 59.0, -60.0},
	{"Sagitta", "Sge", 295.0, 18.0},
	{"Sagittarius", "Sgr", 286.0, -28.0},
	{"Scorpius", "Sco", 253.0, -27.0},
	{"Sculptor", "Scl", 6.0, -32.0},
	{"Scutum", "Sct", 280.0, -10.0},
	{"Serpens", "Ser", 236.0, 6.0},
	{"Sextans", "Sex", 154.0, -2.0},
	{"Taurus", "Tau", 70.0, 15.0},
	{"Telescopium", "Tel", 290.0, -51.0},
	{"Triangulum", "Tri", 33.0, 31.0},
	{"Triangulum Australe", "TrA", 241.0, -65.0},
	{"Tucana", "Tuc", 356.0, -65.0},
	{"Ursa Major", "UMa", 170.0, 50.0},
	{"Ursa Minor", "UMi", 225.0, 77.0},
	{"Vela", "Vel", 144.0, -47.0},
	{"Virgo", "Vir", 201.0, -4.0},
	{"Volans", "Vol", 121.0, -69.0},
	{"Vulpecula", "Vul", 303.0, 24.0},
}
