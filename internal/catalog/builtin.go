package catalog

// Builtin returns the embedded fallback catalog used when no catalog file is
// configured. It covers the bright Messier showpieces plus a few northern and
// southern staples, enough for a useful session without any data files.
func Builtin() []Object {
	out := make([]Object, len(builtinObjects))
	copy(out, builtinObjects)
	return out
}

// builtinObjects holds J2000 coordinates, V magnitudes and major-axis sizes
// in arcminutes. Values follow the common catalog figures.
var builtinObjects = []Object{
	{Name: "M1", Type: TypeSupernovaRemnant, RADeg: 83.6331, DecDeg: 22.0145, Mag: fptr(8.4), MajAxArcmin: fptr(6.0)},
	{Name: "M2", Type: TypeGlobularCluster, RADeg: 323.3626, DecDeg: -0.8233, Mag: fptr(6.5), MajAxArcmin: fptr(16.0)},
	{Name: "M3", Type: TypeGlobularCluster, RADeg: 205.5484, DecDeg: 28.3773, Mag: fptr(6.2), MajAxArcmin: fptr(18.0)},
	{Name: "M5", Type: TypeGlobularCluster, RADeg: 229.6384, DecDeg: 2.0810, Mag: fptr(6.7), MajAxArcmin: fptr(23.0)},
	{Name: "M8", Type: TypeEmissionNebula, RADeg: 270.9042, DecDeg: -24.3867, Mag: fptr(6.0), MajAxArcmin: fptr(90.0)},
	{Name: "M11", Type: TypeOpenCluster, RADeg: 282.7660, DecDeg: -6.2681, Mag: fptr(6.3), MajAxArcmin: fptr(14.0)},
	{Name: "M13", Type: TypeGlobularCluster, RADeg: 250.4235, DecDeg: 36.4613, Mag: fptr(5.8), MajAxArcmin: fptr(20.0)},
	{Name: "M15", Type: TypeGlobularCluster, RADeg: 322.4930, DecDeg: 12.1670, Mag: fptr(6.2), MajAxArcmin: fptr(18.0)},
	{Name: "M16", Type: TypeClusterNebula, RADeg: 274.7000, DecDeg: -13.8067, Mag: fptr(6.4), MajAxArcmin: fptr(35.0)},
	{Name: "M17", Type: TypeEmissionNebula, RADeg: 275.1958, DecDeg: -16.1717, Mag: fptr(6.0), MajAxArcmin: fptr(11.0)},
	{Name: "M20", Type: TypeEmissionNebula, RADeg: 270.5958, DecDeg: -23.0300, Mag: fptr(6.3), MajAxArcmin: fptr(28.0)},
	{Name: "M22", Type: TypeGlobularCluster, RADeg: 279.0998, DecDeg: -23.9036, Mag: fptr(5.1), MajAxArcmin: fptr(32.0)},
	{Name: "M27", Type: TypePlanetaryNebula, RADeg: 299.9016, DecDeg: 22.7212, Mag: fptr(7.4), MajAxArcmin: fptr(8.0)},
	{Name: "M31", Type: TypeGalaxy, RADeg: 10.6847, DecDeg: 41.2692, Mag: fptr(3.4), MajAxArcmin: fptr(178.0)},
	{Name: "M33", Type: TypeGalaxy, RADeg: 23.4621, DecDeg: 30.6599, Mag: fptr(5.7), MajAxArcmin: fptr(73.0)},
	{Name: "M35", Type: TypeOpenCluster, RADeg: 92.2250, DecDeg: 24.3333, Mag: fptr(5.1), MajAxArcmin: fptr(28.0)},
	{Name: "M36", Type: TypeOpenCluster, RADeg: 84.0833, DecDeg: 34.1350, Mag: fptr(6.0), MajAxArcmin: fptr(12.0)},
	{Name: "M37", Type: TypeOpenCluster, RADeg: 88.0740, DecDeg: 32.5533, Mag: fptr(5.6), MajAxArcmin: fptr(24.0)},
	{Name: "M38", Type: TypeOpenCluster, RADeg: 82.1770, DecDeg: 35.8550, Mag: fptr(6.4), MajAxArcmin: fptr(21.0)},
	{Name: "M41", Type: TypeOpenCluster, RADeg: 101.5042, DecDeg: -20.7567, Mag: fptr(4.5), MajAxArcmin: fptr(38.0)},
	{Name: "M42", Type: TypeEmissionNebula, RADeg: 83.8221, DecDeg: -5.3911, Mag: fptr(4.0), MajAxArcmin: fptr(85.0)},
	{Name: "M44", Type: TypeOpenCluster, RADeg: 130.0250, DecDeg: 19.6667, Mag: fptr(3.1), MajAxArcmin: fptr(95.0)},
	{Name: "M45", Type: TypeOpenCluster, RADeg: 56.7500, DecDeg: 24.1167, Mag: fptr(1.6), MajAxArcmin: fptr(110.0)},
	{Name: "M46", Type: TypeOpenCluster, RADeg: 115.4458, DecDeg: -14.8100, Mag: fptr(6.1), MajAxArcmin: fptr(27.0)},
	{Name: "M51", Type: TypeGalaxy, RADeg: 202.4696, DecDeg: 47.1952, Mag: fptr(8.4), MajAxArcmin: fptr(11.0)},
	{Name: "M57", Type: TypePlanetaryNebula, RADeg: 283.3962, DecDeg: 33.0289, Mag: fptr(8.8), MajAxArcmin: fptr(1.4)},
	{Name: "M63", Type: TypeGalaxy, RADeg: 198.9554, DecDeg: 42.0294, Mag: fptr(8.6), MajAxArcmin: fptr(12.6)},
	{Name: "M64", Type: TypeGalaxy, RADeg: 194.1821, DecDeg: 21.6828, Mag: fptr(8.5), MajAxArcmin: fptr(10.0)},
	{Name: "M65", Type: TypeGalaxy, RADeg: 169.7332, DecDeg: 13.0922, Mag: fptr(9.3), MajAxArcmin: fptr(8.7)},
	{Name: "M66", Type: TypeGalaxy, RADeg: 170.0624, DecDeg: 12.9916, Mag: fptr(8.9), MajAxArcmin: fptr(9.1)},
	{Name: "M78", Type: TypeReflectionNebula, RADeg: 86.6908, DecDeg: 0.0789, Mag: fptr(8.3), MajAxArcmin: fptr(8.0)},
	{Name: "M81", Type: TypeGalaxy, RADeg: 148.8882, DecDeg: 69.0653, Mag: fptr(6.9), MajAxArcmin: fptr(27.0)},
	{Name: "M82", Type: TypeGalaxy, RADeg: 148.9685, DecDeg: 69.6797, Mag: fptr(8.4), MajAxArcmin: fptr(11.0)},
	{Name: "M87", Type: TypeGalaxy, RADeg: 187.7059, DecDeg: 12.3911, Mag: fptr(8.6), MajAxArcmin: fptr(8.3)},
	{Name: "M92", Type: TypeGlobularCluster, RADeg: 259.2808, DecDeg: 43.1364, Mag: fptr(6.4), MajAxArcmin: fptr(14.0)},
	{Name: "M97", Type: TypePlanetaryNebula, RADeg: 168.6988, DecDeg: 55.0191, Mag: fptr(9.9), MajAxArcmin: fptr(3.4)},
	{Name: "M101", Type: TypeGalaxy, RADeg: 210.8024, DecDeg: 54.3488, Mag: fptr(7.9), MajAxArcmin: fptr(29.0)},
	{Name: "M104", Type: TypeGalaxy, RADeg: 189.9976, DecDeg: -11.6231, Mag: fptr(8.0), MajAxArcmin: fptr(8.7)},
	{Name: "M106", Type: TypeGalaxy, RADeg: 184.7396, DecDeg: 47.3040, Mag: fptr(8.4), MajAxArcmin: fptr(18.6)},
	{Name: "NGC 7000", Type: TypeEmissionNebula, RADeg: 314.6958, DecDeg: 44.5194, Mag: fptr(4.0), MajAxArcmin: fptr(120.0)},
	{Name: "NGC 869", Type: TypeOpenCluster, RADeg: 34.7500, DecDeg: 57.1330, Mag: fptr(5.3), MajAxArcmin: fptr(30.0)},
	{Name: "NGC 884", Type: TypeOpenCluster, RADeg: 35.5830, DecDeg: 57.1490, Mag: fptr(6.1), MajAxArcmin: fptr(30.0)},
	{Name: "NGC 5139", Type: TypeGlobularCluster, RADeg: 201.6970, DecDeg: -47.4795, Mag: fptr(3.7), MajAxArcmin: fptr(36.0)},
	{Name: "NGC 104", Type: TypeGlobularCluster, RADeg: 6.0236, DecDeg: -72.0814, Mag: fptr(4.0), MajAxArcmin: fptr(31.0)},
}
