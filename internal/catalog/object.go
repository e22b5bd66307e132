// Package catalog provides the deep-sky object model and catalog loading.
package catalog

import "strings"

// ObjectType classifies a deep-sky object.
type ObjectType int

const (
	TypeUnknown ObjectType = iota
	TypeGalaxy
	TypeOpenCluster
	TypeGlobularCluster
	TypeNebula
	TypePlanetaryNebula
	TypeEmissionNebula
	TypeReflectionNebula
	TypeSupernovaRemnant
	TypeHIIRegion
	TypeClusterNebula
	TypeAGN
)

// String returns the short catalog code for the type.
func (t ObjectType) String() string {
	switch t {
	case TypeGalaxy:
		return "Gal"
	case TypeOpenCluster:
		return "OCl"
	case TypeGlobularCluster:
		return "GCl"
	case TypeNebula:
		return "Neb"
	case TypePlanetaryNebula:
		return "PN"
	case TypeEmissionNebula:
		return "EmN"
	case TypeReflectionNebula:
		return "RfN"
	case TypeSupernovaRemnant:
		return "SNR"
	case TypeHIIRegion:
		return "HII"
	case TypeClusterNebula:
		return "Cl+N"
	case TypeAGN:
		return "AGN"
	default:
		return "?"
	}
}

// Label returns the human-readable name for the type.
func (t ObjectType) Label() string {
	switch t {
	case TypeGalaxy:
		return "Galaxy"
	case TypeOpenCluster:
		return "Open Cluster"
	case TypeGlobularCluster:
		return "Globular Cluster"
	case TypeNebula:
		return "Nebula"
	case TypePlanetaryNebula:
		return "Planetary Nebula"
	case TypeEmissionNebula:
		return "Emission Nebula"
	case TypeReflectionNebula:
		return "Reflection Nebula"
	case TypeSupernovaRemnant:
		return "Supernova Remnant"
	case TypeHIIRegion:
		return "HII Region"
	case TypeClusterNebula:
		return "Cluster + Nebula"
	case TypeAGN:
		return "Active Galactic Nucleus"
	default:
		return "Unknown"
	}
}

// AllTypes lists the known object types in display order.
var AllTypes = []ObjectType{
	TypeGalaxy, TypeOpenCluster, TypeGlobularCluster, TypeNebula,
	TypePlanetaryNebula, TypeEmissionNebula, TypeReflectionNebula,
	TypeSupernovaRemnant, TypeHIIRegion, TypeClusterNebula, TypeAGN,
}

// ParseObjectType maps a catalog type string (short code or long name, any
// case) to an ObjectType. Unrecognized strings map to TypeUnknown.
func ParseObjectType(s string) ObjectType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gal", "g", "gx", "gxy", "galaxy":
		return TypeGalaxy
	case "ocl", "oc", "mwsc", "open cluster":
		return TypeOpenCluster
	case "gcl", "gb", "globular cluster":
		return TypeGlobularCluster
	case "neb", "nebula", "nebula (general)":
		return TypeNebula
	case "pn", "planetary nebula":
		return TypePlanetaryNebula
	case "emn", "emission nebula":
		return TypeEmissionNebula
	case "rfn", "reflection nebula":
		return TypeReflectionNebula
	case "snr", "supernova remnant":
		return TypeSupernovaRemnant
	case "hii", "hii region":
		return TypeHIIRegion
	case "cl+n", "c+n", "cluster + nebula", "cluster+nebula":
		return TypeClusterNebula
	case "agn", "active galactic nucleus":
		return TypeAGN
	default:
		return TypeUnknown
	}
}

// Object is one catalogued deep-sky object. RA/Dec are ICRS-like J2000
// degrees. Mag and MajAxArcmin are nil when the catalog has no value; an
// object without magnitude is excluded from magnitude filtering only while a
// magnitude filter is active.
type Object struct {
	Name        string
	Type        ObjectType
	RADeg       float64
	DecDeg      float64
	Mag         *float64
	MajAxArcmin *float64
}

// HasMag reports whether the object carries an apparent magnitude.
func (o Object) HasMag() bool { return o.Mag != nil }

// HasSize reports whether the object carries an angular size.
func (o Object) HasSize() bool { return o.MajAxArcmin != nil }

func fptr(v float64) *float64 { return &v }
