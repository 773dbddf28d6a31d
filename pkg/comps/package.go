package comps

// PackageType classifies a package inside a group.
type PackageType int

const (
	PackageUnknown PackageType = iota
	PackageDefault
	PackageMandatory
	PackageOptional
	PackageConditional
)

func (t PackageType) String() string {
	switch t {
	case PackageDefault:
		return PackageTypeNameDefault
	case PackageMandatory:
		return PackageTypeNameMandatory
	case PackageOptional:
		return PackageTypeNameOptional
	case PackageConditional:
		return PackageTypeNameConditional
	default:
		return PackageTypeNameUnknown
	}
}

// ParsePackageType maps a type attribute value to a PackageType.
// Unrecognized names return PackageUnknown and false.
func ParsePackageType(name string) (PackageType, bool) {
	switch name {
	case PackageTypeNameDefault:
		return PackageDefault, true
	case PackageTypeNameMandatory:
		return PackageMandatory, true
	case PackageTypeNameOptional:
		return PackageOptional, true
	case PackageTypeNameConditional:
		return PackageConditional, true
	case PackageTypeNameUnknown:
		return PackageUnknown, true
	default:
		return PackageUnknown, false
	}
}

// Package is a package requirement of a group. Requires names the package
// that triggers a conditional requirement.
type Package struct {
	Name     string
	Type     PackageType
	Requires string
}

// NewPackage returns a Package of the given type.
func NewPackage(name string, typ PackageType) Package {
	return Package{Name: name, Type: typ}
}

// NewConditionalPackage returns a package installed when requires is installed.
func NewConditionalPackage(name, requires string) Package {
	return Package{Name: name, Type: PackageConditional, Requires: requires}
}

// ItemID returns the package name.
func (p Package) ItemID() string { return p.Name }

// Equal compares name and type, and requires for conditional packages.
func (p Package) Equal(other Package) bool {
	if p.Name != other.Name || p.Type != other.Type {
		return false
	}
	if p.Type == PackageConditional {
		return p.Requires == other.Requires
	}
	return true
}

func (p Package) Clone() Package { return p }

// Merge keeps p; package fields are scalars and the left side wins.
func (p Package) Merge(Package) Package { return p }
