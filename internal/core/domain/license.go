package domain

import "time"

// Defaults for the BSL license file.
const (
	DefaultLicensePath    = "LICENSE.md"
	DefaultLicenseProduct = "Omnera"
	DefaultChangeYears    = 4
)

// ChangeDateLayout is the format of the BSL "Change Date" field.
const ChangeDateLayout = "2006-01-02"

// LicenseField names one of the stamped fields.
type LicenseField string

const (
	FieldVersion    LicenseField = "version"
	FieldCopyright  LicenseField = "copyright year"
	FieldChangeDate LicenseField = "change date"
)

// LicenseStamp holds the values written into the license file.
type LicenseStamp struct {
	Product    string
	Version    string
	Year       int
	ChangeDate time.Time
}

// NewLicenseStamp computes a stamp for version as of now.
// The change date lies changeYears calendar years after now.
func NewLicenseStamp(product, version string, now time.Time, changeYears int) LicenseStamp {
	return LicenseStamp{
		Product:    product,
		Version:    version,
		Year:       now.Year(),
		ChangeDate: now.AddDate(changeYears, 0, 0),
	}
}

// ChangeDateString returns the change date in license format.
func (s LicenseStamp) ChangeDateString() string {
	return s.ChangeDate.Format(ChangeDateLayout)
}

// StampReport describes the outcome of stamping a license file.
type StampReport struct {
	Stamp    LicenseStamp
	Updated  []LicenseField
	Missing  []LicenseField
	Modified bool
}
