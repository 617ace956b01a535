// Package pipe defines the pipe segment data model shared by the
// calculation packages: the service description, the derived dimensional
// snapshot, the inspection record and the error taxonomy.
package pipe

import (
	"fmt"

	tables "Gauge/internal/tables"
)

type Config string

const (
	ConfigStraight   Config = "straight"
	ConfigInnerElbow Config = "90LR - Inner Elbow"
	ConfigOuterElbow Config = "90LR - Outer Elbow"
)

type Metallurgy string

const (
	MetallurgyCS         Metallurgy = "Intermediate/Low CS"
	MetallurgySS316      Metallurgy = "SS 316/316L"
	MetallurgySS304      Metallurgy = "SS 304/304L"
	MetallurgyInconel625 Metallurgy = "Inconel 625"
	MetallurgyOther      Metallurgy = "Other"
)

type JointType string

const (
	JointSeamless JointType = "seamless"
)

type CodeEdition string

const (
	Edition2025 CodeEdition = "2025"
	Edition2009 CodeEdition = "2009"
)

// Temperature is a design temperature restricted to the code-table points.
// "<900" and "1250+" are open-ended rows in the printed table.
type Temperature string

const (
	TempBelow900 Temperature = "<900"
	Temp900      Temperature = "900"
	Temp950      Temperature = "950"
	Temp1000     Temperature = "1000"
	Temp1050     Temperature = "1050"
	Temp1100     Temperature = "1100"
	Temp1150     Temperature = "1150"
	Temp1200     Temperature = "1200"
	Temp1250     Temperature = "1250"
	TempAbove    Temperature = "1250+"
)

// TablePoint rounds the temperature to the lookup key used by the
// Y-coefficient table.
func (t Temperature) TablePoint() (int, bool) {
	switch t {
	case TempBelow900, Temp900, "":
		return 900, true
	case Temp950:
		return 950, true
	case Temp1000:
		return 1000, true
	case Temp1050:
		return 1050, true
	case Temp1100:
		return 1100, true
	case Temp1150:
		return 1150, true
	case Temp1200:
		return 1200, true
	case Temp1250, TempAbove:
		return 1250, true
	}
	return 0, false
}

var validSchedules = map[int]bool{10: true, 40: true, 80: true, 120: true, 160: true}

var validClasses = map[int]bool{150: true, 300: true, 600: true, 900: true, 1500: true, 2500: true}

var validMetallurgies = map[Metallurgy]bool{
	MetallurgyCS:         true,
	MetallurgySS316:      true,
	MetallurgySS304:      true,
	MetallurgyInconel625: true,
	MetallurgyOther:      true,
}

// Spec is the immutable description of a pipe segment and its service.
// Thickness figures are inches, pressure and stress psi, corrosion rate
// mils per year.
type Spec struct {
	NPS             float64     `json:"nps"`
	Schedule        int         `json:"schedule"`
	Config          Config      `json:"pipe_config"`
	Pressure        float64     `json:"pressure_psi"`
	PressureClass   int         `json:"pressure_class"`
	DesignTemp      Temperature `json:"design_temp"`
	Metallurgy      Metallurgy  `json:"metallurgy"`
	YieldStress     float64     `json:"yield_stress_psi"`
	CorrosionRate   *float64    `json:"corrosion_rate_mpy,omitempty"`
	RetirementLimit *float64    `json:"retirement_limit_in,omitempty"`
	CodeEdition     CodeEdition `json:"code_edition"`
	JointType       JointType   `json:"joint_type"`
}

// Validate rejects out-of-enum values up front so lookups never see them.
func (s Spec) Validate() error {
	if !validSchedules[s.Schedule] {
		return fmt.Errorf("%w: schedule %d", ErrInvalidGeometry, s.Schedule)
	}
	if !validClasses[s.PressureClass] {
		return fmt.Errorf("%w: pressure class %d", ErrUnsupportedConfiguration, s.PressureClass)
	}
	switch s.Config {
	case "", ConfigStraight, ConfigInnerElbow, ConfigOuterElbow:
	default:
		return fmt.Errorf("%w: pipe configuration %q", ErrUnsupportedConfiguration, s.Config)
	}
	if !validMetallurgies[s.Metallurgy] {
		return fmt.Errorf("%w: metallurgy %q", ErrUnsupportedConfiguration, s.Metallurgy)
	}
	if _, ok := s.DesignTemp.TablePoint(); !ok {
		return fmt.Errorf("%w: design temperature %q", ErrMissingMaterialData, s.DesignTemp)
	}
	if s.YieldStress <= 0 {
		return fmt.Errorf("%w: yield stress must be positive, got %g", ErrMissingMaterialData, s.YieldStress)
	}
	if s.CorrosionRate != nil && *s.CorrosionRate < 0 {
		return fmt.Errorf("%w: corrosion rate must not be negative, got %g", ErrUnsupportedConfiguration, *s.CorrosionRate)
	}
	switch s.JointType {
	case "", JointSeamless:
	default:
		return fmt.Errorf("%w: joint type %q, only seamless pipe is supported", ErrUnsupportedConfiguration, s.JointType)
	}
	switch s.CodeEdition {
	case "", Edition2025, Edition2009:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCodeEdition, s.CodeEdition)
	}
	return nil
}

// Edition returns the structural code edition, defaulting to 2025.
func (s Spec) Edition() CodeEdition {
	if s.CodeEdition == "" {
		return Edition2025
	}
	return s.CodeEdition
}

// Configuration returns the pipe configuration, defaulting to straight.
func (s Spec) Configuration() Config {
	if s.Config == "" {
		return ConfigStraight
	}
	return s.Config
}

// yFamily maps a metallurgy to its Y-coefficient table family.
func (s Spec) yFamily() string {
	switch s.Metallurgy {
	case MetallurgyCS:
		return tables.YFamilyFerritic
	case MetallurgySS316, MetallurgySS304:
		return tables.YFamilyAustenitic
	case MetallurgyInconel625:
		return tables.YFamilyNickel
	default:
		return tables.YFamilyOtherDuctle
	}
}

// Enriched is the derived dimensional snapshot, computed once per analysis
// and never mutated afterwards.
type Enriched struct {
	OuterDiameter    float64 `json:"outer_diameter_in"`
	InnerDiameter    float64 `json:"inner_diameter_in"`
	AllowableStress  float64 `json:"allowable_stress_psi"`
	YCoefficient     float64 `json:"y_coefficient"`
	CenterlineRadius float64 `json:"centerline_radius_in"`
	JointEfficiency  float64 `json:"joint_efficiency"`
	WeldReduction    float64 `json:"weld_strength_reduction"`
	Config           Config  `json:"pipe_config"`
	Pressure         float64 `json:"pressure_psi"`
}

// NominalWall is the sanity bound for measured thickness.
func (e Enriched) NominalWall() float64 {
	return e.OuterDiameter - e.InnerDiameter
}

// Enrich resolves a Spec against the lookup set. Allowable stress is
// 2/3 of yield per ASME B31.3; seamless pipe carries E = W = 1.0.
func Enrich(s Spec, set tables.Set) (Enriched, error) {
	if err := s.Validate(); err != nil {
		return Enriched{}, err
	}

	od, ok := set.OuterDiameter.Get(s.NPS)
	if !ok {
		return Enriched{}, fmt.Errorf("%w: no outer diameter for NPS %g", ErrInvalidGeometry, s.NPS)
	}
	id, ok := set.InnerDiameter.Get(s.Schedule, s.NPS)
	if !ok {
		return Enriched{}, fmt.Errorf("%w: no inner diameter for NPS %g schedule %d", ErrInvalidGeometry, s.NPS, s.Schedule)
	}

	point, _ := s.DesignTemp.TablePoint()
	y, ok := set.YCoefficient.Get(s.yFamily(), point)
	if !ok {
		return Enriched{}, fmt.Errorf("%w: no Y coefficient for %s at %d F", ErrMissingMaterialData, s.Metallurgy, point)
	}

	e := Enriched{
		OuterDiameter:   od,
		InnerDiameter:   id,
		AllowableStress: s.YieldStress * 2.0 / 3.0,
		YCoefficient:    y,
		JointEfficiency: 1.0,
		WeldReduction:   1.0,
		Config:          s.Configuration(),
		Pressure:        s.Pressure,
	}

	if e.Config == ConfigInnerElbow || e.Config == ConfigOuterElbow {
		r, ok := set.ElbowRadius.Get(s.NPS)
		if !ok {
			return Enriched{}, fmt.Errorf("%w: no elbow centerline radius for NPS %g", ErrInvalidGeometry, s.NPS)
		}
		e.CenterlineRadius = r
	}

	return e, nil
}
