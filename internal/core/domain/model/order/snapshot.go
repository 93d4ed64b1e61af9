package order

import (
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
)

// Snapshot is the technical description of a package specification as it
// was when an item was added. It has no setters: once taken, it never changes,
// even if the specification is edited later.
type Snapshot struct {
	material   string
	dimensions packaging.Dimensions
	tapeType   string
	printed    bool
	treated    bool
}

// SnapshotOf copies the specification field by field.
func SnapshotOf(spec *packaging.Specification) Snapshot {
	return RestoreSnapshot(
		spec.Material(),
		spec.Dimensions(),
		spec.TapeType(),
		spec.Printed(),
		spec.Treated(),
	)
}

// RestoreSnapshot rebuilds a persisted snapshot.
func RestoreSnapshot(material string, dimensions packaging.Dimensions, tapeType string, printed, treated bool) Snapshot {
	return Snapshot{
		material:   material,
		dimensions: copyDimensions(dimensions),
		tapeType:   tapeType,
		printed:    printed,
		treated:    treated,
	}
}

func (s Snapshot) Material() string {
	return s.material
}

// Dimensions returns a copy; mutating it does not affect the snapshot.
func (s Snapshot) Dimensions() packaging.Dimensions {
	return copyDimensions(s.dimensions)
}

func (s Snapshot) TapeType() string {
	return s.tapeType
}

func (s Snapshot) Printed() bool {
	return s.printed
}

func (s Snapshot) Treated() bool {
	return s.treated
}

func copyDimensions(d packaging.Dimensions) packaging.Dimensions {
	return packaging.Dimensions{
		ThicknessUm: copyInt(d.ThicknessUm),
		WidthMm:     copyInt(d.WidthMm),
		HeightMm:    copyInt(d.HeightMm),
		GussetMm:    d.GussetMm,
		FlapMm:      d.FlapMm,
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
