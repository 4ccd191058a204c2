package pos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRequests() []PosRequest {
	return []PosRequest{
		{
			Name:        "Schmelzpunkt",
			Description: "Great waffles",
			Type:        TypeCafe,
			Campus:      CampusAltstadt,
			Street:      "Hauptstraße",
			HouseNumber: "90",
			PostalCode:  69117,
			City:        "Heidelberg",
		},
		{
			Name:        "Bäcker Görtz",
			Description: "Walking distance to lecture hall",
			Type:        TypeBakery,
			Campus:      CampusINF,
			Street:      "Berliner Str.",
			HouseNumber: "43",
			PostalCode:  69120,
			City:        "Heidelberg",
		},
		{
			Name:        "Café Botanik",
			Description: "Outdoor seating available",
			Type:        TypeCafeteria,
			Campus:      CampusINF,
			Street:      "Im Neuenheimer Feld",
			HouseNumber: "304",
			PostalCode:  69120,
			City:        "Heidelberg",
		},
	}
}

func newTestService(t *testing.T, repo Repository) Service {
	v, err := NewValidator()
	require.NoError(t, err)
	return NewService(repo, v, zap.NewNop())
}

// withoutServerFields zeroes id and timestamps so records can be compared
// against their request payloads.
func withoutServerFields(items []*Pos) []Pos {
	out := make([]Pos, 0, len(items))
	for _, p := range items {
		cp := *p
		cp.ID = uuid.Nil
		cp.CreatedAt, cp.UpdatedAt = time.Time{}, time.Time{}
		out = append(out, cp)
	}
	return out
}

func expectedFrom(reqs []PosRequest) []Pos {
	out := make([]Pos, 0, len(reqs))
	for _, req := range reqs {
		var p Pos
		req.apply(&p)
		out = append(out, p)
	}
	return out
}
