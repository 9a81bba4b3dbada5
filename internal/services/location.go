package services

import (
	"context"
	"regexp"

	apperrors "github.com/tnsurya7/newtons-labs/internal/errors"
	"github.com/tnsurya7/newtons-labs/internal/models"
)

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// LocationProvider resolves collection centres near a pincode.
type LocationProvider interface {
	NearbyCentres(ctx context.Context, pincode string) ([]models.Location, error)
}

// staticLocationProvider serves a fixed set of centres until a geo-backed
// lookup exists. Distances are indicative, not computed.
type staticLocationProvider struct{}

func NewStaticLocationProvider() LocationProvider {
	return &staticLocationProvider{}
}

func (p *staticLocationProvider) NearbyCentres(_ context.Context, pincode string) ([]models.Location, error) {

	if !pincodePattern.MatchString(pincode) {
		return nil, apperrors.ValidationError("Invalid pincode")
	}

	return []models.Location{
		{
			ID:       "centre-anna-nagar",
			Name:     "Newton's Labs - Anna Nagar",
			Address:  "Plot 42, 2nd Avenue, Anna Nagar",
			Pincode:  pincode,
			Phone:    "04442001100",
			Distance: "1.2 km",
			Timings:  "6:00 AM - 9:00 PM",
			Services: []string{"Blood collection", "Home visit", "ECG"},
		},
		{
			ID:       "centre-tnagar",
			Name:     "Newton's Labs - T. Nagar",
			Address:  "118, Usman Road, T. Nagar",
			Pincode:  pincode,
			Phone:    "04442001101",
			Distance: "3.5 km",
			Timings:  "6:30 AM - 8:30 PM",
			Services: []string{"Blood collection", "X-Ray", "Ultrasound"},
		},
		{
			ID:       "centre-velachery",
			Name:     "Newton's Labs - Velachery",
			Address:  "27, Velachery Main Road",
			Pincode:  pincode,
			Phone:    "04442001102",
			Distance: "5.1 km",
			Timings:  "7:00 AM - 9:00 PM",
			Services: []string{"Blood collection", "Home visit", "Full body checkup"},
		},
	}, nil
}
