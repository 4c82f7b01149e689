package usecase

import (
	"context"
	"math"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"
)

const (
	EarthRadiusMeters = 6371000

	// radiusTolerance menyerap galat pembulatan float64 di batas radius.
	radiusTolerance = 1e-6
)

// Distance menghitung jarak permukaan dua titik koordinat (derajat) dengan
// rumus Haversine. Hasil dalam meter.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func withinRadius(distance float64, loc model.OfficeLocation) bool {
	return distance <= float64(loc.Radius)+radiusTolerance
}

// LocationCheck adalah hasil pengecekan lokasi lengkap dengan kantor terdekat.
type LocationCheck struct {
	Valid    bool                  `json:"valid"`
	Distance *float64              `json:"distance"`
	Nearest  *model.OfficeLocation `json:"nearest"`
}

type LocationValidator struct {
	locations repository.OfficeLocationRepository
}

func NewLocationValidator(locations repository.OfficeLocationRepository) *LocationValidator {
	return &LocationValidator{locations: locations}
}

// Validate bernilai true jika titik berada di dalam radius salah satu lokasi
// kantor yang aktif. Tanpa lokasi aktif, hasilnya selalu false.
func (v *LocationValidator) Validate(ctx context.Context, lat, lon float64) (bool, error) {
	active, err := v.locations.ListActive(ctx)
	if err != nil {
		return false, err
	}
	for _, loc := range active {
		if withinRadius(Distance(lat, lon, loc.Latitude, loc.Longitude), loc) {
			return true, nil
		}
	}
	return false, nil
}

// Check seperti Validate tetapi selalu memeriksa semua lokasi untuk mencari
// yang terdekat. Lokasi valid didahulukan dibanding yang lebih dekat tapi di
// luar radius.
func (v *LocationValidator) Check(ctx context.Context, lat, lon float64) (*LocationCheck, error) {
	active, err := v.locations.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &LocationCheck{}
	best := math.MaxFloat64
	for i := range active {
		loc := active[i]
		d := Distance(lat, lon, loc.Latitude, loc.Longitude)
		inside := withinRadius(d, loc)
		if result.Valid && !inside {
			continue
		}
		if (inside && !result.Valid) || d < best {
			best = d
			dist := d
			result.Distance = &dist
			result.Nearest = &loc
			result.Valid = inside
		}
	}
	return result, nil
}
