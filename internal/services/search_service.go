package services

import (
	"math"
	"sort"
	"strings"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two points in
// kilometres. Inputs are degrees.
func Haversine(from, to domain.Coordinates) float64 {
	dLat := degToRad(to.Lat - from.Lat)
	dLng := degToRad(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(from.Lat))*math.Cos(degToRad(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// SearchMechanics filters the directory by brand and location and
// optionally ranks by distance from a reference location.
//
// Both filters are case-insensitive substring matches (brand against any
// element of the profile's brand list, location against pincode, area and
// city); an empty query matches everything and a profile must pass both.
// With distance sorting the surviving profiles are ordered nearest first,
// ties keeping their original relative order; otherwise the directory's
// insertion order is preserved.
func SearchMechanics(profiles []domain.MechanicProfile, query domain.SearchQuery) []domain.SearchResult {
	brandQuery := strings.ToLower(strings.TrimSpace(query.BrandQuery))
	locationQuery := strings.ToLower(strings.TrimSpace(query.LocationQuery))

	results := make([]domain.SearchResult, 0, len(profiles))
	for _, p := range profiles {
		if !matchesBrand(p, brandQuery) || !matchesLocation(p, locationQuery) {
			continue
		}
		results = append(results, domain.SearchResult{MechanicProfile: p})
	}

	if query.SortByDistance && query.RefLocation != nil {
		ref := *query.RefLocation
		for i := range results {
			d := Haversine(ref, results[i].Coords)
			results[i].DistanceKm = &d
		}
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	}

	return results
}

func matchesBrand(p domain.MechanicProfile, brandQuery string) bool {
	if brandQuery == "" {
		return true
	}
	for _, b := range p.Brands {
		if strings.Contains(strings.ToLower(b), brandQuery) {
			return true
		}
	}
	return false
}

func matchesLocation(p domain.MechanicProfile, locationQuery string) bool {
	if locationQuery == "" {
		return true
	}
	for _, target := range []string{p.Pincode, p.Area, p.City} {
		if strings.Contains(strings.ToLower(target), locationQuery) {
			return true
		}
	}
	return false
}
