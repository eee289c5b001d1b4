package services

import "github.com/raghunathreddymustur/bike-mechanic-discovery/domain"

// pincodeCoords maps Bengaluru pincodes and common area names to
// coordinates for offline geocoding of search queries.
var pincodeCoords = map[string]domain.Coordinates{
	"560038": {Lat: 12.9784, Lng: 77.6408}, // Indiranagar
	"560095": {Lat: 12.9352, Lng: 77.6245}, // Koramangala
	"560011": {Lat: 12.9250, Lng: 77.5938}, // Jayanagar
	"560102": {Lat: 12.9121, Lng: 77.6446}, // HSR Layout
	"560076": {Lat: 12.9166, Lng: 77.6101}, // BTM Layout
	"560003": {Lat: 13.0031, Lng: 77.5643}, // Malleshwaram
	"560066": {Lat: 12.9698, Lng: 77.7500}, // Whitefield
	"560024": {Lat: 13.0358, Lng: 77.5970}, // Hebbal
	"560037": {Lat: 12.9592, Lng: 77.6974}, // Marathahalli
	"560004": {Lat: 12.9421, Lng: 77.5753}, // Basavanagudi
	"560005": {Lat: 12.9975, Lng: 77.6111}, // Frazer Town
	"560070": {Lat: 12.9255, Lng: 77.5655}, // Banashankari
	"560100": {Lat: 12.9500, Lng: 77.6500}, // Electronic City

	"indiranagar":     {Lat: 12.9784, Lng: 77.6408},
	"koramangala":     {Lat: 12.9352, Lng: 77.6245},
	"jayanagar":       {Lat: 12.9250, Lng: 77.5938},
	"hsr":             {Lat: 12.9121, Lng: 77.6446},
	"btm":             {Lat: 12.9166, Lng: 77.6101},
	"malleshwaram":    {Lat: 13.0031, Lng: 77.5643},
	"whitefield":      {Lat: 12.9698, Lng: 77.7500},
	"hebbal":          {Lat: 13.0358, Lng: 77.5970},
	"marathahalli":    {Lat: 12.9592, Lng: 77.6974},
	"basavanagudi":    {Lat: 12.9421, Lng: 77.5753},
	"frazer":          {Lat: 12.9975, Lng: 77.6111},
	"banashankari":    {Lat: 12.9255, Lng: 77.5655},
	"electronic city": {Lat: 12.9500, Lng: 77.6500},
}

// bengaluruCenter is the fallback for recognised-but-unmapped city
// pincodes (the 560 prefix).
var bengaluruCenter = domain.Coordinates{Lat: 12.9716, Lng: 77.5946}
