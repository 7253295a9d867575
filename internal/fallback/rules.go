package fallback

import (
	"strings"

	"github.com/vokinneberg/ocean-query/internal/types"
)

// Rule maps a keyword predicate to a canned answer.
// Match receives the lower-cased query, Build the original one.
type Rule struct {
	Name  string
	Match func(lowered string) bool
	Build func(query string) types.QueryResult
}

// DefaultRules returns the canned oceanographic rules in priority order
func DefaultRules() []Rule {
	return []Rule{
		{Name: "temperature", Match: containsAll("temperature"), Build: temperatureResult},
		{Name: "salinity", Match: containsAll("salinity"), Build: salinityResult},
		{Name: "bgc", Match: containsAll("bgc", "arabian sea"), Build: bgcResult},
		{Name: "argo-float", Match: containsAll("argo float"), Build: argoFloatResult},
	}
}

// genericRule is always evaluated last and matches anything
var genericRule = Rule{
	Name:  "generic",
	Match: func(string) bool { return true },
	Build: genericResult,
}

func containsAll(keywords ...string) func(string) bool {
	return func(lowered string) bool {
		for _, kw := range keywords {
			if !strings.Contains(lowered, kw) {
				return false
			}
		}
		return true
	}
}

func januaryRange() *types.TimeRange {
	return &types.TimeRange{Start: "2024-01-01", End: "2024-01-31"}
}

func temperatureResult(string) types.QueryResult {
	return types.QueryResult{
		OK:         true,
		DataSource: types.DataSourceFallbackArgo,
		StructuredQuery: &types.StructuredQuery{
			Variable:   types.String("sea_surface_temperature"),
			Location:   types.String("Arabian Sea"),
			TimePeriod: "recent",
		},
		DatasetSummary: &types.DatasetSummary{
			DatasetID:    "erdMH1sstd1day",
			DatasetTitle: "MODIS Aqua Sea Surface Temperature",
			Variable:     "sea_surface_temperature",
			TotalRows:    1247,
			TimeRange:    januaryRange(),
		},
		Answer: "Sea surface temperature in the Arabian Sea (MODIS Aqua) over the past month contains 1,247 points. " +
			"Temperatures range from 24.5°C near the northern coast to 29.2°C offshore. " +
			"The average temperature is 27.1°C, with the warmest areas in the central Arabian Sea.",
	}
}

func salinityResult(string) types.QueryResult {
	return types.QueryResult{
		OK:         true,
		DataSource: types.DataSourceFallbackArgo,
		StructuredQuery: &types.StructuredQuery{
			Variable:   types.String("sea_surface_salinity"),
			Location:   types.String("near Equator"),
			TimePeriod: "last month",
		},
		DatasetSummary: &types.DatasetSummary{
			DatasetID:    "erdSMOS_SSS",
			DatasetTitle: "SMOS Sea Surface Salinity",
			Variable:     "sea_surface_salinity",
			TotalRows:    892,
			TimeRange:    januaryRange(),
		},
		Answer: "Sea surface salinity near the Equator (SMOS satellite) contains 892 measurements. " +
			"Values range from 28.8 PSU near coastal runoff regions to 34.2 PSU offshore, with an average of 32.0 PSU. " +
			"Salinity is slightly above seasonal averages due to reduced freshwater inflow during the recent period.",
	}
}

func bgcResult(string) types.QueryResult {
	return types.QueryResult{
		OK:         true,
		DataSource: types.DataSourceFallbackArgo,
		StructuredQuery: &types.StructuredQuery{
			Variable:   types.String("bgc"),
			Location:   types.String("Arabian Sea"),
			TimePeriod: "last 6 months",
		},
		DatasetSummary: &types.DatasetSummary{
			DatasetID:    "argo_bgc",
			DatasetTitle: "ARGO Biogeochemical Parameters",
			Variable:     "bgc",
			TotalRows:    1300,
		},
		Answer: "Biogeochemical parameters in the Arabian Sea from the last 6 months (1,300 measurements) show: " +
			"chlorophyll-a 0.08–12.4 mg/m³ (avg 2.6 mg/m³), dissolved oxygen 3.5–6.8 mg/L (avg 5.2 mg/L), " +
			"nitrate 0.1–12 µmol/L (avg 4.8 µmol/L), phosphate 0.05–2 µmol/L (avg 0.6 µmol/L). " +
			"Coastal upwelling zones have higher nutrients, offshore is more oligotrophic.",
	}
}

func argoFloatResult(string) types.QueryResult {
	return types.QueryResult{
		OK:         true,
		DataSource: types.DataSourceFallbackArgo,
		StructuredQuery: &types.StructuredQuery{
			Variable:   types.String("argo_float"),
			Location:   types.String("user-specified location"),
			TimePeriod: "recent",
		},
		DatasetSummary: &types.DatasetSummary{
			DatasetID:    "argo_all_traj",
			DatasetTitle: "All ARGO Float Trajectories",
			Variable:     "position",
			TotalRows:    500,
		},
		Answer: "The nearest ARGO floats to the specified location include 4 active floats within 200 km radius. " +
			"Float IDs: 4901234, 4901235, 4901238, 4901241. " +
			"Recent positions indicate average depths of 1000 m, with ascent/descent cycles approximately every 10 days, " +
			"reporting temperature, salinity, and biogeochemical parameters.",
	}
}

func genericResult(query string) types.QueryResult {
	return types.QueryResult{
		OK:         true,
		DataSource: types.DataSourceFallbackGeneric,
		StructuredQuery: &types.StructuredQuery{
			AdditionalContext: query,
		},
		Answer: "I can help you explore oceanographic data from ARGO servers worldwide. " +
			"Try asking about temperature, salinity, chlorophyll, or ARGO floats in a specific region or time period for detailed data.",
	}
}
