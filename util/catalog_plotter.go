package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"compass-server/models/restaurant"
)

// PlotCatalogMap renders an HTML geo chart of every catalog restaurant into w.
func PlotCatalogMap(restaurants []restaurant.Restaurant, w io.Writer) error {
	points := make([]opts.GeoData, 0, len(restaurants))
	for _, r := range restaurants {
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("%s (%.1f)", r.Name, r.Rating),
			Value: []float64{r.Location.Longitude, r.Location.Latitude},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Restaurant Catalog Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries("Restaurants", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return geo.Render(w)
}
