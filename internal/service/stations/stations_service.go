// Package stations imports pollutant readings published as HTML tables by
// monitoring stations and runs each through the prediction flow.
package stations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/openair/aqimon/internal/pkg/aqi"
	"github.com/openair/aqimon/internal/pkg/logger"
	"github.com/openair/aqimon/internal/service/prediction"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	predictions *prediction.Service
	client      *http.Client
}

func NewService(predictions *prediction.Service) *Service {
	return &Service{
		predictions: predictions,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// StationReading is one parsed row of a station page.
type StationReading struct {
	Station string
	Reading aqi.Reading
}

// ImportResult pairs a station row with its stored prediction.
type ImportResult struct {
	Station    string
	Prediction *prediction.Prediction
}

// Import fetches the station page, parses every reading row and predicts
// each one on behalf of the user. Rows are processed concurrently; the
// first hard failure aborts the batch.
func (s *Service) Import(ctx context.Context, pageURL, username string) ([]ImportResult, error) {
	doc, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	readings, err := parseStationTable(doc)
	if err != nil {
		return nil, fmt.Errorf("parse station table: %w", err)
	}

	results := make([]ImportResult, 0, len(readings))
	resultsMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)

	for _, reading := range readings {
		reading := reading
		eg.Go(func() error {
			pred, err := s.predictions.Predict(egCtx, prediction.PredictOpts{
				Username: username,
				Reading:  reading.Reading,
				Strategy: aqi.StrategyEPA,
				Profile:  aqi.ProfileSixTier,
			})
			if err != nil {
				return fmt.Errorf("predict, station-%s: %w", reading.Station, err)
			}

			logger.Infof(ctx, "imported reading for station %s", reading.Station)

			resultsMx.Lock()
			defer resultsMx.Unlock()
			results = append(results, ImportResult{Station: reading.Station, Prediction: pred})
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return results, nil
}

func (s *Service) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	var body []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			resp, httpErr := s.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Do: %w", httpErr)
			}
			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			var readErr error
			body, readErr = io.ReadAll(resp.Body)
			if readErr != nil {
				return fmt.Errorf("read body: %w", readErr)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	return doc, nil
}

// parseStationTable expects rows of the form
//
//	<table class="station-readings"><tbody>
//	  <tr><th>Station name</th><td>pm25</td><td>pm10</td><td>no2</td><td>so2</td><td>co</td><td>o3</td></tr>
//	</tbody></table>
//
// Decimal commas are accepted, empty cells count as zero.
func parseStationTable(doc *goquery.Document) ([]StationReading, error) {
	var (
		readings []StationReading
		err      error
	)

	doc.Find("table.station-readings tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		station := strings.TrimSpace(tr.Find("th").First().Text())
		if station == "" {
			// Header or spacer row.
			return true
		}

		cells := tr.Find("td")
		if cells.Length() < 6 {
			err = fmt.Errorf("station %s: expected 6 pollutant cells, got %d", station, cells.Length())
			return false
		}

		vals := make([]float64, 6)
		for i := 0; i < 6; i++ {
			valStr := strings.ReplaceAll(strings.TrimSpace(cells.Eq(i).Text()), ",", ".")
			if valStr == "" {
				valStr = "0"
			}

			val, parseErr := strconv.ParseFloat(valStr, 64)
			if parseErr != nil {
				err = fmt.Errorf("station %s: failed to parse cell %d: %w", station, i, parseErr)
				return false
			}
			vals[i] = val
		}

		readings = append(readings, StationReading{
			Station: station,
			Reading: aqi.Reading{PM25: vals[0], PM10: vals[1], NO2: vals[2], SO2: vals[3], CO: vals[4], O3: vals[5]},
		})
		return true
	})
	if err != nil {
		return nil, err
	}

	return readings, nil
}
