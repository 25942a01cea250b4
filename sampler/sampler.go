package sampler

//go:generate counterfeiter -generate

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/dataset-sampler/dataset"
	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
)

const (
	offsetFetchFailedMetric = "sampleOffsetFetchFailed"
	sampleDurationMetric    = "sampleDuration"

	diagnosticBodyLimit = 500
)

var ErrNoRecord = errors.New("response contained no record")

//counterfeiter:generate -o fakes/dataset_client.go --fake-name DatasetClient . datasetClient
type datasetClient interface {
	Get(offset, limit int, token string) (*dataset.Response, error)
}

//counterfeiter:generate -o fakes/offset_picker.go --fake-name OffsetPicker . OffsetPicker
type OffsetPicker interface {
	Pick(total, n int) []int
}

//counterfeiter:generate -o fakes/metrics_sender.go --fake-name MetricsSender . metricsSender
type metricsSender interface {
	IncrementCounter(name string)
	SendDuration(name string, duration time.Duration)
}

type FetchResult struct {
	Offset int
	Record dataset.Record
	Err    error
}

type RandomSampler struct {
	Client           datasetClient
	Offsets          OffsetPicker
	TotalCountHeader string
	MetricsSender    metricsSender
	Clock            clock.Clock
	Logger           lager.Logger
}

// FetchSample never fails: transport errors and unrecognized responses are
// logged and produce a shorter, possibly empty, sample.
func (s *RandomSampler) FetchSample(desiredCount int, token string) []dataset.Record {
	logger := s.Logger.Session("fetch-sample", lager.Data{"desired-count": desiredCount})
	start := s.Clock.Now()
	defer func() {
		s.MetricsSender.SendDuration(sampleDurationMetric, s.Clock.Since(start))
	}()

	if desiredCount < 0 {
		desiredCount = 0
	}

	page, err := s.metadata(token)
	if err != nil {
		logger.Error("metadata-request-failed", err)
		return []dataset.Record{}
	}
	if !page.HasTotal {
		logger.Error("unexpected-response-shape", dataset.ErrUnexpectedResponseShape, lager.Data{
			"shape": page.Shape.String(),
			"body":  page.body,
		})
		return []dataset.Record{}
	}

	if page.Total <= desiredCount {
		logger.Info("returning-all-records", lager.Data{
			"total":   page.Total,
			"records": len(page.Records),
			"shape":   page.Shape.String(),
		})
		return page.Records
	}

	offsets := s.Offsets.Pick(page.Total, desiredCount)
	results := make([]FetchResult, 0, len(offsets))
	for _, offset := range offsets {
		results = append(results, s.fetchOffset(offset, token))
	}

	return s.collect(logger, page.Total, results)
}

// TotalCount reports the size of the backing dataset as derived from a
// single metadata request.
func (s *RandomSampler) TotalCount(token string) (int, error) {
	page, err := s.metadata(token)
	if err != nil {
		return 0, err
	}
	if !page.HasTotal {
		return 0, errors.Wrapf(dataset.ErrUnexpectedResponseShape, "derive total from %s body", page.Shape)
	}
	return page.Total, nil
}

type metadataPage struct {
	dataset.Page
	body string
}

func (s *RandomSampler) metadata(token string) (metadataPage, error) {
	resp, err := s.Client.Get(dataset.NoOffset, 1, token)
	if err != nil {
		return metadataPage{}, errors.Wrap(err, "metadata request")
	}

	body := resp.Body
	if len(body) > diagnosticBodyLimit {
		body = body[:diagnosticBodyLimit]
	}
	return metadataPage{
		Page: dataset.Decode(resp, s.totalCountHeader()),
		body: string(body),
	}, nil
}

func (s *RandomSampler) fetchOffset(offset int, token string) FetchResult {
	resp, err := s.Client.Get(offset, 1, token)
	if err != nil {
		return FetchResult{Offset: offset, Err: errors.Wrapf(err, "fetch offset %d", offset)}
	}

	record, ok := dataset.SingleRecord(resp)
	if !ok {
		return FetchResult{Offset: offset, Err: errors.Wrapf(ErrNoRecord, "fetch offset %d", offset)}
	}
	return FetchResult{Offset: offset, Record: record}
}

func (s *RandomSampler) collect(logger lager.Logger, total int, results []FetchResult) []dataset.Record {
	records := make([]dataset.Record, 0, len(results))
	failed, empty := 0, 0
	for _, result := range results {
		switch {
		case result.Err == nil:
			records = append(records, result.Record)
		case errors.Cause(result.Err) == ErrNoRecord:
			empty++
			logger.Info("fetch-offset-empty", lager.Data{"offset": result.Offset})
		default:
			failed++
			s.MetricsSender.IncrementCounter(offsetFetchFailedMetric)
			logger.Error("fetch-offset-failed", result.Err, lager.Data{"offset": result.Offset})
		}
	}

	logger.Info("sample-complete", lager.Data{
		"total":     total,
		"requested": len(results),
		"fetched":   len(records),
		"failed":    failed,
		"empty":     empty,
	})
	return records
}

func (s *RandomSampler) totalCountHeader() string {
	if s.TotalCountHeader == "" {
		return dataset.DefaultTotalCountHeader
	}
	return s.TotalCountHeader
}
