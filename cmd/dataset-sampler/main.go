package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/dataset-sampler/config"
	"code.cloudfoundry.org/dataset-sampler/dataset"
	"code.cloudfoundry.org/dataset-sampler/lib/nonmutualtls"
	"code.cloudfoundry.org/dataset-sampler/metrics"
	"code.cloudfoundry.org/dataset-sampler/printer"
	"code.cloudfoundry.org/dataset-sampler/sampler"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"github.com/cloudfoundry/dropsonde"
)

const (
	jobPrefix = "dataset-sampler"
)

var (
	logPrefix = "cfnetworking"
)

type metricsSender interface {
	IncrementCounter(name string)
	SendDuration(name string, duration time.Duration)
}

func main() {
	configFilePath := flag.String("config-file", "", "path to config file")
	sampleSize := flag.Int("n", -1, "number of records to sample (overrides sample_size)")
	appToken := flag.String("app-token", "", "application token sent with every request (overrides app_token)")
	showTotal := flag.Bool("show-total", true, "print the total number of entries before sampling")
	flag.Parse()

	conf := config.Default()
	if *configFilePath != "" {
		var err error
		conf, err = config.New(*configFilePath)
		if err != nil {
			log.Fatalf("%s.%s: could not read config file: %s", logPrefix, jobPrefix, err)
		}
	}
	if *sampleSize >= 0 {
		conf.SampleSize = *sampleSize
	}
	if *appToken != "" {
		conf.AppToken = *appToken
	}

	if conf.LogPrefix != "" {
		logPrefix = conf.LogPrefix
	}

	loggerConfig := lagerflags.DefaultLagerConfig()
	if conf.LogLevel != "" {
		loggerConfig.LogLevel = conf.LogLevel
	}
	logger, _ := lagerflags.NewFromConfig(fmt.Sprintf("%s.%s", logPrefix, jobPrefix), loggerConfig)

	var sender metricsSender = &metrics.NoOpMetricsSender{}
	if conf.MetronAddress != "" {
		err := dropsonde.Initialize(conf.MetronAddress, jobPrefix)
		if err != nil {
			log.Fatalf("%s.%s: initializing dropsonde: %s", logPrefix, jobPrefix, err)
		}
		sender = &metrics.MetricsSender{
			Logger: logger.Session("time-metric-emitter"),
		}
	}

	tlsConfig, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
		CACertFiles:        []string{conf.CACertFile},
		InsecureSkipVerify: conf.SkipSSLValidation,
	})
	if err != nil {
		log.Fatalf("%s.%s: error creating tls config: %s", logPrefix, jobPrefix, err)
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			TLSClientConfig:     tlsConfig,
			TLSHandshakeTimeout: 5 * time.Second,
		},
		Timeout: time.Duration(conf.RequestTimeout),
	}

	randomSampler := &sampler.RandomSampler{
		Client: &dataset.Client{
			URL:         conf.DatasetURL,
			TokenHeader: conf.AppTokenHeader,
			HTTPClient:  httpClient,
			Logger:      logger.Session("dataset-client"),
		},
		Offsets:          sampler.NewRandomOffsets(),
		TotalCountHeader: conf.TotalCountHeader,
		MetricsSender:    sender,
		Clock:            clock.NewClock(),
		Logger:           logger,
	}

	out := &printer.Printer{Out: os.Stdout}

	logger.Info("fetching-sample", lager.Data{"dataset-url": conf.DatasetURL, "sample-size": conf.SampleSize})

	if *showTotal {
		total, err := randomSampler.TotalCount(conf.AppToken)
		if err != nil {
			logger.Error("could-not-fetch-total-count", err)
		} else {
			out.Total(total)
		}
	}

	records := randomSampler.FetchSample(conf.SampleSize, conf.AppToken)
	if err := out.Records(records); err != nil {
		logger.Error("printing-records", err)
	}

	logger.Info("exited")
}
