package nonmutualtls

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
)

type ClientOptions struct {
	CACertFiles        []string
	InsecureSkipVerify bool
}

// NewClientTLSConfig returns the TLS config used to reach the dataset API.
// CA files are added on top of the system roots; blank entries and empty
// files are skipped so an unset bundle means "system roots only".
func NewClientTLSConfig(opts ClientOptions) (*tls.Config, error) {
	c := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if opts.InsecureSkipVerify {
		c.InsecureSkipVerify = true
		return c, nil
	}

	var caCertPool *x509.CertPool
	for _, caCertFile := range opts.CACertFiles {
		if caCertFile == "" {
			continue
		}

		certBytes, err := os.ReadFile(caCertFile)
		if err != nil {
			return nil, fmt.Errorf("failed read ca cert file: %s", err.Error())
		}

		if isEmptyBytes(certBytes) {
			continue
		}

		if caCertPool == nil {
			caCertPool = systemCertPool()
		}
		if ok := caCertPool.AppendCertsFromPEM(certBytes); !ok {
			return nil, errors.New("Unable to load caCert")
		}
	}

	c.RootCAs = caCertPool
	return c, nil
}

func systemCertPool() *x509.CertPool {
	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		return x509.NewCertPool()
	}
	return pool
}

func isEmptyBytes(bytes []byte) bool {
	trimmedStr := strings.Trim(string(bytes), "\t\n\r ")
	return trimmedStr == ""
}
