package nonmutualtls_test

import (
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/dataset-sampler/lib/nonmutualtls"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

const WAIT_TIMEOUT = 2 * time.Second

var _ = Describe("TLS config for the dataset client", func() {
	var (
		serverListenAddr string
		server           ifrit.Process
	)

	pickAddr := func() string {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		defer listener.Close()
		return listener.Addr().String()
	}

	makeRequest := func(clientTLSConfig *tls.Config) (*http.Response, error) {
		req, err := http.NewRequest("GET", "https://"+serverListenAddr+"/", nil)
		Expect(err).NotTo(HaveOccurred())
		client := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: clientTLSConfig,
			},
		}
		return client.Do(req)
	}

	BeforeEach(func() {
		keyPair, err := tls.LoadX509KeyPair(paths.ServerCertPath, paths.ServerKeyPath)
		Expect(err).NotTo(HaveOccurred())
		serverTLSConfig := &tls.Config{
			Certificates: []tls.Certificate{keyPair},
			MinVersion:   tls.VersionTLS12,
		}

		serverListenAddr = pickAddr()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": "hello"}]`))
		})
		server = ifrit.Invoke(http_server.NewTLSServer(serverListenAddr, handler, serverTLSConfig))
	})

	AfterEach(func() {
		server.Signal(os.Interrupt)
		Eventually(server.Wait(), WAIT_TIMEOUT).Should(Receive())
	})

	Context("when the CA that signed the server is configured", func() {
		It("connects to the server", func() {
			clientTLSConfig, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
				CACertFiles: []string{paths.ServerCACertPath1},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(clientTLSConfig.MinVersion).To(Equal(uint16(tls.VersionTLS12)))

			resp, err := makeRequest(clientTLSConfig)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			respBytes, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(respBytes).To(MatchJSON(`[{"id": "hello"}]`))
			Expect(resp.Body.Close()).To(Succeed())
		})

		It("loads multiple ca certs and skips blank or empty ones", func() {
			clientTLSConfig, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
				CACertFiles: []string{paths.ServerCACertPath2, "", paths.EmptyFilePath, paths.ServerCACertPath1},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(clientTLSConfig.RootCAs).NotTo(BeNil())

			resp, err := makeRequest(clientTLSConfig)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Body.Close()).To(Succeed())
		})
	})

	Context("when no CA is configured", func() {
		It("uses the system roots", func() {
			clientTLSConfig, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
				CACertFiles: []string{"", paths.EmptyFilePath},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(clientTLSConfig.RootCAs).To(BeNil())

			_, err = makeRequest(clientTLSConfig)
			Expect(err).To(MatchError(ContainSubstring("x509:")))
		})
	})

	Context("when the wrong CA is configured", func() {
		It("refuses to connect to the server", func() {
			clientTLSConfig, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
				CACertFiles: []string{paths.WrongServerCACertPath},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = makeRequest(clientTLSConfig)
			Expect(err).To(MatchError(ContainSubstring("x509:")))
		})
	})

	Context("when ssl validation is skipped", func() {
		It("connects without any CA and ignores the CA files", func() {
			clientTLSConfig, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
				CACertFiles:        []string{"/does/not/exist"},
				InsecureSkipVerify: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(clientTLSConfig.InsecureSkipVerify).To(BeTrue())

			resp, err := makeRequest(clientTLSConfig)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Body.Close()).To(Succeed())
		})
	})

	Context("when the CA file is missing", func() {
		It("returns a meaningful error", func() {
			_, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
				CACertFiles: []string{"/does/not/exist"},
			})
			Expect(err).To(MatchError(HavePrefix("failed read ca cert file")))
		})
	})

	Context("when the CA file is not a certificate", func() {
		It("returns a meaningful error", func() {
			_, err := nonmutualtls.NewClientTLSConfig(nonmutualtls.ClientOptions{
				CACertFiles: []string{paths.InvalidFilePath},
			})
			Expect(err).To(MatchError("Unable to load caCert"))
		})
	})
})
