/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operations_test

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics/disabled"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/operations"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/operations/fakes"
)

var _ = Describe("System", func() {
	var (
		fakeLogger *fakes.Logger
		options    operations.Options
		system     *operations.System
		client     *http.Client
	)

	get := func(path string) (int, string) {
		resp, err := client.Get(fmt.Sprintf("http://%s%s", system.Addr(), path))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp.StatusCode, string(body)
	}

	BeforeEach(func() {
		fakeLogger = &fakes.Logger{}
		options = operations.Options{
			Logger:        fakeLogger,
			ListenAddress: "127.0.0.1:0",
			Metrics: operations.MetricsOptions{
				Provider: "disabled",
			},
			Version: "test-version",
		}
		client = &http.Client{Timeout: 5 * time.Second}
	})

	AfterEach(func() {
		if system != nil {
			system.Stop()
		}
		flogging.Reset()
	})

	It("hosts the health check endpoint", func() {
		system = operations.NewSystem(options)
		Expect(system.Start()).To(Succeed())

		code, body := get("/healthz")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"status":"OK"`))
	})

	It("reports failing health checkers", func() {
		system = operations.NewSystem(options)
		checker := &fakes.HealthChecker{}
		checker.HealthCheckReturns(errors.New("keystore unreachable"))
		Expect(system.RegisterChecker("keystore", checker)).To(Succeed())
		Expect(system.RegisterChecker("keystore", checker)).To(MatchError("health checker for keystore is already registered"))
		Expect(system.Start()).To(Succeed())

		code, body := get("/healthz")
		Expect(code).To(Equal(http.StatusServiceUnavailable))
		Expect(body).To(ContainSubstring(`"component":"keystore"`))
		Expect(body).To(ContainSubstring(`"reason":"keystore unreachable"`))
		Expect(checker.HealthCheckCallCount()).To(Equal(1))
	})

	It("hosts the version endpoint", func() {
		system = operations.NewSystem(options)
		Expect(system.Start()).To(Succeed())

		code, body := get("/version")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"Version":"test-version"`))
	})

	It("reads and updates the global logging spec", func() {
		system = operations.NewSystem(options)
		Expect(system.Start()).To(Succeed())

		req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("http://%s/logspec", system.Addr()), strings.NewReader(`{"spec":"rsa.keygen=debug:warn"}`))
		Expect(err).NotTo(HaveOccurred())
		resp, err := client.Do(req)
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		code, body := get("/logspec")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"spec":"rsa.keygen=debug:warn"}`))
		Expect(flogging.LoggerLevel("rsa.keygen")).To(Equal("debug"))
	})

	It("uses the disabled provider and serves no metrics by default", func() {
		system = operations.NewSystem(options)
		Expect(system.Provider).To(Equal(&disabled.Provider{}))
		Expect(system.Start()).To(Succeed())

		code, _ := get("/metrics")
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(fakeLogger.WarnfCallCount()).To(Equal(0))
	})

	It("warns about unknown providers and disables metrics", func() {
		options.Metrics.Provider = "bogus"
		system = operations.NewSystem(options)

		Expect(system.Provider).To(Equal(&disabled.Provider{}))
		Expect(fakeLogger.WarnfCallCount()).To(Equal(1))
		msg, args := fakeLogger.WarnfArgsForCall(0)
		Expect(fmt.Sprintf(msg, args...)).To(Equal("Unknown provider type: bogus; metrics disabled"))
	})

	When("the prometheus provider is selected", func() {
		BeforeEach(func() {
			options.Metrics.Provider = "prometheus"
		})

		It("exposes the registered meters and the version gauge", func() {
			system = operations.NewSystem(options)
			counter := system.NewCounter(metrics.CounterOpts{
				Namespace:  "rsa",
				Name:       "keys_generated_total",
				Help:       "test counter",
				LabelNames: []string{"profile"},
			})
			counter.With("profile", "RSA-576").Add(3)
			Expect(system.Start()).To(Succeed())

			code, body := get("/metrics")
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`rsa_keys_generated_total{profile="RSA-576"} 3`))
			Expect(body).To(ContainSubstring(`rsagen_version{version="test-version"} 1`))
			Expect(body).To(ContainSubstring("go_goroutines"))
		})

		It("keeps separate registries per system", func() {
			first := operations.NewSystem(options)
			second := operations.NewSystem(options)
			Expect(first.Provider).NotTo(BeIdenticalTo(second.Provider))
		})
	})

	When("the statsd provider is selected", func() {
		var conn net.PacketConn

		BeforeEach(func() {
			var err error
			conn, err = net.ListenPacket("udp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())

			options.Metrics = operations.MetricsOptions{
				Provider: "statsd",
				Statsd: &operations.Statsd{
					Network:       "udp",
					Address:       conn.LocalAddr().String(),
					WriteInterval: 100 * time.Millisecond,
					Prefix:        "rsagen",
				},
			}
		})

		AfterEach(func() {
			conn.Close()
		})

		It("sends the version gauge to the statsd server", func() {
			system = operations.NewSystem(options)
			Expect(system.Start()).To(Succeed())

			buf := make([]byte, 4096)
			Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
			n, _, err := conn.ReadFrom(buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(buf[:n])).To(ContainSubstring("rsagen.rsagen.version.test-version:1"))
		})

		It("fails to start without a write interval", func() {
			options.Metrics.Statsd.WriteInterval = 0
			system = operations.NewSystem(options)
			Expect(system.Start()).To(MatchError("statsd metrics require a positive write interval"))
		})
	})

	It("fails to start when the address is in use", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		defer listener.Close()

		options.ListenAddress = listener.Addr().String()
		system = operations.NewSystem(options)
		err = system.Start()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(HavePrefix("failed to listen on " + listener.Addr().String()))
	})

	It("runs as an ifrit process", func() {
		system = operations.NewSystem(options)
		process := ifrit.Invoke(system)
		Eventually(process.Ready()).Should(BeClosed())

		code, _ := get("/healthz")
		Expect(code).To(Equal(http.StatusOK))

		process.Signal(syscall.SIGTERM)
		Eventually(process.Wait()).Should(Receive(BeNil()))
		system = nil
	})
})
