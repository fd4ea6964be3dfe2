// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"k8s.io/klog/v2"
)

// Namespace prefixes all navforge metrics
const Namespace = "navforge"

var (
	clientInFlightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "client_in_flight_requests",
		Help:      "A gauge of in-flight requests for the wrapped client.",
	})

	clientCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "client_api_requests_total",
		Help:      "A counter for requests from the wrapped client.",
	},
		[]string{"code", "method"},
	)

	// histVec has no labels, making it a zero-dimensional ObserverVec.
	clientHistVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "A histogram of request latencies.",
		Buckets:   prometheus.DefBuckets,
	},
		[]string{},
	)
)

// RegisterClientMetrics registers all of the metrics in registry, or the
// default registry when nil
func RegisterClientMetrics(registry prometheus.Registerer) {
	ResetClientMetrics()
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	registry.MustRegister(clientCounter, clientHistVec, clientInFlightGauge)
}

// ResetClientMetrics resets the HTTP client metrics. The function is useful for designing self-contained unit tests
// where the count of metrics matters.
func ResetClientMetrics() {
	clientCounter.Reset()
	clientHistVec.Reset()
	clientInFlightGauge.Set(0.0)
}

// InstrumentClientRoundTripperDuration instruments the transport of client for metering HTTP roundtrips.
// A nil transport is replaced with http.DefaultTransport.
func InstrumentClientRoundTripperDuration(client *http.Client) *http.Client {
	next := client.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	client.Transport = promhttp.InstrumentRoundTripperInFlight(clientInFlightGauge,
		promhttp.InstrumentRoundTripperCounter(clientCounter,
			promhttp.InstrumentRoundTripperDuration(clientHistVec, next),
		),
	)
	return client
}

// LogMetrics logs the request totals gathered from gatherer
func LogMetrics(gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		klog.Warningf("gathering metrics failed: %v\n", err)
		return
	}
	for _, f := range families {
		if f.GetName() != prometheus.BuildFQName(Namespace, "", "client_api_requests_total") {
			continue
		}
		for _, m := range f.GetMetric() {
			klog.V(2).Infof("%s requests with code %s: %.0f\n", label(m, "method"), label(m, "code"), m.GetCounter().GetValue())
		}
	}
}

// RequestTotal returns the number of requests counted by the instrumented clients
func RequestTotal(gatherer prometheus.Gatherer) (float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, f := range families {
		if f.GetName() != prometheus.BuildFQName(Namespace, "", "client_api_requests_total") {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total, nil
}

func label(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}
