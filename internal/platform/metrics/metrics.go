// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus instrumentation for the API server.

Every collector lives on a private registry owned by [Recorder] so tests can
build isolated instances. All methods are safe to call on a nil *Recorder,
which lets components accept an optional recorder without branching.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "toolshelf"

// Outcome labels for authentication counters.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultError   = "error"
)

// Recorder owns the registry and every collector of the process.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	signups        *prometheus.CounterVec
	logins         *prometheus.CounterVec
	logoffs        *prometheus.CounterVec
	gateRejections *prometheus.CounterVec
}

// New builds a recorder with the Go runtime and process collectors attached.
func New() *Recorder {
	registry := prometheus.NewRegistry()

	recorder := &Recorder{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "signups_total",
			Help:      "Signup attempts by result.",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		logoffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logoffs_total",
			Help:      "Logoff attempts by result.",
		}, []string{"result"}),
		gateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "gate_rejections_total",
			Help:      "Requests refused by the auth gate, by reason.",
		}, []string{"reason"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		recorder.httpRequests,
		recorder.httpDuration,
		recorder.signups,
		recorder.logins,
		recorder.logoffs,
		recorder.gateRejections,
	)

	return recorder
}

// Handler serves the registry in the Prometheus exposition format.
func (recorder *Recorder) Handler() http.Handler {
	if recorder == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(recorder.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (recorder *Recorder) Registry() *prometheus.Registry {
	if recorder == nil {
		return nil
	}
	return recorder.registry
}

// ObserveHTTP records one finished request.
func (recorder *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if recorder == nil {
		return
	}
	recorder.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	recorder.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Signup counts a signup attempt.
func (recorder *Recorder) Signup(result string) {
	if recorder == nil {
		return
	}
	recorder.signups.WithLabelValues(result).Inc()
}

// Login counts a login attempt.
func (recorder *Recorder) Login(result string) {
	if recorder == nil {
		return
	}
	recorder.logins.WithLabelValues(result).Inc()
}

// Logoff counts a logoff attempt.
func (recorder *Recorder) Logoff(result string) {
	if recorder == nil {
		return
	}
	recorder.logoffs.WithLabelValues(result).Inc()
}

// GateRejected counts a request refused by the auth gate.
func (recorder *Recorder) GateRejected(reason string) {
	if recorder == nil {
		return
	}
	recorder.gateRejections.WithLabelValues(reason).Inc()
}
