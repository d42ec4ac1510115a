package httpserver

import "github.com/prometheus/client_golang/prometheus"

const namespace = "words_api"

type metrics struct {
	validations *prometheus.CounterVec // by result: valid | invalid
	wordsServed *prometheus.CounterVec // by mode: daily | random
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Validate-word requests by result",
		}, []string{"result"}),
		wordsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_served_total",
			Help:      "Secret words handed out by mode",
		}, []string{"mode"}),
	}
	reg.MustRegister(m.validations, m.wordsServed)
	return m
}
